package models

import (
	"math"

	"github.com/shopspring/decimal"
)

// Category groups cost components by how they behave in the tariff.
type Category string

const (
	CategoryFixed    Category = "Fixed"
	CategoryVariable Category = "Variable"
	CategoryOverhead Category = "Overhead"
)

// ValueType tells how a component's value scales.
type ValueType string

const (
	// MonthlyAmount is a flat amount per month.
	MonthlyAmount ValueType = "MonthlyAmount"
	// PerKilometerRate is multiplied by the monthly distance.
	PerKilometerRate ValueType = "PerKilometerRate"
	// PercentageOverSubtotal is applied over the cost subtotal.
	PercentageOverSubtotal ValueType = "PercentageOverSubtotal"
)

// ValuePlaces is the number of decimal places kept for every extracted value.
const ValuePlaces = 6

// CostComponent is one line-item cost of an energy.
type CostComponent struct {
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	ValueType ValueType       `json:"valueType"`
	Value     decimal.Decimal `json:"value"`
	// Order is the position of the component in its worksheet scan, starting at 0.
	Order      int  `json:"order"`
	IsEditable bool `json:"isEditable"`
}

// DecimalValue converts a float read from a worksheet to a decimal. NaN and
// infinities yield zero.
func DecimalValue(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// RoundValue converts a float read from a worksheet to a decimal with ValuePlaces places.
func RoundValue(v float64) decimal.Decimal {
	return DecimalValue(v).Round(ValuePlaces)
}
