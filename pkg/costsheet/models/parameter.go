package models

import "github.com/shopspring/decimal"

// Parameter is a global tariff parameter read from the summary sheet.
type Parameter struct {
	// Key is the dotted parameter key declared by the store (e.g. "pricing.margin").
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
}
