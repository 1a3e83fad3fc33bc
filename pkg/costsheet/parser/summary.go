package parser

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/textnorm"
)

// SummaryLayout locates the per-energy summary table.
type SummaryLayout struct {
	Window      Window
	Name        int
	Price       int
	Consumption int
	Rent        int
}

// DefaultSummaryLayout returns the layout of the energy table in CALCULADORA COSTES:
// A2:F20, energy name in A, price in B, consumption per km in C, rent in E.
func DefaultSummaryLayout() SummaryLayout {
	return SummaryLayout{
		Window:      MustWindow("A2:F20"),
		Name:        0,
		Price:       1,
		Consumption: 2,
		Rent:        4,
	}
}

var hundred = decimal.NewFromInt(100)

// ParseSummary reads the summary table. Rows are keyed by textnorm.Key of the
// name cell; when keys is non-empty, only those keys are kept. The sheet holds
// consumption per kilometer, which is scaled to 100 km.
func ParseSummary(rows []models.Row, layout SummaryLayout, keys []string) map[string]models.EnergySummary {
	accept := make(map[string]bool, len(keys))
	for _, k := range keys {
		accept[k] = true
	}

	result := make(map[string]models.EnergySummary)
	for _, row := range rows {
		name := row.Cell(layout.Name)
		if !name.Present() {
			continue
		}
		key := textnorm.Key(name.String())
		if len(accept) > 0 && !accept[key] {
			continue
		}

		result[key] = models.EnergySummary{
			PricePerUnit:        models.DecimalValue(row.Cell(layout.Price).FloatOrZero()),
			ConsumptionPer100Km: models.DecimalValue(row.Cell(layout.Consumption).FloatOrZero()).Mul(hundred),
			Rent:                models.DecimalValue(row.Cell(layout.Rent).FloatOrZero()),
		}
	}
	return result
}
