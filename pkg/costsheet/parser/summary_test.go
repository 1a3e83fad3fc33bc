package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

func summaryRow(r int, name models.Cell, price, consumption, rent float64) models.Row {
	return models.Row{R: r, Cells: []models.Cell{name, num(price), num(consumption), blank(), num(rent), blank()}}
}

func TestParseSummary(t *testing.T) {
	rows := []models.Row{
		summaryRow(2, text("Diesel"), 1.25, 0.32, 2100),
		summaryRow(3, text(" Gas   natural "), 1.1, 0.3, 2400),
		summaryRow(4, text("KMS VEHICULO /DIA"), 600, 0, 0),
		summaryRow(5, blank(), 1, 1, 1),
		{R: 6, Cells: []models.Cell{text("H2"), blank(), text("n/d")}},
	}

	summaries := ParseSummary(rows, DefaultSummaryLayout(), []string{"DIESEL", "GAS NATURAL", "H2"})
	require.Len(t, summaries, 3)

	diesel := summaries["DIESEL"]
	assert.Equal(t, "1.25", diesel.PricePerUnit.String())
	assert.Equal(t, "32", diesel.ConsumptionPer100Km.String())
	assert.Equal(t, "2100", diesel.Rent.String())

	gas := summaries["GAS NATURAL"]
	assert.Equal(t, "30", gas.ConsumptionPer100Km.String())

	h2 := summaries["H2"]
	assert.True(t, h2.PricePerUnit.IsZero())
	assert.True(t, h2.ConsumptionPer100Km.IsZero())
}

func TestParseSummaryWithoutFilter(t *testing.T) {
	rows := []models.Row{
		summaryRow(2, text("Diesel"), 1.25, 0.32, 2100),
		summaryRow(3, text("Otro"), 1, 1, 1),
	}

	summaries := ParseSummary(rows, DefaultSummaryLayout(), nil)
	assert.Len(t, summaries, 2)
	assert.Contains(t, summaries, "OTRO")
}

func TestParseSummaryNonFiniteValues(t *testing.T) {
	rows := []models.Row{
		{R: 2, Cells: []models.Cell{text("DIESEL"), text("nan"), text("inf"), blank(), text("-Infinity")}},
		summaryRow(3, text("H2"), math.NaN(), math.Inf(1), math.Inf(-1)),
	}

	var summaries map[string]models.EnergySummary
	require.NotPanics(t, func() {
		summaries = ParseSummary(rows, DefaultSummaryLayout(), nil)
	})
	require.Len(t, summaries, 2)

	for _, key := range []string{"DIESEL", "H2"} {
		s := summaries[key]
		assert.True(t, s.PricePerUnit.IsZero(), key)
		assert.True(t, s.ConsumptionPer100Km.IsZero(), key)
		assert.True(t, s.Rent.IsZero(), key)
	}
}
