package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// componentRow builds a row of an energy worksheet: description in C, rate in D,
// monthly total in E.
func componentRow(r int, desc, rate, monthly models.Cell) models.Row {
	row := models.Row{R: r, Cells: make([]models.Cell, 8)}
	row.Cells[2] = desc
	row.Cells[3] = rate
	row.Cells[4] = monthly
	return row
}

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultComponentLayout(), DefaultTolerances())
}

func TestClassifierHeaders(t *testing.T) {
	t.Run("Should capture monthly distance without emitting", func(t *testing.T) {
		c := newTestClassifier()
		_, ok := c.ProcessRow(componentRow(1, text("Kms mensuales"), blank(), num(20000)))
		assert.False(t, ok)
		assert.Equal(t, 20000.0, c.MonthlyKm())
		assert.Equal(t, StateNoCategory, c.State())
	})

	t.Run("Should switch sections on headers", func(t *testing.T) {
		c := newTestClassifier()
		_, ok := c.ProcessRow(componentRow(1, text("GASTOS FIJOS"), blank(), blank()))
		assert.False(t, ok)
		assert.Equal(t, StateFixed, c.State())

		_, ok = c.ProcessRow(componentRow(2, text("Gastos  variables"), blank(), blank()))
		assert.False(t, ok)
		assert.Equal(t, StateVariable, c.State())

		_, ok = c.ProcessRow(componentRow(3, text("COSTE TOTAL MES"), blank(), num(9000)))
		assert.False(t, ok)
		assert.Equal(t, StateNoCategory, c.State())
	})

	t.Run("Should ignore price rows inside a section", func(t *testing.T) {
		c := newTestClassifier()
		c.ProcessRow(componentRow(1, text("GASTOS VARIABLES"), blank(), blank()))
		_, ok := c.ProcessRow(componentRow(2, text("Precio gasoil"), num(1.2), num(3000)))
		assert.False(t, ok)
		assert.Equal(t, StateVariable, c.State())
	})

	t.Run("Should skip data rows outside any section", func(t *testing.T) {
		c := newTestClassifier()
		_, ok := c.ProcessRow(componentRow(1, text("Seguro"), blank(), num(450)))
		assert.False(t, ok)
	})

	t.Run("Should skip rows without description", func(t *testing.T) {
		c := newTestClassifier()
		c.ProcessRow(componentRow(1, text("GASTOS FIJOS"), blank(), blank()))
		_, ok := c.ProcessRow(componentRow(2, blank(), num(0.1), num(450)))
		assert.False(t, ok)
	})
}

func TestClassifierOverheads(t *testing.T) {
	t.Run("Should emit fleet planning as monthly overhead", func(t *testing.T) {
		c := newTestClassifier()
		comp, ok := c.ProcessRow(componentRow(1, text("Planificación flota"), blank(), num(120.5)))
		require.True(t, ok)
		assert.Equal(t, "Planificación flota", comp.Name)
		assert.Equal(t, models.CategoryOverhead, comp.Category)
		assert.Equal(t, models.MonthlyAmount, comp.ValueType)
		assert.Equal(t, "120.5", comp.Value.String())
		assert.Equal(t, StateNoCategory, c.State())
	})

	t.Run("Should emit margin as percentage over subtotal", func(t *testing.T) {
		c := newTestClassifier()
		comp, ok := c.ProcessRow(componentRow(1, text("MARGEN (%)"), num(0.08), num(700)))
		require.True(t, ok)
		assert.Equal(t, models.PercentageOverSubtotal, comp.ValueType)
		assert.Equal(t, "0.08", comp.Value.String())
	})

	t.Run("Should emit structure rows as monthly overhead", func(t *testing.T) {
		c := newTestClassifier()
		c.ProcessRow(componentRow(1, text("GASTOS FIJOS"), blank(), blank()))
		for i, label := range []string{"Estructura indirecta", "ESTRUCTURA GENERAL"} {
			comp, ok := c.ProcessRow(componentRow(2+i, text(label), blank(), num(300)))
			require.True(t, ok, label)
			assert.Equal(t, models.CategoryOverhead, comp.Category)
			assert.Equal(t, models.MonthlyAmount, comp.ValueType)
		}
		assert.Equal(t, StateFixed, c.State())
	})

	t.Run("Should not emit zero overheads", func(t *testing.T) {
		c := newTestClassifier()
		_, ok := c.ProcessRow(componentRow(1, text("PLANIFICACION FLOTA"), blank(), num(0)))
		assert.False(t, ok)
		_, ok = c.ProcessRow(componentRow(2, text("MARGEN"), blank(), num(500)))
		assert.False(t, ok)
		_, ok = c.ProcessRow(componentRow(3, text("ESTRUCTURA GENERAL"), num(0.2), blank()))
		assert.False(t, ok)
	})
}

func TestClassifierValueRepresentation(t *testing.T) {
	newFixed := func(monthlyKm float64) *Classifier {
		c := newTestClassifier()
		c.ProcessRow(componentRow(1, text("KMS MENSUALES"), blank(), num(monthlyKm)))
		c.ProcessRow(componentRow(2, text("GASTOS FIJOS"), blank(), blank()))
		return c
	}

	t.Run("Should read a consistent rate as per-kilometer", func(t *testing.T) {
		c := newFixed(20000)
		comp, ok := c.ProcessRow(componentRow(3, text("Neumáticos"), num(0.15), num(3000)))
		require.True(t, ok)
		assert.Equal(t, models.PerKilometerRate, comp.ValueType)
		assert.Equal(t, "0.15", comp.Value.String())
	})

	t.Run("Should read an inconsistent rate as monthly amount", func(t *testing.T) {
		c := newFixed(20000)
		comp, ok := c.ProcessRow(componentRow(3, text("Mantenimiento"), num(0.10), num(2500)))
		require.True(t, ok)
		assert.Equal(t, models.MonthlyAmount, comp.ValueType)
		assert.Equal(t, "2500", comp.Value.String())
	})

	t.Run("Should accept differences within the tolerance", func(t *testing.T) {
		c := newFixed(10000)
		comp, ok := c.ProcessRow(componentRow(3, text("Peajes"), num(0.0333), num(333.4)))
		require.True(t, ok)
		assert.Equal(t, models.PerKilometerRate, comp.ValueType)
	})

	t.Run("Should use monthly amount when no distance was captured", func(t *testing.T) {
		c := newTestClassifier()
		c.ProcessRow(componentRow(1, text("GASTOS VARIABLES"), blank(), blank()))
		comp, ok := c.ProcessRow(componentRow(2, text("Gasoil"), num(0), num(0.5)))
		require.True(t, ok)
		assert.Equal(t, models.MonthlyAmount, comp.ValueType)
		assert.Equal(t, models.CategoryVariable, comp.Category)
	})

	t.Run("Should use monthly amount when the rate cell is empty", func(t *testing.T) {
		c := newFixed(10000)
		comp, ok := c.ProcessRow(componentRow(3, text("Seguro"), blank(), num(0.4)))
		require.True(t, ok)
		assert.Equal(t, models.MonthlyAmount, comp.ValueType)
		assert.Equal(t, "0.4", comp.Value.String())
	})

	t.Run("Should round values to six places", func(t *testing.T) {
		c := newFixed(20000)
		comp, ok := c.ProcessRow(componentRow(3, text("Otros"), blank(), num(12.34567891)))
		require.True(t, ok)
		assert.Equal(t, "12.345679", comp.Value.String())
	})
}

func TestClassifierNearZeroSuppression(t *testing.T) {
	c := newTestClassifier()
	c.ProcessRow(componentRow(1, text("KMS MENSUALES"), blank(), num(10000)))
	c.ProcessRow(componentRow(2, text("GASTOS FIJOS"), blank(), blank()))

	tests := []struct {
		name    string
		rate    models.Cell
		monthly models.Cell
	}{
		{"tiny monthly", blank(), num(0.0000001)},
		{"zero monthly", blank(), num(0)},
		{"empty monthly", blank(), blank()},
		{"zero rate reconciling zero monthly", num(0), num(0)},
		{"tiny rate reconciling", num(0.00000001), num(0.0001)},
	}

	for i, tt := range tests {
		_, ok := c.ProcessRow(componentRow(3+i, text(tt.name), tt.rate, tt.monthly))
		assert.False(t, ok, tt.name)
	}
}

func TestClassifyRowsScenario(t *testing.T) {
	rows := []models.Row{
		componentRow(1, text("KMS MENSUALES"), blank(), num(10000)),
		componentRow(2, text("GASTOS FIJOS"), blank(), blank()),
		componentRow(3, text("Seguro"), num(0.05), num(450)),
	}

	components := ClassifyRows(rows, DefaultComponentLayout(), DefaultTolerances())
	require.Len(t, components, 1)
	comp := components[0]
	assert.Equal(t, "Seguro", comp.Name)
	assert.Equal(t, models.CategoryFixed, comp.Category)
	assert.Equal(t, models.MonthlyAmount, comp.ValueType)
	assert.Equal(t, "450", comp.Value.String())
	assert.Equal(t, 0, comp.Order)
	assert.True(t, comp.IsEditable)
}

func TestClassifyRowsOrderIsContiguous(t *testing.T) {
	rows := []models.Row{
		componentRow(1, text("KMS MENSUALES"), blank(), num(10000)),
		componentRow(2, text("Seguro previo"), blank(), num(100)),
		componentRow(3, text("GASTOS FIJOS"), blank(), blank()),
		componentRow(4, text("Renting"), blank(), num(2100)),
		componentRow(5, text("Vacío"), blank(), num(0)),
		componentRow(6, text("Planificación flota"), blank(), num(90)),
		componentRow(7, text("GASTOS VARIABLES"), blank(), blank()),
		componentRow(8, text("Neumáticos"), num(0.02), num(200)),
		componentRow(9, text("PRECIO GASOIL"), num(1.3), blank()),
		componentRow(10, text("Gasoil"), num(0.4), num(4000)),
		componentRow(11, text("COSTE TOTAL"), blank(), num(6390)),
		componentRow(12, text("Fuera"), blank(), num(10)),
		componentRow(13, text("MARGEN"), num(0.1), blank()),
	}

	components := ClassifyRows(rows, DefaultComponentLayout(), DefaultTolerances())
	names := make([]string, len(components))
	for i, comp := range components {
		assert.Equal(t, i, comp.Order)
		names[i] = comp.Name
	}
	assert.Equal(t, []string{"Renting", "Planificación flota", "Neumáticos", "Gasoil", "MARGEN"}, names)
	assert.Equal(t, models.CategoryOverhead, components[1].Category)
	assert.Equal(t, models.CategoryVariable, components[2].Category)
	assert.Equal(t, models.PerKilometerRate, components[3].ValueType)
}

func TestClassifierIgnoresUnparseableText(t *testing.T) {
	c := newTestClassifier()
	c.ProcessRow(componentRow(1, text("KMS MENSUALES"), blank(), num(10000)))
	c.ProcessRow(componentRow(2, text("GASTOS FIJOS"), blank(), blank()))

	comp, ok := c.ProcessRow(componentRow(3, text("Seguro"), text("n/a"), num(450)))
	require.True(t, ok)
	assert.Equal(t, models.MonthlyAmount, comp.ValueType)
}
