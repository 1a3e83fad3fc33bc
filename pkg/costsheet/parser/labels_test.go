package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// labelRow builds a row of the CALCULADORA COSTES layout: label A, values B:C,
// label D, values E:F.
func labelRow(r int, cells ...models.Cell) models.Row {
	row := models.Row{R: r, Cells: make([]models.Cell, 6)}
	copy(row.Cells, cells)
	return row
}

func num(v float64) models.Cell { return models.NumberCell(v) }
func text(s string) models.Cell { return models.TextCell(s) }
func blank() models.Cell        { return models.Cell{} }

func TestLabelTable(t *testing.T) {
	rows := []models.Row{
		labelRow(1, text("Kms Vehiculo /Dia"), num(600), blank(), text("PRECIO SEMIRREMOLQUE"), num(850), num(300)),
		labelRow(2, text("Conductores *"), text("A partir de 500 km"), num(2)),
		labelRow(3, text("DIAS MES"), blank(), blank()),
		labelRow(4, blank(), num(7), num(8)),
	}
	table := NewLabelTable(rows, DefaultLabelLayout())

	t.Run("Should find labels regardless of accents, case and spacing", func(t *testing.T) {
		for _, q := range []string{"KMS VEHICULO /DIA", "kms vehículo/día", "  Kms   Vehiculo /Dia"} {
			v, err := table.Number(q, 0)
			require.NoError(t, err, q)
			assert.Equal(t, 600.0, v, q)
		}
	})

	t.Run("Should read both labels of a row", func(t *testing.T) {
		first, err := table.Number("PRECIO SEMIRREMOLQUE", 0)
		require.NoError(t, err)
		second, err := table.Number("PRECIO SEMIRREMOLQUE", 1)
		require.NoError(t, err)
		assert.Equal(t, 850.0, first)
		assert.Equal(t, 300.0, second)
	})

	t.Run("Should skip text when indexing numeric values", func(t *testing.T) {
		v, err := table.Number("Conductores *", 0)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("Should return NotFound for an absent label", func(t *testing.T) {
		_, err := table.Number("SALARIO CONDUCTOR", 0)
		require.ErrorIs(t, err, ErrLabelNotFound)
		var lookupErr *LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "SALARIO CONDUCTOR", lookupErr.Label)
	})

	t.Run("Should return OutOfRange when too few numbers exist", func(t *testing.T) {
		_, err := table.Number("KMS VEHICULO /DIA", 1)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("Should keep labels without values", func(t *testing.T) {
		assert.True(t, table.Has("dias mes"))
		_, err := table.Number("DIAS MES", 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("Should ignore rows without a label", func(t *testing.T) {
		assert.Equal(t, 4, table.Len())
	})

	t.Run("Should return the first text value", func(t *testing.T) {
		s, ok := table.Text("CONDUCTORES")
		require.True(t, ok)
		assert.Equal(t, "A partir de 500 km", s)

		_, ok = table.Text("DIAS MES")
		assert.False(t, ok)
		_, ok = table.Text("missing")
		assert.False(t, ok)
	})
}

func TestLabelTableStoredStrings(t *testing.T) {
	rows := []models.Row{
		labelRow(1, text("Conductores *"), text("500"), num(2)),
		labelRow(2, text("MARGEN"), text("0.15")),
	}
	table := NewLabelTable(rows, DefaultLabelLayout())

	t.Run("Should return numeric-looking text as text", func(t *testing.T) {
		s, ok := table.Text("CONDUCTORES")
		require.True(t, ok)
		assert.Equal(t, "500", s)
	})

	t.Run("Should not count numeric-looking text as a number", func(t *testing.T) {
		v, err := table.Number("CONDUCTORES", 0)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)

		_, err = table.Number("MARGEN", 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestLabelTableLastWriteWins(t *testing.T) {
	rows := []models.Row{
		labelRow(1, text("MARGEN"), num(0.1)),
		labelRow(2, blank(), blank(), blank(), text("Margen"), num(0.12)),
	}
	table := NewLabelTable(rows, DefaultLabelLayout())

	v, err := table.Number("MARGEN", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.12, v)
}
