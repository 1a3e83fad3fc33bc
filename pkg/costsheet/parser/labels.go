package parser

import (
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/textnorm"
)

// LabelLayout locates label/value pairs inside a worksheet window.
type LabelLayout struct {
	// Window is the region scanned for labels.
	Window Window
	// LabelColumns are window offsets of label cells. Each label is followed
	// by its two value cells.
	LabelColumns []int
}

// DefaultLabelLayout returns the layout of the CALCULADORA COSTES sheet: two
// label/value groups side by side (A:C and D:F) over the first 120 rows.
func DefaultLabelLayout() LabelLayout {
	return LabelLayout{
		Window:       MustWindow("A1:F120"),
		LabelColumns: []int{0, 3},
	}
}

// LabelTable indexes worksheet rows by normalized label.
// It is immutable once built.
type LabelTable struct {
	data map[string][2]models.Cell
}

// NewLabelTable indexes every non-empty label cell of rows. A later row with
// the same normalized label replaces the earlier entry.
func NewLabelTable(rows []models.Row, layout LabelLayout) *LabelTable {
	t := &LabelTable{data: make(map[string][2]models.Cell)}
	for _, row := range rows {
		for _, col := range layout.LabelColumns {
			cell := row.Cell(col)
			if !cell.Present() {
				continue
			}
			t.data[textnorm.Label(cell.String())] = [2]models.Cell{row.Cell(col + 1), row.Cell(col + 2)}
		}
	}
	return t
}

// Len returns the number of distinct labels.
func (t *LabelTable) Len() int {
	return len(t.data)
}

// Has reports whether label is present, regardless of its values.
func (t *LabelTable) Has(label string) bool {
	_, ok := t.data[textnorm.Label(label)]
	return ok
}

// Number returns the index-th numeric value next to label, skipping
// non-numeric cells.
func (t *LabelTable) Number(label string, index int) (float64, error) {
	slot, ok := t.data[textnorm.Label(label)]
	if !ok {
		return 0, &LookupError{Label: label, Index: index, Err: ErrLabelNotFound}
	}

	var values []float64
	for _, c := range slot {
		if c.IsNumber() {
			values = append(values, c.Number)
		}
	}
	if index < 0 || index >= len(values) {
		return 0, &LookupError{Label: label, Index: index, Err: ErrIndexOutOfRange}
	}
	return values[index], nil
}

// Text returns the first text value next to label. It reports false when the
// label is absent or carries no text.
func (t *LabelTable) Text(label string) (string, bool) {
	slot, ok := t.data[textnorm.Label(label)]
	if !ok {
		return "", false
	}
	for _, c := range slot {
		if c.Kind == models.CellText {
			return c.Text, true
		}
	}
	return "", false
}
