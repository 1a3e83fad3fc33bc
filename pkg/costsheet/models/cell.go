// Package models defines data structures for cost sheet extraction.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CellKind identifies the type of value held by a Cell.
type CellKind int

const (
	// CellEmpty is a blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a text cell.
	CellText
)

// Cell is a single typed worksheet value.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a text cell. Empty text yields an empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool {
	return c.Kind == CellNumber
}

// Present reports whether the cell carries a meaningful value:
// non-empty, non-zero and not blank text.
func (c Cell) Present() bool {
	switch c.Kind {
	case CellNumber:
		return c.Number != 0
	case CellText:
		return strings.TrimSpace(c.Text) != ""
	default:
		return false
	}
}

// ParseNumber parses s as a finite number. "NaN" and "Inf" spellings are
// rejected.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float returns the numeric value of the cell. Text cells are accepted when
// they hold a finite number; empty cells and other text report false.
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Number, true
	case CellText:
		return ParseNumber(c.Text)
	default:
		return 0, false
	}
}

// FloatOrZero returns the numeric value of the cell, or 0 when it has none.
func (c Cell) FloatOrZero() float64 {
	f, _ := c.Float()
	return f
}

// String returns the display text of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// MarshalJSON renders numbers as JSON numbers, text as strings and empty cells as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNumber:
		return json.Marshal(c.Number)
	case CellText:
		return json.Marshal(c.Text)
	default:
		return []byte("null"), nil
	}
}

// Row represents a single worksheet row restricted to a column window.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the row values; index 0 is the first column of the window.
	Cells []Cell `json:"c"`
}

// Cell returns the cell at the given window offset, or an empty cell when out of range.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[i]
}

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
