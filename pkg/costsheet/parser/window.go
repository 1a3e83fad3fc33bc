package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Window is a rectangular cell region of a worksheet (1-based, inclusive).
type Window struct {
	// R1 is the start row.
	R1 int
	// C1 is the start column.
	C1 int
	// R2 is the end row.
	R2 int
	// C2 is the end column.
	C2 int
}

// ParseWindow parses a range string like "A1:F120" or "$A$1:$F$120".
func ParseWindow(ref string) (Window, error) {
	// Remove $ signs and an optional sheet prefix
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("invalid range %q: expected <start>:<end>", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Window{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Window{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow || endCol < startCol {
		return Window{}, fmt.Errorf("invalid range %q: end precedes start", ref)
	}

	return Window{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// MustWindow is like ParseWindow but panics on error. Use it for static layouts.
func MustWindow(ref string) Window {
	w, err := ParseWindow(ref)
	if err != nil {
		panic(err)
	}
	return w
}

// Width returns the number of columns in the window.
func (w Window) Width() int {
	return w.C2 - w.C1 + 1
}

// Height returns the number of rows in the window.
func (w Window) Height() int {
	return w.R2 - w.R1 + 1
}

// String returns the window in A1 notation.
func (w Window) String() string {
	start, _ := excelize.CoordinatesToCellName(w.C1, w.R1)
	end, _ := excelize.CoordinatesToCellName(w.C2, w.R2)
	return start + ":" + end
}
