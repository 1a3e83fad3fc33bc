// Package parser reads cost comparison worksheets: typed cell windows, label
// tables, cost component classification and parameter extraction.
package parser

import (
	"strings"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows reads the cells of a sheet that fall inside win.
// Every returned row has exactly win.Width() cells; rows past the last
// populated row of the sheet are not returned. Cells stored as strings stay
// text even when they look numeric.
func ReadRows(f *excelize.File, sheetName string, win Window) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.Row
	for rowNum := win.R1; rowNum <= win.R2 && rowNum <= len(rows); rowNum++ {
		raw := rows[rowNum-1] // GetRows is 0-based
		cells := make([]models.Cell, win.Width())
		for colNum := win.C1; colNum <= win.C2; colNum++ {
			if colNum-1 >= len(raw) || raw[colNum-1] == "" {
				continue
			}
			cell, err := readCell(f, sheetName, colNum, rowNum, raw[colNum-1])
			if err != nil {
				return nil, err
			}
			cells[colNum-win.C1] = cell
		}
		result = append(result, models.Row{R: rowNum, Cells: cells})
	}

	return result, nil
}

// readCell types a non-empty raw value using the type stored in the sheet.
func readCell(f *excelize.File, sheetName string, col, row int, raw string) (models.Cell, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := f.GetCellType(sheetName, name)
	if err != nil {
		return models.Cell{}, err
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.TextCell(raw), nil
	}
	return parseValue(raw), nil
}

// parseValue types a raw cell value.
// Returns a number cell for anything that parses as a finite float, text otherwise.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Cell{}
	}
	if f, ok := models.ParseNumber(s); ok && s == strings.TrimSpace(s) {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}
