package parser

import (
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/xuri/excelize/v2"
)

// RangeStats describes where data sits inside a set of windowed rows.
type RangeStats struct {
	// Range is the bounding box of non-empty cells in A1 notation ("" when none).
	Range string
	// NonEmpty is the number of non-empty cells.
	NonEmpty int
	// Density is NonEmpty divided by the bounding box area.
	Density float64
}

// DataRange computes the bounding box of non-empty cells in rows read from win.
func DataRange(rows []models.Row, win Window) RangeStats {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return RangeStats{}
	}

	nonEmpty := countNonEmptyCells(rows)
	total := (maxRow - minRow + 1) * (maxCol - minCol + 1)

	startCell, _ := excelize.CoordinatesToCellName(win.C1+minCol, minRow)
	endCell, _ := excelize.CoordinatesToCellName(win.C1+maxCol, maxRow)

	return RangeStats{
		Range:    startCell + ":" + endCell,
		NonEmpty: nonEmpty,
		Density:  float64(nonEmpty) / float64(total),
	}
}

// findDataBounds finds the bounding box of non-empty cells.
// Rows are returned as sheet row numbers, columns as window offsets.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.Cells {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || row.R < minRow {
				minRow = row.R
			}
			if maxRow < 0 || row.R > maxRow {
				maxRow = row.R
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells.
func countNonEmptyCells(rows []models.Row) int {
	count := 0
	for _, row := range rows {
		for _, cell := range row.Cells {
			if !cell.IsEmpty() {
				count++
			}
		}
	}
	return count
}
