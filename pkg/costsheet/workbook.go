package costsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/textnorm"
	"github.com/xuri/excelize/v2"
)

// SheetSource supplies worksheet windows as typed rows.
type SheetSource interface {
	// Name identifies the source, usually the workbook file name.
	Name() string
	// Sheets lists worksheet titles in workbook order.
	Sheets() []string
	// Rows returns the rows of sheet inside win.
	Rows(sheet string, win parser.Window) ([]models.Row, error)
}

// Workbook is a SheetSource backed by an xlsx file.
type Workbook struct {
	f    *excelize.File
	name string
}

// Open opens the xlsx file at path.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return FromFile(f, filepath.Base(path)), nil
}

// FromFile wraps an already opened excelize file.
func FromFile(f *excelize.File, name string) *Workbook {
	return &Workbook{f: f, name: name}
}

// Name returns the workbook file name.
func (w *Workbook) Name() string {
	return w.name
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheets lists worksheet titles in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// Rows reads the cells of sheet inside win. The sheet is matched exactly
// first, then by textnorm.Key.
func (w *Workbook) Rows(sheet string, win parser.Window) ([]models.Row, error) {
	title, ok := resolveSheet(w.Sheets(), sheet)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return parser.ReadRows(w.f, title, win)
}

func resolveSheet(titles []string, name string) (string, bool) {
	for _, t := range titles {
		if t == name {
			return t, true
		}
	}
	key := textnorm.Key(name)
	for _, t := range titles {
		if textnorm.Key(t) == key {
			return t, true
		}
	}
	return "", false
}

// Inspect reads win of sheet and reports where its data sits. When limit is
// positive, at most limit rows are returned.
func Inspect(src SheetSource, sheet string, win parser.Window, limit int) (*models.SheetData, error) {
	rows, err := src.Rows(sheet, win)
	if err != nil {
		return nil, NewExtractionError(sheet, "cells", err)
	}

	stats := parser.DataRange(rows, win)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return &models.SheetData{
		Name:      sheet,
		Window:    win.String(),
		DataRange: stats.Range,
		NonEmpty:  stats.NonEmpty,
		Density:   stats.Density,
		Rows:      rows,
	}, nil
}
