package costsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/costsheet-go/pkg/costsheet/admin"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/catalog"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a required worksheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Errors raised by the extraction and import stages, re-exported so callers
// only need this package for errors.Is checks.
var (
	ErrLabelNotFound     = parser.ErrLabelNotFound
	ErrIndexOutOfRange   = parser.ErrIndexOutOfRange
	ErrMissingSummary    = catalog.ErrMissingSummary
	ErrMissingDependency = catalog.ErrMissingDependency
	ErrRemoteUnavailable = admin.ErrRemoteUnavailable
	ErrRemoteRejected    = admin.ErrRemoteRejected
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "summary", "components", "parameters", "cells"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
