// Package costsheet reads the cost comparison workbook and publishes its
// energies and tariff parameters to the administrative store.
package costsheet

import (
	"github.com/ukaji3/costsheet-go/pkg/costsheet/catalog"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

// Mode selects what Extract reads.
type Mode string

const (
	// ModeAll extracts summaries, components and parameters.
	ModeAll Mode = "all"
	// ModeEnergies extracts summaries and cost components only.
	ModeEnergies Mode = "energies"
	// ModeParameters extracts global parameters only.
	ModeParameters Mode = "parameters"
)

// DefaultSummarySheet is the title of the sheet holding the energy table and
// the global parameters.
const DefaultSummarySheet = "CALCULADORA COSTES"

// Options configures extraction behavior.
type Options struct {
	// Mode specifies what to extract (all, energies, parameters).
	Mode Mode
	// SummarySheet is the title of the summary sheet, matched by textnorm.Key.
	SummarySheet string
	// Plan is the energy catalog. Only its energies are read from the summary.
	Plan catalog.Plan
	// Sheets maps normalized worksheet titles to energy keys.
	Sheets           map[string]string
	SummaryLayout    parser.SummaryLayout
	ComponentLayout  parser.ComponentLayout
	LabelLayout      parser.LabelLayout
	ParameterSources []parser.ParameterSource
	Tolerances       parser.Tolerances
}

// DefaultOptions returns the layout of the "Comparativa combustibles" workbook.
func DefaultOptions() Options {
	return Options{
		Mode:             ModeAll,
		SummarySheet:     DefaultSummarySheet,
		Plan:             catalog.DefaultPlan(),
		Sheets:           catalog.DefaultSheets(),
		SummaryLayout:    parser.DefaultSummaryLayout(),
		ComponentLayout:  parser.DefaultComponentLayout(),
		LabelLayout:      parser.DefaultLabelLayout(),
		ParameterSources: parser.DefaultParameterSources(),
		Tolerances:       parser.DefaultTolerances(),
	}
}

// ShouldExtractEnergies returns whether summaries and components are read.
func (o Options) ShouldExtractEnergies() bool {
	return o.Mode == "" || o.Mode == ModeAll || o.Mode == ModeEnergies
}

// ShouldExtractParameters returns whether global parameters are read.
func (o Options) ShouldExtractParameters() bool {
	return o.Mode == "" || o.Mode == ModeAll || o.Mode == ModeParameters
}
