package costsheet

import (
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/textnorm"
)

// Extract reads everything opts asks for from src. No remote call is made;
// the result is complete before anything is published.
func Extract(src SheetSource, opts Options) (*models.Extraction, error) {
	if opts.SummarySheet == "" {
		opts.SummarySheet = DefaultSummarySheet
	}

	ext := &models.Extraction{BookName: src.Name()}

	if opts.ShouldExtractEnergies() {
		rows, err := src.Rows(opts.SummarySheet, opts.SummaryLayout.Window)
		if err != nil {
			return nil, NewExtractionError(opts.SummarySheet, "summary", err)
		}
		ext.Summaries = parser.ParseSummary(rows, opts.SummaryLayout, opts.Plan.Keys())

		components, err := extractComponents(src, opts)
		if err != nil {
			return nil, err
		}
		ext.Components = components
	}

	if opts.ShouldExtractParameters() {
		rows, err := src.Rows(opts.SummarySheet, opts.LabelLayout.Window)
		if err != nil {
			return nil, NewExtractionError(opts.SummarySheet, "parameters", err)
		}
		table := parser.NewLabelTable(rows, opts.LabelLayout)
		params, err := parser.ExtractParameters(table, opts.ParameterSources)
		if err != nil {
			return nil, NewExtractionError(opts.SummarySheet, "parameters", err)
		}
		ext.Parameters = params
	}

	return ext, nil
}

// extractComponents classifies every worksheet whose normalized title maps
// to an energy. Energies without a worksheet get no entry.
func extractComponents(src SheetSource, opts Options) (map[string][]models.CostComponent, error) {
	components := make(map[string][]models.CostComponent)
	for _, title := range src.Sheets() {
		energy, ok := opts.Sheets[textnorm.Key(title)]
		if !ok {
			continue
		}

		rows, err := src.Rows(title, opts.ComponentLayout.Window)
		if err != nil {
			return nil, NewExtractionError(title, "components", err)
		}
		components[energy] = parser.ClassifyRows(rows, opts.ComponentLayout, opts.Tolerances)
	}
	return components, nil
}
