package models

// Extraction is everything read from a cost comparison workbook before any
// remote call is made.
type Extraction struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Summaries maps canonical energy key to its summary table figures.
	Summaries map[string]EnergySummary `json:"summaries,omitempty"`
	// Components maps canonical energy key to the components of its worksheet.
	Components map[string][]CostComponent `json:"components,omitempty"`
	// Parameters lists global parameters in extraction order.
	Parameters []Parameter `json:"parameters,omitempty"`
}
