package models

// SheetData represents a window of a single sheet, used for inspection.
type SheetData struct {
	// Name is the worksheet title.
	Name string `json:"name"`
	// Window is the A1 range that was read.
	Window string `json:"window"`
	// DataRange is the bounding range of non-empty cells within the window.
	DataRange string `json:"data_range,omitempty"`
	// NonEmpty is the number of non-empty cells within the window.
	NonEmpty int `json:"non_empty"`
	// Density is NonEmpty over the area of DataRange.
	Density float64 `json:"density"`
	// Rows contains the rows read from the window.
	Rows []Row `json:"rows,omitempty"`
}
