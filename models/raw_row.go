package models

// Recognized source spreadsheet columns. Any of them may be absent from a
// given workbook; absence is never an error.
const (
	ColCommonName      = "Common Name"
	ColScientificName  = "Scientific Name"
	ColCategory        = "CATEGORY"
	ColHabitat         = "HABITAT"
	ColConservation    = "Conservation Status"
	ColVolume          = "Volume"
	ColCommercialValue = "Commercial Value"
	ColDistricts       = "Districts"
	ColProducts        = "Products"
	ColPartsUsed       = "Plant Parts Used"
)

// RawRow is a single spreadsheet row as a column-name → cell mapping.
// It only lives for the duration of one pipeline run.
type RawRow map[string]string

// Get returns the cell for the given column, or "" when the column is absent.
func (r RawRow) Get(column string) string {
	return r[column]
}

// GetDefault returns the cell for the given column, or fallback when the
// cell is absent or empty.
func (r RawRow) GetDefault(column, fallback string) string {
	if v := r[column]; v != "" {
		return v
	}
	return fallback
}
