package models

// SpeciesType is the broad cultivation classification of a commodity.
type SpeciesType string

const (
	// SpeciesTypeNTFP marks a wild or forest-sourced commodity.
	SpeciesTypeNTFP SpeciesType = "NTFP"
	// SpeciesTypeAgro marks an agriculturally cultivated commodity.
	SpeciesTypeAgro SpeciesType = "Agro-commodity"
)

// Linkage is the classified supply-chain bottleneck orientation of a record.
type Linkage string

const (
	// LinkageBackward: supply capacity lags market pull, the bottleneck is upstream.
	LinkageBackward Linkage = "Backward"
	// LinkageForward: market value lags volume, the bottleneck is downstream.
	LinkageForward Linkage = "Forward"
	// LinkageIntegrated: balanced or already-mature chains.
	LinkageIntegrated Linkage = "Integrated"
)

// SpeciesRecord is one normalized commodity entry of the output dataset.
// Every field is a deterministic function of a single source row. The JSON
// tags are the field names the presentation layer reads; they must not change.
type SpeciesRecord struct {
	Name            string      `json:"name"`
	Botanical       string      `json:"botanical"`
	Image           string      `json:"image"`
	SpeciesType     SpeciesType `json:"speciesType"`
	Habitat         string      `json:"habitat"`
	Conservation    string      `json:"conservation"`
	Districts       []string    `json:"districts"`
	PartsUsed       []string    `json:"partsUsed"`
	Products        []string    `json:"products"`
	ProductFocus    string      `json:"productFocus"`
	Linkage         Linkage     `json:"linkage"`
	Volume          string      `json:"volume"`
	CommercialValue string      `json:"commercialValue"`
	Strength        string      `json:"strength"`
	Justification   string      `json:"justification"`
}
