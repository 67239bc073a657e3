package models

// Recommendation is one pre-rendered advisory block. Content is fixed HTML
// list markup that the presentation layer embeds verbatim.
type Recommendation struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Dataset is the single output artifact of one pipeline run. Species keeps
// the source row order.
type Dataset struct {
	Species         []SpeciesRecord  `json:"species"`
	Recommendations []Recommendation `json:"recommendations"`
}
