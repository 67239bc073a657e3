package services

// FocusOther is the product-focus fallback when no category rule matches.
const FocusOther = "Other Value Chain"

// defaultScore is assumed for qualitative labels outside the score map.
const defaultScore = 2

// CategoryRule binds a product-focus label to its trigger keywords.
type CategoryRule struct {
	Label    string
	Keywords []string
}

// Vocabulary bundles the controlled-vocabulary tables the classifiers run
// against. Built once at startup and never mutated afterwards; tests inject
// trimmed-down instances.
type Vocabulary struct {
	// ScoreMap maps qualitative volume/value labels to ordinals.
	ScoreMap map[string]int
	// CategoryKeywords is evaluated in declaration order and the first hit
	// wins. The order is load-bearing: "tea" appears under both Beverages
	// and Medicinal & Wellness and must land in Beverages.
	CategoryKeywords []CategoryRule
	// PartLookup maps normalized part tokens to canonical labels.
	PartLookup map[string]string
	// PartOrder ranks canonical part labels for presentation.
	PartOrder []string

	partRank map[string]int
}

// NewVocabulary finalizes the tables and indexes the part ranking.
func NewVocabulary(scores map[string]int, categories []CategoryRule, partLookup map[string]string, partOrder []string) *Vocabulary {
	v := &Vocabulary{
		ScoreMap:         scores,
		CategoryKeywords: categories,
		PartLookup:       partLookup,
		PartOrder:        partOrder,
	}
	v.partRank = make(map[string]int, len(partOrder))
	for i, label := range partOrder {
		v.partRank[label] = i
	}
	return v
}

// Score maps a qualitative label to its ordinal, defaulting unrecognized
// labels to medium.
func (v *Vocabulary) Score(label string) int {
	if s, ok := v.ScoreMap[normalizeLower(label)]; ok {
		return s
	}
	return defaultScore
}

// PartRank returns the presentation rank of a canonical part label. Unknown
// labels rank after every known one.
func (v *Vocabulary) PartRank(label string) int {
	if r, ok := v.partRank[label]; ok {
		return r
	}
	return len(v.PartOrder)
}

// DefaultVocabulary returns the production tables.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(
		map[string]int{"high": 3, "medium": 2, "low": 1},
		[]CategoryRule{
			{Label: "Beverages & Processed Foods", Keywords: []string{
				"juice", "squash", "wine", "jam", "jelly", "pickle", "candy",
				"chutney", "powder", "tea", "coffee", "snack", "sherbet", "churan",
			}},
			{Label: "Extracts & Oils", Keywords: []string{
				"oil", "attar", "distill", "extract", "resin",
			}},
			{Label: "Medicinal & Wellness", Keywords: []string{
				"medicine", "herbal", "supplement", "tonic", "tea", "remedy", "capsule",
			}},
			{Label: "Food Ingredients", Keywords: []string{
				"flour", "grain", "millet", "cereal", "kernel", "seed",
			}},
			{Label: "Fiber & Materials", Keywords: []string{
				"wood", "timber", "fiber", "straw", "shell", "pod",
			}},
		},
		map[string]string{
			"bark":         "Bark",
			"flower":       "Flower",
			"fruit":        "Fruit",
			"grain":        "Grain",
			"grains":       "Grain",
			"leaf":         "Leaf",
			"leaves":       "Leaf",
			"nut":          "Nut & Kernel",
			"kernel":       "Nut & Kernel",
			"nut kernel":   "Nut & Kernel",
			"peel":         "Peel & Pomace",
			"pomace":       "Peel & Pomace",
			"pod":          "Pod",
			"resin":        "Resin & Gum",
			"gum":          "Resin & Gum",
			"root":         "Root & Rhizome",
			"rhizome":      "Root & Rhizome",
			"root rhizome": "Root & Rhizome",
			"seed":         "Seed",
			"shell":        "Shell",
			"shoot":        "Stem & Shoot",
			"stem":         "Stem & Shoot",
			"stem shoot":   "Stem & Shoot",
			"straw":        "Straw",
			"thallus":      "Whole Thallus",
			"wood":         "Wood & Timber",
			"timber":       "Wood & Timber",
		},
		[]string{
			"Bark",
			"Flower",
			"Leaf",
			"Fruit",
			"Seed",
			"Root & Rhizome",
			"Stem & Shoot",
			"Wood & Timber",
			"Nut & Kernel",
			"Resin & Gum",
			"Grain",
			"Straw",
			"Pod",
			"Peel & Pomace",
			"Shell",
			"Whole Thallus",
		},
	)
}
