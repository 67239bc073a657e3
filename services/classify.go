package services

import (
	"strings"

	"go.uber.org/zap"

	"flora-chain/models"
)

// Classifier derives the controlled-vocabulary facets of a record: supply
// chain linkage, species type, product focus and canonical plant parts.
type Classifier struct {
	vocab  *Vocabulary
	logger *zap.Logger
}

// NewClassifier creates a classifier over the given vocabulary. A nil
// vocabulary selects the production tables.
func NewClassifier(vocab *Vocabulary, logger *zap.Logger) *Classifier {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Classifier{vocab: vocab, logger: logger}
}

// DetermineLinkage classifies the supply-chain bottleneck from the two
// qualitative labels. When volume lags value the bottleneck is upstream
// (Backward), when value lags volume it is downstream (Forward); equal or
// both-high scores indicate balanced chains (Integrated). Total function.
func (c *Classifier) DetermineLinkage(volume, commercial string) models.Linkage {
	vol := c.vocab.Score(volume)
	val := c.vocab.Score(commercial)
	switch {
	case vol >= 3 && val >= 3:
		return models.LinkageIntegrated
	case vol < val:
		return models.LinkageBackward
	case val < vol:
		return models.LinkageForward
	default:
		return models.LinkageIntegrated
	}
}

// DetermineSpeciesType reads the taxonomic type off the category text. Most
// records are forest-sourced, so NTFP is the default.
func (c *Classifier) DetermineSpeciesType(category string) models.SpeciesType {
	if strings.Contains(strings.ToLower(category), "agro") {
		return models.SpeciesTypeAgro
	}
	return models.SpeciesTypeNTFP
}

// DetermineProductFocus scans the ordered category rules against the joined
// product names and returns the first matching label. The fallback is an
// intentional default branch, not an error path.
func (c *Classifier) DetermineProductFocus(products []string) string {
	joined := strings.ToLower(strings.Join(products, " "))
	for _, rule := range c.vocab.CategoryKeywords {
		for _, keyword := range rule.Keywords {
			if strings.Contains(joined, keyword) {
				return rule.Label
			}
		}
	}
	return FocusOther
}
