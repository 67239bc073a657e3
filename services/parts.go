package services

import (
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// partSeparators tokenizes a "parts used" cell: comma, slash, semicolon or
// the standalone word "and".
var partSeparators = regexp.MustCompile(`(?i),|/|;|\band\b`)

// ParseParts maps a free-text "parts used" cell onto canonical part labels.
// Unknown tokens survive title-cased instead of being dropped. The result is
// deduplicated and ordered by the part taxonomy, unknown labels after all
// known ones, label text breaking ties.
func (c *Classifier) ParseParts(raw string) []string {
	parts := []string{}
	if raw == "" {
		return parts
	}
	seen := make(map[string]struct{})
	for _, token := range partSeparators.Split(raw, -1) {
		cleaned := NormalizeToken(token)
		if cleaned == "" {
			continue
		}
		label, ok := c.vocab.PartLookup[cleaned]
		if !ok {
			label = titleCase(cleaned)
			c.logger.Debug("Plant part outside vocabulary", zap.String("token", cleaned), zap.String("label", label))
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		parts = append(parts, label)
	}
	sort.Slice(parts, func(i, j int) bool {
		ri, rj := c.vocab.PartRank(parts[i]), c.vocab.PartRank(parts[j])
		if ri != rj {
			return ri < rj
		}
		return parts[i] < parts[j]
	})
	return parts
}
