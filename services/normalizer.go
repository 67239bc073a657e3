package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"flora-chain/models"
)

// asciiFold decomposes to NFKD, drops combining marks and then anything still
// outside the ASCII range, so diacritics fold to their base letter and
// non-Latin scripts disappear entirely.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize ASCII-folds text and collapses internal whitespace runs to single
// spaces. Total over any input, including empty, and idempotent.
func Normalize(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		// The chain only removes runes and cannot fail on valid UTF-8;
		// fall back to the raw input on malformed bytes.
		folded = text
	}
	return strings.Join(strings.Fields(folded), " ")
}

// NormalizeToken reduces text to the lookup-key form used by the vocabulary
// tables: lowercased, hyphens as spaces, characters outside [a-z ] dropped,
// whitespace collapsed. Never used for display text.
func NormalizeToken(text string) string {
	token := strings.ToLower(Normalize(text))
	token = strings.ReplaceAll(token, "-", " ")
	token = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			return r
		}
		return ' '
	}, token)
	return strings.Join(strings.Fields(token), " ")
}

// Slugify converts a display string into a filesystem-style identifier:
// lowercase, non-alphanumeric runs collapsed to a single hyphen, leading and
// trailing hyphens stripped. May be empty when the input has no alphanumerics;
// callers that need a non-empty slug provide a fallback chain.
func Slugify(value string) string {
	slug := slugRE.ReplaceAllString(strings.ToLower(value), "-")
	return strings.Trim(slug, "-")
}

// CleanRow normalizes every cell of a raw spreadsheet row.
func CleanRow(row models.RawRow) models.RawRow {
	cleaned := make(models.RawRow, len(row))
	for column, cell := range row {
		cleaned[column] = Normalize(cell)
	}
	return cleaned
}

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
