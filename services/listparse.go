package services

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalizes every word of s. A fresh caser per call because
// cases.Caser carries transformer state.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// SplitList splits a comma-delimited cell into normalized items, preserving
// source order and duplicates.
func SplitList(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if item := Normalize(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseProducts keeps products in the order they were entered; the first
// product often names the primary value chain.
func ParseProducts(raw string) []string {
	return SplitList(raw)
}

// ParseDistricts title-cases each district, dedupes case-insensitively and
// sorts ascending. District lists are presentation-order-insensitive.
func ParseDistricts(raw string) []string {
	seen := make(map[string]struct{})
	districts := []string{}
	for _, item := range SplitList(raw) {
		titled := titleCase(item)
		key := strings.ToLower(titled)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		districts = append(districts, titled)
	}
	sort.Strings(districts)
	return districts
}
