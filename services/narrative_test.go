package services

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestGenerateRecommendations(t *testing.T) {
	agg := NewAggregates()
	for _, rec := range sampleRecords() {
		agg.Observe(rec)
	}

	blocks := NewNarrativeGenerator(zap.NewNop()).Generate(agg)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 recommendation blocks, got %d", len(blocks))
	}

	titles := []string{"For Community Enterprises", "For Entrepreneurs", "For Planners & Support Agencies"}
	for i, title := range titles {
		if blocks[i].Title != title {
			t.Fatalf("block %d title = %q, want %q", i, blocks[i].Title, title)
		}
		if !strings.HasPrefix(blocks[i].Content, `<ul class="list-disc list-inside space-y-2 text-slate-600">`) {
			t.Fatalf("block %d content does not start with the list markup", i)
		}
		if strings.Count(blocks[i].Content, "<li>") != 4 {
			t.Fatalf("block %d has %d items, want 4", i, strings.Count(blocks[i].Content, "<li>"))
		}
	}

	// Almora leads the district counter with 2 records.
	if !strings.Contains(blocks[0].Content, "Almora (2)") {
		t.Fatalf("community block missing top district: %s", blocks[0].Content)
	}
	// Parts are listed lowercased.
	if !strings.Contains(blocks[0].Content, "fruit (2)") {
		t.Fatalf("community block missing top part: %s", blocks[0].Content)
	}
	// 2 NTFPs, 1 agro-commodity; Forward+Integrated = 2.
	if !strings.Contains(blocks[1].Content, "mix of 2 NTFPs and 1 agro-commodities") {
		t.Fatalf("entrepreneur block missing species split: %s", blocks[1].Content)
	}
	if !strings.Contains(blocks[1].Content, "2 commodities need forward or integrated support") {
		t.Fatalf("entrepreneur block missing linkage sum: %s", blocks[1].Content)
	}
	// Two distinct non-empty habitats.
	if !strings.Contains(blocks[2].Content, "With 2 habitat categories represented") {
		t.Fatalf("planner block missing habitat count: %s", blocks[2].Content)
	}
}

func TestFormatPairs(t *testing.T) {
	pairs := []Pair{{"Dehradun", 3}, {"Nainital", 1}}
	if got := formatPairs(pairs, false); got != "Dehradun (3), Nainital (1)" {
		t.Fatalf("formatPairs = %q", got)
	}
	if got := formatPairs([]Pair{{"Fruit", 2}}, true); got != "fruit (2)" {
		t.Fatalf("formatPairs lowered = %q", got)
	}
	if got := formatPairs(nil, false); got != "" {
		t.Fatalf("formatPairs(nil) = %q", got)
	}
}
