package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"flora-chain/models"
)

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		Species: []models.SpeciesRecord{
			{
				Name:        "Amla",
				SpeciesType: models.SpeciesTypeNTFP,
				Linkage:     models.LinkageIntegrated,
				Districts:   []string{"Dehradun"},
				PartsUsed:   []string{"Fruit"},
				Products:    []string{"Candy"},
			},
		},
		Recommendations: []models.Recommendation{
			{Title: "For Community Enterprises", Content: "<ul></ul>"},
		},
	}
}

func TestWriteDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := WriteDataset(path, sampleDataset()); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	var decoded models.Dataset
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(decoded.Species) != 1 || decoded.Species[0].Name != "Amla" {
		t.Fatalf("unexpected artifact content: %+v", decoded)
	}
}

func TestWriteDatasetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}
	if err := WriteDataset(path, sampleDataset()); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	var decoded models.Dataset
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("artifact not replaced: %v", err)
	}
}

func TestWriteDatasetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := WriteDataset(path, sampleDataset()); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("listing dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestDatasetFieldNames(t *testing.T) {
	raw, err := MarshalDataset(sampleDataset())
	if err != nil {
		t.Fatalf("MarshalDataset: %v", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"species", "recommendations"} {
		if _, ok := top[key]; !ok {
			t.Fatalf("artifact missing top-level key %q", key)
		}
	}
	var species []map[string]json.RawMessage
	if err := json.Unmarshal(top["species"], &species); err != nil {
		t.Fatalf("unmarshal species: %v", err)
	}
	for _, key := range []string{"name", "botanical", "image", "speciesType", "habitat", "conservation",
		"districts", "partsUsed", "products", "productFocus", "linkage", "volume", "commercialValue",
		"strength", "justification"} {
		if _, ok := species[0][key]; !ok {
			t.Fatalf("species record missing field %q", key)
		}
	}
}
