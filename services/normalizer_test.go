package services

import (
	"testing"

	"flora-chain/models"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Amla  ", "Amla"},
		{"Dehradün", "Dehradun"},
		{"café  noir", "cafe noir"},
		{"mango\t\njuice", "mango juice"},
		{"नमस्ते mango", "mango"},
		{"Sea Buckthorn", "Sea Buckthorn"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  Amla  ", "Dehradün", "a  b   c", "Açaí-Berry", "नमस्ते mango"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Root-Rhizome", "root rhizome"},
		{"  LEAVES ", "leaves"},
		{"nut (kernel)", "nut kernel"},
		{"Fruit!", "fruit"},
		{"1234", ""},
	}
	for _, c := range cases {
		if got := NormalizeToken(c.in); got != c.want {
			t.Fatalf("NormalizeToken(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Wild Honey & Bee Wax", "wild-honey-bee-wax"},
		{"Amla", "amla"},
		{"  Sea Buckthorn  ", "sea-buckthorn"},
		{"???", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanRow(t *testing.T) {
	row := models.RawRow{
		"Common Name": "  Amla ",
		"Districts":   "Dehradün,  Nainital",
	}
	cleaned := CleanRow(row)
	if cleaned["Common Name"] != "Amla" {
		t.Fatalf("unexpected cell: %q", cleaned["Common Name"])
	}
	if cleaned["Districts"] != "Dehradun, Nainital" {
		t.Fatalf("unexpected cell: %q", cleaned["Districts"])
	}
	// source row untouched
	if row["Common Name"] != "  Amla " {
		t.Fatalf("CleanRow mutated its input")
	}
}
