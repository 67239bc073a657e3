package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"flora-chain/config"
)

func writeTempWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	book := excelize.NewFile()
	defer book.Close()

	if sheet != "Sheet1" {
		book.SetSheetName("Sheet1", sheet)
	}
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := book.SetSheetRow(sheet, cell, &cells); err != nil {
			t.Fatalf("setting row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

func TestRows(t *testing.T) {
	path := writeTempWorkbook(t, "Sheet1", [][]interface{}{
		{"Common Name", "Volume", "Districts"},
		{"Amla", "High", "Dehradun, Nainital"},
		{"Buransh", "Low"},
	})
	fetcher := NewFetcher(&config.Config{InputPath: path}, zap.NewNop())

	rows, err := fetcher.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Common Name"] != "Amla" || rows[0]["Districts"] != "Dehradun, Nainital" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	// short row: missing trailing cells read as empty
	if rows[1]["Districts"] != "" {
		t.Fatalf("expected empty cell, got %q", rows[1]["Districts"])
	}
}

func TestRowsNamedSheet(t *testing.T) {
	path := writeTempWorkbook(t, "Survey", [][]interface{}{
		{"Common Name"},
		{"Chirata"},
	})
	fetcher := NewFetcher(&config.Config{InputPath: path, SheetName: "Survey"}, zap.NewNop())

	rows, err := fetcher.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 || rows[0]["Common Name"] != "Chirata" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestRowsMissingWorkbook(t *testing.T) {
	fetcher := NewFetcher(&config.Config{InputPath: filepath.Join(t.TempDir(), "absent.xlsx")}, zap.NewNop())
	if _, err := fetcher.Rows(context.Background()); err == nil {
		t.Fatalf("expected error for missing source")
	}
}

func TestRowsUnknownSheet(t *testing.T) {
	path := writeTempWorkbook(t, "Sheet1", [][]interface{}{{"Common Name"}})
	fetcher := NewFetcher(&config.Config{InputPath: path, SheetName: "Nope"}, zap.NewNop())
	if _, err := fetcher.Rows(context.Background()); err == nil {
		t.Fatalf("expected error for unknown sheet")
	}
}
