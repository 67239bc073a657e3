package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"flora-chain/config"
	"flora-chain/models"
)

// Fetcher reads survey rows from an .xlsx workbook.
type Fetcher struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, logger: logger}
}

func (f *Fetcher) Name() string {
	return "excel"
}

// Rows opens the workbook and maps every data row against the header row.
// Cells beyond the header width are ignored; short rows read as empty cells.
func (f *Fetcher) Rows(ctx context.Context) ([]models.RawRow, error) {
	book, err := excelize.OpenFile(f.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", f.cfg.InputPath, err)
	}
	defer book.Close()

	sheet := f.cfg.SheetName
	if sheet == "" {
		sheet = book.GetSheetName(0)
	}
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		f.logger.Warn("Workbook sheet has no rows", zap.String("sheet", sheet))
		return []models.RawRow{}, nil
	}

	header := rows[0]
	records := make([]models.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(models.RawRow, len(header))
		for i, column := range header {
			if column == "" {
				continue
			}
			if i < len(cells) {
				row[column] = cells[i]
			} else {
				row[column] = ""
			}
		}
		records = append(records, row)
	}

	f.logger.Info("Rows loaded from workbook",
		zap.String("sheet", sheet),
		zap.Int("rows", len(records)),
	)
	return records, nil
}
