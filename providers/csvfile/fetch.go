package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"

	"flora-chain/config"
	"flora-chain/models"
)

// Fetcher reads survey rows from a CSV export of the source spreadsheet.
type Fetcher struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, logger: logger}
}

func (f *Fetcher) Name() string {
	return "csv"
}

// Rows reads the whole file, treating the first record as the header.
func (f *Fetcher) Rows(ctx context.Context) ([]models.RawRow, error) {
	file, err := os.Open(f.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("opening csv %s: %w", f.cfg.InputPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // human-edited exports have ragged rows
	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv %s: %w", f.cfg.InputPath, err)
	}
	if len(all) == 0 {
		f.logger.Warn("CSV file has no rows", zap.String("path", f.cfg.InputPath))
		return []models.RawRow{}, nil
	}

	header := all[0]
	records := make([]models.RawRow, 0, len(all)-1)
	for _, cells := range all[1:] {
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

	f.logger.Info("Rows loaded from csv",
		zap.String("path", f.cfg.InputPath),
		zap.Int("rows", len(records)),
	)
	return records, nil
}
