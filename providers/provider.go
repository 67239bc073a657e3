package providers

import (
	"context"

	"flora-chain/models"
)

// Provider is the interface every row source (Excel workbook, CSV export)
// must implement.
type Provider interface {
	// Rows materializes the full row set of the source. A missing or
	// unreadable source is the only fatal condition in the pipeline.
	Rows(ctx context.Context) ([]models.RawRow, error)

	// Name returns the unique provider name (e.g. "excel").
	Name() string
}
