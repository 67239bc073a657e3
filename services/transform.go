package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"flora-chain/models"
	"flora-chain/providers"
)

// TransformService runs the whole normalization pipeline: provider rows in,
// one dataset out.
type TransformService struct {
	Provider  providers.Provider
	Builder   *RecordBuilder
	Narrative *NarrativeGenerator
	Logger    *zap.Logger
}

func NewTransformService(provider providers.Provider, builder *RecordBuilder, narrative *NarrativeGenerator, logger *zap.Logger) *TransformService {
	return &TransformService{
		Provider:  provider,
		Builder:   builder,
		Narrative: narrative,
		Logger:    logger,
	}
}

// Run materializes all rows, derives one record per row in input order, folds
// the aggregates and renders the recommendations. The only failure mode is
// the row source itself; individual rows never fail and none are dropped.
func (t *TransformService) Run(ctx context.Context) (*models.Dataset, error) {
	rows, err := t.Provider.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rows from provider %s: %w", t.Provider.Name(), err)
	}

	records := make([]models.SpeciesRecord, 0, len(rows))
	agg := NewAggregates()
	for _, row := range rows {
		rec := t.Builder.Build(CleanRow(row))
		agg.Observe(rec)
		records = append(records, rec)
	}

	t.Logger.Info("Dataset built",
		zap.Int("species", len(records)),
		zap.Int("districts", agg.Districts.Len()),
		zap.Int("habitats", agg.Habitats.Len()),
	)

	return &models.Dataset{
		Species:         records,
		Recommendations: t.Narrative.Generate(agg),
	}, nil
}
