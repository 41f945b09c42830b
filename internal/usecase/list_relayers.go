package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// ListRelayers is the use case for listing relayers
type ListRelayers struct {
	registry RelayerRegistry
	sink     ProgressSink
}

// NewListRelayers creates a new ListRelayers use case
func NewListRelayers(registry RelayerRegistry, sink ProgressSink) *ListRelayers {
	return &ListRelayers{
		registry: registry,
		sink:     sink,
	}
}

// Run executes the list relayers use case
func (uc *ListRelayers) Run(ctx context.Context, filter domain.RelayerFilter) (*RelayerListResult, error) {
	var relayers []*models.Relayer
	if filter.ChainID != nil {
		relayers = uc.registry.ListByChain(*filter.ChainID)
	} else {
		relayers = uc.registry.ListAll()
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Relayers loaded",
	})

	return &RelayerListResult{
		Relayers: relayers,
		Summary:  uc.calculateSummary(relayers),
	}, nil
}

// calculateSummary calculates summary statistics for a relayer listing
func (uc *ListRelayers) calculateSummary(relayers []*models.Relayer) RelayerSummary {
	// A relayer listing a chain twice is counted once for it
	chains := lo.FlatMap(relayers, func(r *models.Relayer, _ int) []models.ChainID {
		return lo.Uniq(r.SupportedChains)
	})

	return RelayerSummary{
		Total:       len(relayers),
		Registered:  uc.registry.Count(),
		MaxRelayers: uc.registry.Limits().MaxRelayers,
		ByChain:     lo.CountValues(chains),
	}
}
