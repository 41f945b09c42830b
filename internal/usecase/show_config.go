package usecase

import (
	"context"

	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
)

// ShowConfigResult contains the effective configuration
type ShowConfigResult struct {
	Config    *config.RuntimeConfig
	StatePath string
	Height    uint64
	Relayers  int
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config   *config.RuntimeConfig
	registry RelayerRegistry
	clock    BlockClock
	store    StateStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, registry RelayerRegistry, clock BlockClock, store StateStore) *ShowConfig {
	return &ShowConfig{
		config:   cfg,
		registry: registry,
		clock:    clock,
		store:    store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	return &ShowConfigResult{
		Config:    uc.config,
		StatePath: uc.store.GetPath(),
		Height:    uc.clock.Current(),
		Relayers:  uc.registry.Count(),
	}, nil
}
