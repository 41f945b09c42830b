package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// WhoamiResult reports the caller identity and its registration
type WhoamiResult struct {
	Account    common.Address
	Registered bool
	Relayer    *models.Relayer
}

// Whoami is the use case for resolving the caller and checking its registration
type Whoami struct {
	registry RelayerRegistry
	origin   OriginResolver
}

// NewWhoami creates a new Whoami use case
func NewWhoami(registry RelayerRegistry, origin OriginResolver) *Whoami {
	return &Whoami{registry: registry, origin: origin}
}

// Run executes the whoami use case
func (uc *Whoami) Run(ctx context.Context) (*WhoamiResult, error) {
	account, err := uc.origin.Origin(ctx)
	if err != nil {
		return nil, err
	}

	result := &WhoamiResult{
		Account:    account,
		Registered: uc.registry.IsRegistered(account),
	}
	if result.Registered {
		result.Relayer, _ = uc.registry.Get(account)
	}
	return result, nil
}
