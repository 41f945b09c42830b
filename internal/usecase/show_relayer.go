package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// ShowRelayerParams selects the relayer to show. A nil account prompts for one.
type ShowRelayerParams struct {
	Account *common.Address
}

// ShowRelayer is the use case for showing a single relayer
type ShowRelayer struct {
	config   *config.RuntimeConfig
	registry RelayerRegistry
	selector RelayerSelector
}

// NewShowRelayer creates a new ShowRelayer use case
func NewShowRelayer(cfg *config.RuntimeConfig, registry RelayerRegistry, selector RelayerSelector) *ShowRelayer {
	return &ShowRelayer{
		config:   cfg,
		registry: registry,
		selector: selector,
	}
}

// Run executes the show relayer use case
func (uc *ShowRelayer) Run(ctx context.Context, params ShowRelayerParams) (*models.Relayer, error) {
	if params.Account != nil {
		relayer, ok := uc.registry.Get(*params.Account)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotRegistered, params.Account.Hex())
		}
		return relayer, nil
	}

	if uc.config.NonInteractive {
		return nil, fmt.Errorf("an account is required in non-interactive mode")
	}

	relayers := uc.registry.ListAll()
	if len(relayers) == 0 {
		return nil, fmt.Errorf("no relayers registered")
	}

	return uc.selector.SelectRelayer(ctx, relayers, "Select a relayer")
}
