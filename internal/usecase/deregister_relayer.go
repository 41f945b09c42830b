package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// ErrDeregisterCancelled is returned when the user declines the confirmation prompt
var ErrDeregisterCancelled = errors.New("deregistration cancelled")

// DeregisterRelayerParams contains parameters for deregistering
type DeregisterRelayerParams struct {
	// Force skips the confirmation prompt
	Force bool
}

// DeregisterRelayerResult contains the removed account
type DeregisterRelayerResult struct {
	Account common.Address
}

// DeregisterRelayer is the use case for removing the caller's entry
type DeregisterRelayer struct {
	config    *config.RuntimeConfig
	registry  RelayerRegistry
	origin    OriginResolver
	committer *StateCommitter
	selector  RelayerSelector
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeregisterRelayer creates a new DeregisterRelayer use case
func NewDeregisterRelayer(
	cfg *config.RuntimeConfig,
	registry RelayerRegistry,
	origin OriginResolver,
	committer *StateCommitter,
	selector RelayerSelector,
	sink ProgressSink,
	log *slog.Logger,
) *DeregisterRelayer {
	return &DeregisterRelayer{
		config:    cfg,
		registry:  registry,
		origin:    origin,
		committer: committer,
		selector:  selector,
		sink:      sink,
		log:       log.With("usecase", "deregister"),
	}
}

// Run executes the deregister use case
func (uc *DeregisterRelayer) Run(ctx context.Context, params DeregisterRelayerParams) (*DeregisterRelayerResult, error) {
	caller, err := uc.origin.Origin(ctx)
	if err != nil {
		return nil, err
	}

	if !uc.registry.IsRegistered(caller) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRegistered, caller.Hex())
	}

	if !params.Force && !uc.config.NonInteractive {
		ok, err := uc.selector.Confirm(ctx, fmt.Sprintf("Deregister relayer %s", caller.Hex()))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDeregisterCancelled
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "deregistering",
		Message: fmt.Sprintf("Deregistering relayer %s", caller.Hex()),
		Spinner: true,
	})

	err = uc.committer.Commit(ctx, func(models.BlockNumber) error {
		return uc.registry.Deregister(caller)
	})
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "failed", Message: err.Error()})
		return nil, err
	}

	uc.log.Debug("relayer deregistered", "relayer", caller.Hex())
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Relayer deregistered"})

	return &DeregisterRelayerResult{Account: caller}, nil
}
