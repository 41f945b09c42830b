package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// UpdateRelayerParams contains the replacement chains and metadata
type UpdateRelayerParams struct {
	Chains   []models.ChainID
	Metadata []byte
}

// UpdateRelayerResult contains the entry before and after the update
type UpdateRelayerResult struct {
	Previous *models.Relayer
	Current  *models.Relayer
}

// UpdateRelayer is the use case for replacing the caller's chains and metadata
type UpdateRelayer struct {
	registry  RelayerRegistry
	origin    OriginResolver
	committer *StateCommitter
	sink      ProgressSink
	log       *slog.Logger
}

// NewUpdateRelayer creates a new UpdateRelayer use case
func NewUpdateRelayer(
	registry RelayerRegistry,
	origin OriginResolver,
	committer *StateCommitter,
	sink ProgressSink,
	log *slog.Logger,
) *UpdateRelayer {
	return &UpdateRelayer{
		registry:  registry,
		origin:    origin,
		committer: committer,
		sink:      sink,
		log:       log.With("usecase", "update"),
	}
}

// Run executes the update use case
func (uc *UpdateRelayer) Run(ctx context.Context, params UpdateRelayerParams) (*UpdateRelayerResult, error) {
	caller, err := uc.origin.Origin(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "updating",
		Message: fmt.Sprintf("Updating relayer %s", caller.Hex()),
		Spinner: true,
	})

	// Not atomic with Update; only used for display
	previous, _ := uc.registry.Get(caller)

	err = uc.committer.Commit(ctx, func(models.BlockNumber) error {
		return uc.registry.Update(caller, params.Chains, params.Metadata)
	})
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "failed", Message: err.Error()})
		return nil, err
	}

	current, _ := uc.registry.Get(caller)
	uc.log.Debug("relayer updated", "relayer", caller.Hex())
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Relayer updated"})

	return &UpdateRelayerResult{Previous: previous, Current: current}, nil
}
