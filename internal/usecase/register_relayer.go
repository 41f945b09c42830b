package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// RegisterRelayerParams contains parameters for registering a relayer
type RegisterRelayerParams struct {
	Chains   []models.ChainID
	Metadata []byte
}

// RegisterRelayerResult contains the stored entry
type RegisterRelayerResult struct {
	Relayer *models.Relayer
	Block   models.BlockNumber
}

// RegisterRelayer is the use case for registering the caller as a relayer
type RegisterRelayer struct {
	registry  RelayerRegistry
	origin    OriginResolver
	committer *StateCommitter
	sink      ProgressSink
	log       *slog.Logger
}

// NewRegisterRelayer creates a new RegisterRelayer use case
func NewRegisterRelayer(
	registry RelayerRegistry,
	origin OriginResolver,
	committer *StateCommitter,
	sink ProgressSink,
	log *slog.Logger,
) *RegisterRelayer {
	return &RegisterRelayer{
		registry:  registry,
		origin:    origin,
		committer: committer,
		sink:      sink,
		log:       log.With("usecase", "register"),
	}
}

// Run executes the register use case
func (uc *RegisterRelayer) Run(ctx context.Context, params RegisterRelayerParams) (*RegisterRelayerResult, error) {
	caller, err := uc.origin.Origin(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "registering",
		Message: fmt.Sprintf("Registering relayer %s", caller.Hex()),
		Spinner: true,
	})

	var (
		relayer *models.Relayer
		block   models.BlockNumber
	)
	err = uc.committer.Commit(ctx, func(at models.BlockNumber) error {
		var err error
		relayer, err = uc.registry.Register(caller, params.Chains, params.Metadata, at)
		block = at
		return err
	})
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "failed", Message: err.Error()})
		return nil, err
	}

	uc.log.Debug("relayer registered", "relayer", caller.Hex(), "block", block, "chains", relayer.SupportedChains)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Relayer registered"})

	return &RegisterRelayerResult{Relayer: relayer, Block: block}, nil
}
