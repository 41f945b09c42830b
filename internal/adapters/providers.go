package adapters

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/blockchain"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/events"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/fs"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/interactive"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/progress"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/repository/journal"
	"github.com/trebuchet-org/relayer-registry/internal/adapters/senders"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/registry"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// ProvideRegistryState loads the persisted registry state
func ProvideRegistryState(ctx context.Context, store usecase.StateStore) (*models.RegistryState, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry state: %w", err)
	}
	return state, nil
}

// ProvideRegistry restores the registry from persisted state
func ProvideRegistry(cfg *config.RuntimeConfig, notifier registry.Notifier, state *models.RegistryState) (*registry.Registry, error) {
	reg, err := registry.Restore(cfg.Limits, notifier, state)
	if err != nil {
		return nil, fmt.Errorf("failed to restore registry from %s: %w", cfg.StateFile(), err)
	}
	return reg, nil
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewStateStoreAdapter,
	wire.Bind(new(usecase.StateStore), new(*fs.StateStoreAdapter)),
)

// JournalSet provides the event journal and dispatcher
var JournalSet = wire.NewSet(
	journal.NewSQLiteJournal,
	wire.Bind(new(usecase.EventJournal), new(*journal.SQLiteJournal)),

	events.NewDispatcher,
	wire.Bind(new(registry.Notifier), new(*events.Dispatcher)),
	wire.Bind(new(usecase.EventPublisher), new(*events.Dispatcher)),
)

// RegistrySet provides the relayer registry
var RegistrySet = wire.NewSet(
	ProvideRegistryState,
	ProvideRegistry,
	wire.Bind(new(usecase.RelayerRegistry), new(*registry.Registry)),
)

// ChainSet provides the block clock and caller origin
var ChainSet = wire.NewSet(
	blockchain.NewBlockClockAdapter,
	wire.Bind(new(usecase.BlockClock), new(*blockchain.BlockClockAdapter)),

	senders.NewKeyOrigin,
	wire.Bind(new(usecase.OriginResolver), new(*senders.KeyOrigin)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.RelayerSelector), new(*interactive.SelectorAdapter)),

	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	JournalSet,
	RegistrySet,
	ChainSet,
	InteractiveSet,
)
