//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/relayer-registry/internal/adapters"
	"github.com/trebuchet-org/relayer-registry/internal/config"
	"github.com/trebuchet-org/relayer-registry/internal/logging"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// InitApp creates a fully wired App instance. The cleanup function closes
// the event journal.
func InitApp(ctx context.Context, v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewStateCommitter,
		usecase.NewRegisterRelayer,
		usecase.NewUpdateRelayer,
		usecase.NewDeregisterRelayer,
		usecase.NewListRelayers,
		usecase.NewShowRelayer,
		usecase.NewWhoami,
		usecase.NewListEvents,
		usecase.NewShowConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
