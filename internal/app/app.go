package app

import (
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	RegisterRelayer   *usecase.RegisterRelayer
	UpdateRelayer     *usecase.UpdateRelayer
	DeregisterRelayer *usecase.DeregisterRelayer
	ListRelayers      *usecase.ListRelayers
	ShowRelayer       *usecase.ShowRelayer
	Whoami            *usecase.Whoami
	ListEvents        *usecase.ListEvents
	ShowConfig        *usecase.ShowConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	registerRelayer *usecase.RegisterRelayer,
	updateRelayer *usecase.UpdateRelayer,
	deregisterRelayer *usecase.DeregisterRelayer,
	listRelayers *usecase.ListRelayers,
	showRelayer *usecase.ShowRelayer,
	whoami *usecase.Whoami,
	listEvents *usecase.ListEvents,
	showConfig *usecase.ShowConfig,
) *App {
	return &App{
		Config:            cfg,
		RegisterRelayer:   registerRelayer,
		UpdateRelayer:     updateRelayer,
		DeregisterRelayer: deregisterRelayer,
		ListRelayers:      listRelayers,
		ShowRelayer:       showRelayer,
		Whoami:            whoami,
		ListEvents:        listEvents,
		ShowConfig:        showConfig,
	}
}
