package domain

import "github.com/trebuchet-org/relayer-registry/internal/domain/models"

// RelayerFilter defines filtering options for relayer listings
type RelayerFilter struct {
	// ChainID restricts the listing to relayers servicing this chain. nil lists all.
	ChainID *models.ChainID
}

// EventFilter defines filtering options for the event journal
type EventFilter struct {
	Kind  EventKind
	Limit int
}
