package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// RelayerRegistry is the relayer directory driven by the use cases
type RelayerRegistry interface {
	Register(caller common.Address, chains []models.ChainID, metadata []byte, at models.BlockNumber) (*models.Relayer, error)
	Deregister(caller common.Address) error
	Update(caller common.Address, chains []models.ChainID, metadata []byte) error
	ListAll() []*models.Relayer
	ListByChain(chainID models.ChainID) []*models.Relayer
	IsRegistered(account common.Address) bool
	Get(account common.Address) (*models.Relayer, bool)
	Count() int
	Limits() config.Limits
	Snapshot() *models.RegistryState
	Reset(state *models.RegistryState) error
}

// StateStore handles persistence of the registry state
type StateStore interface {
	Load(ctx context.Context) (*models.RegistryState, error)
	Save(ctx context.Context, state *models.RegistryState) error
	GetPath() string
}

// BlockClock supplies the logical timestamp of mutating calls
type BlockClock interface {
	// Current returns the last block number handed out
	Current() models.BlockNumber
	// Advance moves to the next block and returns it
	Advance() models.BlockNumber
}

// OriginResolver supplies the authenticated caller of mutating calls
type OriginResolver interface {
	Origin(ctx context.Context) (common.Address, error)
}

// EventJournal records registry events
type EventJournal interface {
	Append(ctx context.Context, event domain.Event) error
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.JournalEntry, error)
}

// EventPublisher holds registry events until the mutation that produced
// them has been saved
type EventPublisher interface {
	// Publish delivers the pending events
	Publish(ctx context.Context)
	// Discard drops the pending events
	Discard()
}

// NopEvents is an EventPublisher with nothing to deliver
type NopEvents struct{}

func (NopEvents) Publish(context.Context) {}
func (NopEvents) Discard()                {}

// RelayerSelector handles interactive selection and confirmation
type RelayerSelector interface {
	SelectRelayer(ctx context.Context, relayers []*models.Relayer, prompt string) (*models.Relayer, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// RelayerListResult contains the result of listing relayers
type RelayerListResult struct {
	Relayers []*models.Relayer
	Summary  RelayerSummary
}

// RelayerSummary provides summary statistics
type RelayerSummary struct {
	Total       int
	Registered  int
	MaxRelayers int
	ByChain     map[models.ChainID]int
}

// Remaining returns how many more relayers can register
func (s RelayerSummary) Remaining() int {
	return s.MaxRelayers - s.Registered
}
