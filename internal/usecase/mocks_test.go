package usecase_test

import (
	"context"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// MockStateStore is a mock implementation of StateStore
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Load(ctx context.Context) (*models.RegistryState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegistryState), args.Error(1)
}

func (m *MockStateStore) Save(ctx context.Context, state *models.RegistryState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateStore) GetPath() string {
	args := m.Called()
	return args.String(0)
}

// MockOriginResolver is a mock implementation of OriginResolver
type MockOriginResolver struct {
	mock.Mock
}

func (m *MockOriginResolver) Origin(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

// MockRelayerSelector is a mock implementation of RelayerSelector
type MockRelayerSelector struct {
	mock.Mock
}

func (m *MockRelayerSelector) SelectRelayer(ctx context.Context, relayers []*models.Relayer, prompt string) (*models.Relayer, error) {
	args := m.Called(ctx, relayers, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Relayer), args.Error(1)
}

func (m *MockRelayerSelector) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockEventJournal is a mock implementation of EventJournal
type MockEventJournal struct {
	mock.Mock
}

func (m *MockEventJournal) Append(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventJournal) List(ctx context.Context, filter domain.EventFilter) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

// testClock is a BlockClock starting at a fixed height
type testClock struct {
	height atomic.Uint64
}

func newTestClock(start uint64) *testClock {
	c := &testClock{}
	c.height.Store(start)
	return c
}

func (c *testClock) Current() models.BlockNumber { return c.height.Load() }
func (c *testClock) Advance() models.BlockNumber { return c.height.Add(1) }

// recordingPublisher collects registry events and records what was published
type recordingPublisher struct {
	pending   []domain.Event
	published []domain.Event
	discarded int
}

func (p *recordingPublisher) Notify(event domain.Event) {
	p.pending = append(p.pending, event)
}

func (p *recordingPublisher) Publish(context.Context) {
	p.published = append(p.published, p.pending...)
	p.pending = nil
}

func (p *recordingPublisher) Discard() {
	p.discarded++
	p.pending = nil
}
