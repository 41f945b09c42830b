package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/registry"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistry(t *testing.T, limits config.Limits) *registry.Registry {
	t.Helper()
	reg, err := registry.New(limits, nil)
	require.NoError(t, err)
	return reg
}

func committer(reg usecase.RelayerRegistry, clock usecase.BlockClock, store usecase.StateStore) *usecase.StateCommitter {
	return usecase.NewStateCommitter(reg, clock, store, usecase.NopEvents{})
}

func originOf(ctx context.Context, account common.Address) *MockOriginResolver {
	origin := new(MockOriginResolver)
	origin.On("Origin", ctx).Return(account, nil)
	return origin
}

func TestRegisterRelayer(t *testing.T) {
	ctx := context.Background()

	t.Run("registers caller at the next block and persists", func(t *testing.T) {
		reg := newRegistry(t, config.DefaultLimits())
		clock := newTestClock(41)
		store := new(MockStateStore)
		store.On("Save", ctx, mock.MatchedBy(func(s *models.RegistryState) bool {
			return s.Height == 42 && s.EventSeq == 1 && len(s.Relayers) == 1
		})).Return(nil)
		progress := &MockProgressSink{}

		uc := usecase.NewRegisterRelayer(reg, originOf(ctx, alice), committer(reg, clock, store), progress, discardLogger())
		result, err := uc.Run(ctx, usecase.RegisterRelayerParams{
			Chains:   []models.ChainID{1, 2},
			Metadata: []byte("https://alice"),
		})

		require.NoError(t, err)
		assert.Equal(t, models.BlockNumber(42), result.Block)
		assert.Equal(t, alice, result.Relayer.Account)
		assert.Equal(t, models.BlockNumber(42), result.Relayer.RegisteredAt)
		assert.True(t, reg.IsRegistered(alice))
		assert.Equal(t, []string{"registering", "complete"}, progress.stages())
		store.AssertExpectations(t)
	})

	t.Run("rejected registration does not persist", func(t *testing.T) {
		reg := newRegistry(t, config.DefaultLimits())
		store := new(MockStateStore)
		progress := &MockProgressSink{}

		uc := usecase.NewRegisterRelayer(reg, originOf(ctx, alice), committer(reg, newTestClock(0), store), progress, discardLogger())
		_, err := uc.Run(ctx, usecase.RegisterRelayerParams{})

		assert.ErrorIs(t, err, domain.ErrEmptyChainList)
		assert.Equal(t, 0, reg.Count())
		assert.Equal(t, []string{"registering", "failed"}, progress.stages())
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("origin failure", func(t *testing.T) {
		origin := new(MockOriginResolver)
		origin.On("Origin", ctx).Return(common.Address{}, domain.ErrNoOrigin)

		reg := newRegistry(t, config.DefaultLimits())
		uc := usecase.NewRegisterRelayer(reg, origin, committer(reg, newTestClock(0), new(MockStateStore)), usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.RegisterRelayerParams{Chains: []models.ChainID{1}})

		assert.ErrorIs(t, err, domain.ErrNoOrigin)
	})

	t.Run("save failure rolls back the registration", func(t *testing.T) {
		events := &recordingPublisher{}
		reg, err := registry.New(config.DefaultLimits(), events)
		require.NoError(t, err)
		store := new(MockStateStore)
		store.On("Save", ctx, mock.Anything).Return(errors.New("disk full")).Once()
		store.On("Save", ctx, mock.Anything).Return(nil)
		clock := newTestClock(0)

		uc := usecase.NewRegisterRelayer(reg, originOf(ctx, alice), usecase.NewStateCommitter(reg, clock, store, events), usecase.NopProgress{}, discardLogger())
		_, err = uc.Run(ctx, usecase.RegisterRelayerParams{Chains: []models.ChainID{1}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.False(t, reg.IsRegistered(alice))
		assert.Equal(t, uint64(0), reg.Snapshot().EventSeq)
		assert.Empty(t, events.published)
		assert.Equal(t, 1, events.discarded)

		result, err := uc.Run(ctx, usecase.RegisterRelayerParams{Chains: []models.ChainID{1}})
		require.NoError(t, err)
		assert.Equal(t, models.BlockNumber(2), result.Block)
		require.Len(t, events.published, 1)
		assert.Equal(t, uint64(1), events.published[0].Sequence())
	})
}

func TestUpdateRelayer(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, config.DefaultLimits())
	_, err := reg.Register(alice, []models.ChainID{1}, []byte("old"), 5)
	require.NoError(t, err)

	store := new(MockStateStore)
	store.On("Save", ctx, mock.Anything).Return(nil)

	uc := usecase.NewUpdateRelayer(reg, originOf(ctx, alice), committer(reg, newTestClock(5), store), usecase.NopProgress{}, discardLogger())
	result, err := uc.Run(ctx, usecase.UpdateRelayerParams{
		Chains:   []models.ChainID{3, 4},
		Metadata: []byte("new"),
	})

	require.NoError(t, err)
	assert.Equal(t, []models.ChainID{1}, result.Previous.SupportedChains)
	assert.Equal(t, []models.ChainID{3, 4}, result.Current.SupportedChains)
	assert.Equal(t, "new", result.Current.MetadataString())
	assert.Equal(t, models.BlockNumber(5), result.Current.RegisteredAt)

	t.Run("save failure restores the previous entry", func(t *testing.T) {
		failing := new(MockStateStore)
		failing.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))

		uc := usecase.NewUpdateRelayer(reg, originOf(ctx, alice), committer(reg, newTestClock(5), failing), usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.UpdateRelayerParams{Chains: []models.ChainID{9}})

		assert.ErrorContains(t, err, "disk full")
		relayer, ok := reg.Get(alice)
		require.True(t, ok)
		assert.Equal(t, []models.ChainID{3, 4}, relayer.SupportedChains)
	})

	t.Run("unregistered caller", func(t *testing.T) {
		uc := usecase.NewUpdateRelayer(reg, originOf(ctx, bob), committer(reg, newTestClock(0), store), usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.UpdateRelayerParams{Chains: []models.ChainID{1}})
		assert.ErrorIs(t, err, domain.ErrNotRegistered)
	})
}

func TestDeregisterRelayer(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*registry.Registry, *MockStateStore) {
		reg := newRegistry(t, config.DefaultLimits())
		_, err := reg.Register(alice, []models.ChainID{1}, nil, 1)
		require.NoError(t, err)
		store := new(MockStateStore)
		store.On("Save", ctx, mock.Anything).Return(nil)
		return reg, store
	}

	t.Run("confirmed", func(t *testing.T) {
		reg, store := setup(t)
		selector := new(MockRelayerSelector)
		selector.On("Confirm", ctx, mock.AnythingOfType("string")).Return(true, nil)

		uc := usecase.NewDeregisterRelayer(&config.RuntimeConfig{}, reg, originOf(ctx, alice), committer(reg, newTestClock(1), store), selector, usecase.NopProgress{}, discardLogger())
		result, err := uc.Run(ctx, usecase.DeregisterRelayerParams{})

		require.NoError(t, err)
		assert.Equal(t, alice, result.Account)
		assert.False(t, reg.IsRegistered(alice))
		selector.AssertExpectations(t)
	})

	t.Run("declined", func(t *testing.T) {
		reg, store := setup(t)
		selector := new(MockRelayerSelector)
		selector.On("Confirm", ctx, mock.AnythingOfType("string")).Return(false, nil)

		uc := usecase.NewDeregisterRelayer(&config.RuntimeConfig{}, reg, originOf(ctx, alice), committer(reg, newTestClock(1), store), selector, usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.DeregisterRelayerParams{})

		assert.ErrorIs(t, err, usecase.ErrDeregisterCancelled)
		assert.True(t, reg.IsRegistered(alice))
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("non-interactive skips confirmation", func(t *testing.T) {
		reg, store := setup(t)
		selector := new(MockRelayerSelector)

		uc := usecase.NewDeregisterRelayer(&config.RuntimeConfig{NonInteractive: true}, reg, originOf(ctx, alice), committer(reg, newTestClock(1), store), selector, usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.DeregisterRelayerParams{})

		require.NoError(t, err)
		selector.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("save failure keeps the relayer", func(t *testing.T) {
		reg, _ := setup(t)
		store := new(MockStateStore)
		store.On("Save", ctx, mock.Anything).Return(errors.New("read-only file system"))

		uc := usecase.NewDeregisterRelayer(&config.RuntimeConfig{}, reg, originOf(ctx, alice), committer(reg, newTestClock(1), store), new(MockRelayerSelector), usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.DeregisterRelayerParams{Force: true})

		assert.ErrorContains(t, err, "read-only file system")
		assert.True(t, reg.IsRegistered(alice))
		assert.Equal(t, []common.Address{alice}, reg.Accounts())
	})

	t.Run("unregistered caller", func(t *testing.T) {
		reg, store := setup(t)

		uc := usecase.NewDeregisterRelayer(&config.RuntimeConfig{}, reg, originOf(ctx, bob), committer(reg, newTestClock(1), store), new(MockRelayerSelector), usecase.NopProgress{}, discardLogger())
		_, err := uc.Run(ctx, usecase.DeregisterRelayerParams{Force: true})

		assert.ErrorIs(t, err, domain.ErrNotRegistered)
		assert.Equal(t, 1, reg.Count())
	})
}

func TestListRelayers(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, config.Limits{MaxSupportedChains: 4, MaxMetadataLength: 8, MaxRelayers: 5})
	_, err := reg.Register(alice, []models.ChainID{1, 2, 2}, nil, 1)
	require.NoError(t, err)
	_, err = reg.Register(bob, []models.ChainID{2, 3}, nil, 2)
	require.NoError(t, err)

	t.Run("all relayers with summary", func(t *testing.T) {
		progress := &MockProgressSink{}
		uc := usecase.NewListRelayers(reg, progress)

		result, err := uc.Run(ctx, domain.RelayerFilter{})

		require.NoError(t, err)
		require.Len(t, result.Relayers, 2)
		assert.Equal(t, alice, result.Relayers[0].Account)
		assert.Equal(t, 2, result.Summary.Total)
		assert.Equal(t, 3, result.Summary.Remaining())
		assert.Equal(t, map[models.ChainID]int{1: 1, 2: 2, 3: 1}, result.Summary.ByChain)
		assert.Equal(t, []string{"complete"}, progress.stages())
	})

	t.Run("filtered by chain", func(t *testing.T) {
		chainID := models.ChainID(3)
		uc := usecase.NewListRelayers(reg, usecase.NopProgress{})

		result, err := uc.Run(ctx, domain.RelayerFilter{ChainID: &chainID})

		require.NoError(t, err)
		require.Len(t, result.Relayers, 1)
		assert.Equal(t, bob, result.Relayers[0].Account)
		assert.Equal(t, 1, result.Summary.Total)
		assert.Equal(t, 2, result.Summary.Registered)
	})

	t.Run("unknown chain is empty", func(t *testing.T) {
		chainID := models.ChainID(99)
		uc := usecase.NewListRelayers(reg, usecase.NopProgress{})

		result, err := uc.Run(ctx, domain.RelayerFilter{ChainID: &chainID})

		require.NoError(t, err)
		assert.Empty(t, result.Relayers)
	})
}

func TestShowRelayer(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, config.DefaultLimits())
	_, err := reg.Register(alice, []models.ChainID{1}, []byte("a"), 1)
	require.NoError(t, err)

	t.Run("by account", func(t *testing.T) {
		uc := usecase.NewShowRelayer(&config.RuntimeConfig{}, reg, new(MockRelayerSelector))
		relayer, err := uc.Run(ctx, usecase.ShowRelayerParams{Account: &alice})
		require.NoError(t, err)
		assert.Equal(t, alice, relayer.Account)
	})

	t.Run("unknown account", func(t *testing.T) {
		uc := usecase.NewShowRelayer(&config.RuntimeConfig{}, reg, new(MockRelayerSelector))
		_, err := uc.Run(ctx, usecase.ShowRelayerParams{Account: &bob})
		assert.ErrorIs(t, err, domain.ErrNotRegistered)
	})

	t.Run("interactive selection", func(t *testing.T) {
		selector := new(MockRelayerSelector)
		selector.On("SelectRelayer", ctx, reg.ListAll(), "Select a relayer").Return(reg.ListAll()[0], nil)

		uc := usecase.NewShowRelayer(&config.RuntimeConfig{}, reg, selector)
		relayer, err := uc.Run(ctx, usecase.ShowRelayerParams{})

		require.NoError(t, err)
		assert.Equal(t, alice, relayer.Account)
		selector.AssertExpectations(t)
	})

	t.Run("non-interactive requires an account", func(t *testing.T) {
		uc := usecase.NewShowRelayer(&config.RuntimeConfig{NonInteractive: true}, reg, new(MockRelayerSelector))
		_, err := uc.Run(ctx, usecase.ShowRelayerParams{})
		assert.Error(t, err)
	})
}

func TestWhoami(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, config.DefaultLimits())
	_, err := reg.Register(alice, []models.ChainID{7}, nil, 3)
	require.NoError(t, err)

	result, err := usecase.NewWhoami(reg, originOf(ctx, alice)).Run(ctx)
	require.NoError(t, err)
	assert.True(t, result.Registered)
	assert.Equal(t, []models.ChainID{7}, result.Relayer.SupportedChains)

	result, err = usecase.NewWhoami(reg, originOf(ctx, bob)).Run(ctx)
	require.NoError(t, err)
	assert.False(t, result.Registered)
	assert.Nil(t, result.Relayer)
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	filter := domain.EventFilter{Kind: domain.EventKindRegistered, Limit: 10}
	entries := []*domain.JournalEntry{{Seq: 1, Kind: domain.EventKindRegistered, Relayer: alice}}

	journal := new(MockEventJournal)
	journal.On("List", ctx, filter).Return(entries, nil)

	got, err := usecase.NewListEvents(journal).Run(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	failing := new(MockEventJournal)
	failing.On("List", ctx, filter).Return(nil, errors.New("locked"))
	_, err = usecase.NewListEvents(failing).Run(ctx, filter)
	assert.ErrorContains(t, err, "locked")
}
