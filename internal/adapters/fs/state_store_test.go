package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

func newTestStateStore(t *testing.T) *StateStoreAdapter {
	t.Helper()
	cfg := &config.RuntimeConfig{
		DataDir: filepath.Join(t.TempDir(), ".relayreg"),
	}
	return NewStateStoreAdapter(cfg)
}

func TestStateStore_LoadEmpty(t *testing.T) {
	store := newTestStateStore(t)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, state.Relayers)
	assert.Empty(t, state.Relayers)
	assert.Zero(t, state.Height)
}

func TestStateStore_SaveAndLoad(t *testing.T) {
	store := newTestStateStore(t)
	ctx := context.Background()

	state := &models.RegistryState{
		Height:   12,
		EventSeq: 4,
		Relayers: []*models.Relayer{
			{
				Account:         common.HexToAddress("0x2222222222222222222222222222222222222222"),
				SupportedChains: []models.ChainID{1, 137},
				RegisteredAt:    3,
				Metadata:        []byte("https://relay.example"),
			},
			{
				Account:         common.HexToAddress("0x1111111111111111111111111111111111111111"),
				SupportedChains: []models.ChainID{10},
				RegisteredAt:    9,
			},
		},
	}

	require.NoError(t, store.Save(ctx, state))
	assert.FileExists(t, store.GetPath())
	assert.NoFileExists(t, store.GetPath()+".tmp")

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.BlockNumber(12), loaded.Height)
	assert.Equal(t, uint64(4), loaded.EventSeq)
	require.Len(t, loaded.Relayers, 2)
	assert.Equal(t, state.Relayers[0].Account, loaded.Relayers[0].Account)
	assert.Equal(t, []models.ChainID{1, 137}, loaded.Relayers[0].SupportedChains)
	assert.Equal(t, "https://relay.example", loaded.Relayers[0].MetadataString())
	assert.Equal(t, models.BlockNumber(9), loaded.Relayers[1].RegisteredAt)
}

func TestStateStore_CorruptFile(t *testing.T) {
	store := newTestStateStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.GetPath()), 0755))
	require.NoError(t, os.WriteFile(store.GetPath(), []byte("{not json"), 0644))

	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "failed to parse registry state file")
}
