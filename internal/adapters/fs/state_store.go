package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// StateStoreAdapter implements StateStore using a JSON file
type StateStoreAdapter struct {
	statePath string
	mu        sync.Mutex
}

// NewStateStoreAdapter creates a new StateStoreAdapter
func NewStateStoreAdapter(cfg *config.RuntimeConfig) *StateStoreAdapter {
	return &StateStoreAdapter{
		statePath: cfg.StateFile(),
	}
}

// GetPath returns the state file location
func (s *StateStoreAdapter) GetPath() string {
	return s.statePath
}

// Load reads the registry state from disk. Returns an empty state if the file does not exist.
func (s *StateStoreAdapter) Load(_ context.Context) (*models.RegistryState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.RegistryState{Relayers: []*models.Relayer{}}, nil
		}
		return nil, fmt.Errorf("failed to read registry state file: %w", err)
	}

	var state models.RegistryState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse registry state file: %w", err)
	}

	if state.Relayers == nil {
		state.Relayers = []*models.Relayer{}
	}

	return &state, nil
}

// Save writes the registry state to disk, creating the directory if needed.
// The file is replaced atomically.
func (s *StateStoreAdapter) Save(_ context.Context, state *models.RegistryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.statePath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry state: %w", err)
	}

	tmpPath := s.statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry state file: %w", err)
	}

	return os.Rename(tmpPath, s.statePath)
}

// Ensure StateStoreAdapter implements StateStore
var _ usecase.StateStore = (*StateStoreAdapter)(nil)
