package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// StateCommitter applies registry mutations and saves the result. A mutation
// is only kept, and its events only published, once the state is saved.
type StateCommitter struct {
	registry RelayerRegistry
	clock    BlockClock
	store    StateStore
	events   EventPublisher

	mu sync.Mutex
}

// NewStateCommitter creates a new StateCommitter
func NewStateCommitter(registry RelayerRegistry, clock BlockClock, store StateStore, events EventPublisher) *StateCommitter {
	return &StateCommitter{
		registry: registry,
		clock:    clock,
		store:    store,
		events:   events,
	}
}

// Commit advances the clock and runs mutate with the new block number. If
// mutate or the save fails, the registry is rolled back and pending events
// are dropped.
func (c *StateCommitter) Commit(ctx context.Context, mutate func(block models.BlockNumber) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.registry.Snapshot()
	block := c.clock.Advance()

	if err := mutate(block); err != nil {
		c.events.Discard()
		return err
	}

	state := c.registry.Snapshot()
	state.Height = c.clock.Current()
	if err := c.store.Save(ctx, state); err != nil {
		c.events.Discard()
		if rerr := c.registry.Reset(before); rerr != nil {
			return fmt.Errorf("failed to save registry state: %w (rollback failed: %v)", err, rerr)
		}
		return fmt.Errorf("failed to save registry state: %w", err)
	}

	c.events.Publish(ctx)
	return nil
}
