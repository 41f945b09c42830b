package blockchain

import (
	"sync/atomic"

	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// BlockClockAdapter hands out monotonically increasing block numbers
type BlockClockAdapter struct {
	height atomic.Uint64
}

// NewBlockClockAdapter creates a clock resuming from the persisted height
func NewBlockClockAdapter(state *models.RegistryState) *BlockClockAdapter {
	c := &BlockClockAdapter{}
	if state != nil {
		c.height.Store(state.Height)
	}
	return c
}

// Current returns the last block handed out
func (c *BlockClockAdapter) Current() models.BlockNumber {
	return c.height.Load()
}

// Advance moves to the next block and returns it
func (c *BlockClockAdapter) Advance() models.BlockNumber {
	return c.height.Add(1)
}

// Ensure BlockClockAdapter implements BlockClock
var _ usecase.BlockClock = (*BlockClockAdapter)(nil)
