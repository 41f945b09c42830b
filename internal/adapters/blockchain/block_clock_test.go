package blockchain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

func TestBlockClock(t *testing.T) {
	t.Run("starts at zero without state", func(t *testing.T) {
		clock := NewBlockClockAdapter(nil)
		assert.Equal(t, models.BlockNumber(0), clock.Current())
		assert.Equal(t, models.BlockNumber(1), clock.Advance())
		assert.Equal(t, models.BlockNumber(1), clock.Current())
	})

	t.Run("resumes from persisted height", func(t *testing.T) {
		clock := NewBlockClockAdapter(&models.RegistryState{Height: 41})
		assert.Equal(t, models.BlockNumber(42), clock.Advance())
	})

	t.Run("concurrent advances are unique", func(t *testing.T) {
		clock := NewBlockClockAdapter(nil)
		seen := make(chan models.BlockNumber, 50)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seen <- clock.Advance()
			}()
		}
		wg.Wait()
		close(seen)

		unique := make(map[models.BlockNumber]bool)
		for block := range seen {
			unique[block] = true
		}
		assert.Len(t, unique, 50)
		assert.Equal(t, models.BlockNumber(50), clock.Current())
	})
}
