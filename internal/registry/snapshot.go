package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// Snapshot captures the registry contents. Height is left for the caller to fill.
func (r *Registry) Snapshot() *models.RegistryState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &models.RegistryState{
		EventSeq: r.seq,
		Relayers: r.listLocked(),
	}
}

// Restore builds a registry from persisted state. The state must satisfy every
// invariant under the given limits, otherwise ErrCorruptState is returned.
func Restore(limits config.Limits, notifier Notifier, state *models.RegistryState) (*Registry, error) {
	r, err := New(limits, notifier)
	if err != nil {
		return nil, err
	}
	if err := r.Reset(state); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset replaces the registry contents and event sequence with state. No
// events are emitted. A nil state empties the registry. On error the
// registry is left unchanged.
func (r *Registry) Reset(state *models.RegistryState) error {
	next := &Registry{
		limits:  r.limits,
		entries: make(map[common.Address]*models.Relayer),
		order:   make([]common.Address, 0),
	}
	if state != nil {
		for i, relayer := range state.Relayers {
			if relayer == nil {
				return fmt.Errorf("%w: nil relayer at position %d", domain.ErrCorruptState, i)
			}
			if _, exists := next.entries[relayer.Account]; exists {
				return fmt.Errorf("%w: duplicate relayer %s", domain.ErrCorruptState, relayer.Account.Hex())
			}
			next.entries[relayer.Account] = relayer.Clone()
			next.order = append(next.order, relayer.Account)
		}
		next.seq = state.EventSeq
	}
	if err := next.CheckInvariants(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries, r.order, r.seq = next.entries, next.order, next.seq
	return nil
}

// CheckInvariants verifies the consistency of the registry contents
func (r *Registry) CheckInvariants() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) != len(r.entries) {
		return fmt.Errorf("%w: %d accounts in order, %d entries", domain.ErrCorruptState, len(r.order), len(r.entries))
	}
	if len(r.order) > r.limits.MaxRelayers {
		return fmt.Errorf("%w: %d relayers exceeds max %d", domain.ErrCorruptState, len(r.order), r.limits.MaxRelayers)
	}

	seen := make(map[common.Address]struct{}, len(r.order))
	for _, account := range r.order {
		if _, dup := seen[account]; dup {
			return fmt.Errorf("%w: %s listed twice", domain.ErrCorruptState, account.Hex())
		}
		seen[account] = struct{}{}

		relayer, exists := r.entries[account]
		if !exists {
			return fmt.Errorf("%w: %s listed without an entry", domain.ErrCorruptState, account.Hex())
		}
		if relayer.Account != account {
			return fmt.Errorf("%w: entry for %s owned by %s", domain.ErrCorruptState, account.Hex(), relayer.Account.Hex())
		}
		if err := r.validate(relayer.SupportedChains, relayer.Metadata); err != nil {
			return fmt.Errorf("%w: relayer %s: %v", domain.ErrCorruptState, account.Hex(), err)
		}
	}
	return nil
}
