// Package registry implements the bounded relayer registry.
//
// A Registry keeps one entry per account together with the registration
// order used for enumeration. All operations are serialized by a
// read/write mutex: mutations take the write lock and queries the read
// lock, so no caller ever observes a partially applied mutation.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// Notifier receives the events emitted after successful mutations.
// Notify is called outside the registry lock.
type Notifier interface {
	Notify(event domain.Event)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(event domain.Event)

func (f NotifierFunc) Notify(event domain.Event) { f(event) }

// Registry is the relayer directory
type Registry struct {
	limits   config.Limits
	notifier Notifier

	mu      sync.RWMutex
	entries map[common.Address]*models.Relayer
	order   []common.Address
	seq     uint64
}

// New creates an empty registry. A nil notifier discards events.
func New(limits config.Limits, notifier Notifier) (*Registry, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLimits, err)
	}

	return &Registry{
		limits:   limits,
		notifier: notifier,
		entries:  make(map[common.Address]*models.Relayer),
		order:    make([]common.Address, 0),
	}, nil
}

// Limits returns the bounds the registry was built with
func (r *Registry) Limits() config.Limits {
	return r.limits
}

// Register adds the caller as a new relayer
func (r *Registry) Register(caller common.Address, chains []models.ChainID, metadata []byte, at models.BlockNumber) (*models.Relayer, error) {
	stored, event, err := r.register(caller, chains, metadata, at)
	if err != nil {
		return nil, err
	}

	r.notify(event)
	return stored, nil
}

func (r *Registry) register(caller common.Address, chains []models.ChainID, metadata []byte, at models.BlockNumber) (*models.Relayer, domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[caller]; exists {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, caller.Hex())
	}
	if err := r.validate(chains, metadata); err != nil {
		return nil, nil, err
	}
	if len(r.order) >= r.limits.MaxRelayers {
		return nil, nil, fmt.Errorf("%w: registry holds %d relayers", domain.ErrCapacityExceeded, r.limits.MaxRelayers)
	}

	relayer := &models.Relayer{
		Account:         caller,
		SupportedChains: slices.Clone(chains),
		RegisteredAt:    at,
		Metadata:        slices.Clone(metadata),
	}
	r.entries[caller] = relayer
	r.order = append(r.order, caller)

	r.seq++
	event := &domain.RelayerRegisteredEvent{
		Seq:             r.seq,
		Relayer:         caller,
		SupportedChains: slices.Clone(chains),
	}
	return relayer.Clone(), event, nil
}

// Deregister removes the caller's entry
func (r *Registry) Deregister(caller common.Address) error {
	event, err := r.deregister(caller)
	if err != nil {
		return err
	}

	r.notify(event)
	return nil
}

func (r *Registry) deregister(caller common.Address) (domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[caller]; !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRegistered, caller.Hex())
	}

	delete(r.entries, caller)
	r.order = slices.DeleteFunc(r.order, func(account common.Address) bool {
		return account == caller
	})

	r.seq++
	return &domain.RelayerDeregisteredEvent{Seq: r.seq, Relayer: caller}, nil
}

// Update replaces the supported chains and metadata of the caller's entry.
// Account and registration block are left untouched.
func (r *Registry) Update(caller common.Address, chains []models.ChainID, metadata []byte) error {
	event, err := r.update(caller, chains, metadata)
	if err != nil {
		return err
	}

	r.notify(event)
	return nil
}

func (r *Registry) update(caller common.Address, chains []models.ChainID, metadata []byte) (domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	relayer, exists := r.entries[caller]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRegistered, caller.Hex())
	}
	if err := r.validate(chains, metadata); err != nil {
		return nil, err
	}

	relayer.SupportedChains = slices.Clone(chains)
	relayer.Metadata = slices.Clone(metadata)

	r.seq++
	return &domain.RelayerUpdatedEvent{Seq: r.seq, Relayer: caller}, nil
}

// ListAll returns every relayer in registration order
func (r *Registry) ListAll() []*models.Relayer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked()
}

// ListByChain returns the relayers servicing chainID, in registration order
func (r *Registry) ListByChain(chainID models.ChainID) []*models.Relayer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.listLocked(), func(relayer *models.Relayer, _ int) bool {
		return relayer.Supports(chainID)
	})
}

// IsRegistered reports whether account has an entry
func (r *Registry) IsRegistered(account common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[account]
	return exists
}

// Get returns a copy of the entry for account
func (r *Registry) Get(account common.Address) (*models.Relayer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	relayer, exists := r.entries[account]
	if !exists {
		return nil, false
	}
	return relayer.Clone(), true
}

// Count returns the number of registered relayers
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Accounts returns the registered accounts in registration order
func (r *Registry) Accounts() []common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// validate checks the per-entry bounds shared by Register and Update
func (r *Registry) validate(chains []models.ChainID, metadata []byte) error {
	if len(chains) == 0 {
		return domain.ErrEmptyChainList
	}
	if len(chains) > r.limits.MaxSupportedChains {
		return fmt.Errorf("%w: got %d, max %d", domain.ErrTooManySupportedChains, len(chains), r.limits.MaxSupportedChains)
	}
	if len(metadata) > r.limits.MaxMetadataLength {
		return fmt.Errorf("%w: got %d bytes, max %d", domain.ErrMetadataTooLong, len(metadata), r.limits.MaxMetadataLength)
	}
	return nil
}

// listLocked clones the entries in order. Caller must hold the lock.
func (r *Registry) listLocked() []*models.Relayer {
	result := make([]*models.Relayer, 0, len(r.order))
	for _, account := range r.order {
		relayer, exists := r.entries[account]
		if !exists {
			// order and entries are only ever changed together
			panic(fmt.Sprintf("registry: %s listed in order without an entry", account.Hex()))
		}
		result = append(result, relayer.Clone())
	}
	return result
}

func (r *Registry) notify(event domain.Event) {
	if r.notifier != nil {
		r.notifier.Notify(event)
	}
}
