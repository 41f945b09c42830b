// Package events fans registry events out to the log and the event journal.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/registry"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

const appendTimeout = 5 * time.Second

// Dispatcher holds registry events until the mutation is saved, then
// delivers them to the journal and any subscribers
type Dispatcher struct {
	journal usecase.EventJournal
	log     *slog.Logger

	mu          sync.Mutex
	pending     []domain.Event
	subscribers []registry.Notifier
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(journal usecase.EventJournal, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		journal: journal,
		log:     log.With("component", "events"),
	}
}

// Subscribe registers an additional receiver of published events
func (d *Dispatcher) Subscribe(n registry.Notifier) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, n)
}

// Notify queues the event until Publish or Discard
func (d *Dispatcher) Notify(event domain.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, event)
}

// Publish journals and delivers the queued events in order. Journal
// failures are logged and do not fail the mutation, which is already saved.
func (d *Dispatcher) Publish(ctx context.Context) {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	subscribers := d.subscribers
	d.mu.Unlock()

	for _, event := range pending {
		d.log.Debug("registry event", "kind", event.Kind(), "seq", event.Sequence(), "relayer", event.Account().Hex())

		if d.journal != nil {
			appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
			if err := d.journal.Append(appendCtx, event); err != nil {
				d.log.Warn("failed to journal event", "kind", event.Kind(), "seq", event.Sequence(), "error", err)
			}
			cancel()
		}

		for _, s := range subscribers {
			s.Notify(event)
		}
	}
}

// Discard drops the queued events
func (d *Dispatcher) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, event := range d.pending {
		d.log.Debug("discarding registry event", "kind", event.Kind(), "seq", event.Sequence())
	}
	d.pending = nil
}

var (
	_ registry.Notifier      = (*Dispatcher)(nil)
	_ usecase.EventPublisher = (*Dispatcher)(nil)
)
