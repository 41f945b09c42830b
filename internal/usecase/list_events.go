package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/relayer-registry/internal/domain"
)

// ListEvents is the use case for reading the event journal
type ListEvents struct {
	journal EventJournal
}

// NewListEvents creates a new ListEvents use case
func NewListEvents(journal EventJournal) *ListEvents {
	return &ListEvents{journal: journal}
}

// Run returns journal entries, newest first
func (uc *ListEvents) Run(ctx context.Context, filter domain.EventFilter) ([]*domain.JournalEntry, error) {
	entries, err := uc.journal.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read event journal: %w", err)
	}
	return entries, nil
}
