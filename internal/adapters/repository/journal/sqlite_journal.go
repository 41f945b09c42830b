// Package journal records registry events in a SQLite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	kind TEXT NOT NULL,
	relayer TEXT NOT NULL,
	detail TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_seq ON events(seq);
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
`

// SQLiteJournal implements EventJournal on top of SQLite
type SQLiteJournal struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteJournal opens (and if needed creates) the journal database.
// The returned cleanup function closes it.
func NewSQLiteJournal(cfg *config.RuntimeConfig) (*SQLiteJournal, func(), error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+cfg.JournalFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event journal: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize event journal: %w", err)
	}

	j := &SQLiteJournal{db: db, now: time.Now}
	return j, func() { _ = db.Close() }, nil
}

// Append records an event
func (j *SQLiteJournal) Append(ctx context.Context, event domain.Event) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO events (id, seq, kind, relayer, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		event.Sequence(),
		string(event.Kind()),
		event.Account().Hex(),
		event.String(),
		j.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to append %s: %w", event.Kind(), err)
	}
	return nil
}

// List returns recorded events, newest first
func (j *SQLiteJournal) List(ctx context.Context, filter domain.EventFilter) ([]*domain.JournalEntry, error) {
	query := `SELECT id, seq, kind, relayer, detail, created_at FROM events`
	var args []any

	if filter.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(filter.Kind))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.JournalEntry, 0)
	for rows.Next() {
		var (
			entry   domain.JournalEntry
			kind    string
			relayer string
		)
		if err := rows.Scan(&entry.ID, &entry.Seq, &kind, &relayer, &entry.Detail, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		entry.Kind = domain.EventKind(kind)
		entry.Relayer = common.HexToAddress(relayer)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Ensure SQLiteJournal implements EventJournal
var _ usecase.EventJournal = (*SQLiteJournal)(nil)
