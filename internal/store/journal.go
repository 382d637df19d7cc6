// Package store persists rendered trading decisions to a local SQLite
// journal.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"fundview/internal/models"
)

// JournalEntry is one recorded trading decision.
type JournalEntry struct {
	ID         int64     `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	Ticker     string    `json:"ticker"`
	Action     string    `json:"action"`
	Quantity   int64     `json:"quantity"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	Language   string    `json:"language"`
}

// JournalFilter narrows ListDecisions results. Zero values match everything.
type JournalFilter struct {
	Ticker string
	Since  time.Time
	Limit  int
}

// Journal is a SQLite-backed decision log.
type Journal struct {
	db *sql.DB
}

// OpenJournal opens (and if needed creates) the journal database at path.
func OpenJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_at DATETIME NOT NULL,
		ticker TEXT NOT NULL,
		action TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		confidence REAL NOT NULL,
		reasoning TEXT,
		language TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_decisions_ticker ON decisions(ticker);
	CREATE INDEX IF NOT EXISTS idx_decisions_recorded_at ON decisions(recorded_at);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// SaveDecisions records every decision of a trading result under a single
// timestamp.
func (j *Journal) SaveDecisions(ctx context.Context, result *models.TradingResult, language string, at time.Time) error {
	if result == nil || len(result.Decisions) == 0 {
		return nil
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO decisions (recorded_at, ticker, action, quantity, confidence, reasoning, language)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, ticker := range result.Tickers() {
		d := result.Decisions[ticker]
		reasoning := reasoningText(d.Reasoning)
		_, err := stmt.ExecContext(ctx, at, ticker, d.Action, d.Quantity, d.Confidence, reasoning, language)
		if err != nil {
			return fmt.Errorf("failed to insert decision for %s: %w", ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListDecisions retrieves recorded decisions, newest first.
func (j *Journal) ListDecisions(ctx context.Context, filter JournalFilter) ([]JournalEntry, error) {
	query := "SELECT id, recorded_at, ticker, action, quantity, confidence, COALESCE(reasoning, ''), language FROM decisions WHERE 1=1"
	args := []any{}

	if filter.Ticker != "" {
		query += " AND ticker = ?"
		args = append(args, filter.Ticker)
	}
	if !filter.Since.IsZero() {
		query += " AND recorded_at >= ?"
		args = append(args, filter.Since)
	}

	query += " ORDER BY recorded_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.RecordedAt, &e.Ticker, &e.Action, &e.Quantity, &e.Confidence, &e.Reasoning, &e.Language); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// reasoningText flattens an arbitrary reasoning payload into journal text.
func reasoningText(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	default:
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Sprintf("%v", r)
		}
		return string(b)
	}
}
