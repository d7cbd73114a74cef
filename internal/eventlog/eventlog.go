// Package eventlog records LLM request/response events in a local SQLite
// database for inspection with the `concursados llm` subcommands.
package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Event is one recorded LLM API call.
type Event struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates token usage per request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// Log is an append-only event log over SQLite.
type Log struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas and creates
// the schema if needed.
func Open(dsn string) (*Log, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS llm_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`)
	return err
}

// Append records one LLM API call event.
func (l *Log) Append(ctx context.Context, e Event) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := l.db.ExecContext(ctx, `INSERT INTO llm_events
		(timestamp, provider, model, purpose, input_tokens, output_tokens,
		 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts, e.Provider, e.Model, e.Purpose, e.InputTokens, e.OutputTokens,
		e.LatencyMs, e.Success, e.ErrorMessage, e.RequestBody, e.ResponseBody)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first. limit <= 0 means all.
func (l *Log) Recent(ctx context.Context, limit int) ([]Event, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens,
		output_tokens, latency_ms, success, error_message
		FROM llm_events ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = l.db.QueryContext(ctx, q+" LIMIT ?", limit)
	} else {
		rows, err = l.db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model,
			&e.Purpose, &e.InputTokens, &e.OutputTokens, &e.LatencyMs,
			&e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Get returns the full event including request/response bodies, or nil if
// no event has that id.
func (l *Log) Get(ctx context.Context, id int) (*Event, error) {
	var e Event
	err := l.db.QueryRowContext(ctx, `SELECT id, timestamp, provider, model,
		purpose, input_tokens, output_tokens, latency_ms, success,
		error_message, request_body, response_body
		FROM llm_events WHERE id = ?`, id).
		Scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// UsageByPurpose aggregates successful and failed calls per purpose.
func (l *Log) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT purpose, COUNT(*),
		COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0),
		COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens,
			&u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UsageByModel aggregates calls per model for cost estimation.
func (l *Log) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT model, COUNT(*),
		COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query model usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// DefaultDBPath resolves the event database path in priority order:
// 1. CONCURSADOS_DB environment variable
// 2. $XDG_DATA_HOME/concursados/events.db
// 3. ~/.local/share/concursados/events.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CONCURSADOS_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "concursados", "events.db")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
