package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultSQLitePath = "campus_crisis.db"

type SQLiteService struct {
	db *sql.DB
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		dbPath = defaultSQLitePath
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteHistorySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure history schema: %w", err)
	}

	return &SQLiteService{db: db}, nil
}

func ensureSQLiteHistorySchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS session_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ended_at_ms INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    pressure INTEGER NOT NULL,
    max_pressure INTEGER NOT NULL,
    crises_resolved INTEGER NOT NULL,
    rounds INTEGER NOT NULL,
    roles_json TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_session_history_ended_at
    ON session_history (ended_at_ms DESC);
`)
	return err
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) RecordSession(summary Summary) {
	if summary.EndedAt.IsZero() {
		summary.EndedAt = time.Now().UTC()
	}
	rolesRaw, err := json.Marshal(summary.Roles)
	if err != nil {
		log.Printf("[History] marshal roles failed: %v", err)
		rolesRaw = []byte("{}")
	}

	// Keep the game path off the write: the insert runs detached.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_, err := s.db.ExecContext(ctx, `
INSERT INTO session_history (
    ended_at_ms, outcome, pressure, max_pressure, crises_resolved, rounds, roles_json
)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, summary.EndedAt.UnixMilli(), string(summary.Outcome), summary.Pressure,
			summary.MaxPressure, summary.CrisesResolved, summary.Rounds, string(rolesRaw))
		if err != nil {
			log.Printf("[History] record session failed: %v", err)
		}
	}()
}

func (s *SQLiteService) ListRecent(ctx context.Context, limit int) ([]Summary, error) {
	limit = clampLimit(limit)
	rows, err := s.db.QueryContext(ctx, `
SELECT ended_at_ms, outcome, pressure, max_pressure, crises_resolved, rounds, roles_json
FROM session_history
ORDER BY ended_at_ms DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Summary, 0, limit)
	for rows.Next() {
		var item Summary
		var endedAtMs int64
		var outcome string
		var rolesRaw []byte
		if err := rows.Scan(&endedAtMs, &outcome, &item.Pressure, &item.MaxPressure,
			&item.CrisesResolved, &item.Rounds, &rolesRaw); err != nil {
			return nil, err
		}
		item.EndedAt = time.UnixMilli(endedAtMs).UTC()
		item.Outcome = Outcome(outcome)
		if len(rolesRaw) > 0 {
			_ = json.Unmarshal(rolesRaw, &item.Roles)
		}
		if item.Roles == nil {
			item.Roles = map[string]string{}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
