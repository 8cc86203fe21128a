package history

import (
	"context"
	"strings"
	"sync"
	"time"
)

const defaultRecentLimit = 200

// Outcome says how a recorded session ended.
type Outcome string

const (
	OutcomeFailed Outcome = "failed"
	OutcomeReset  Outcome = "reset"
)

// Summary is the terminal record of one session run.
type Summary struct {
	EndedAt        time.Time         `json:"ended_at"`
	Outcome        Outcome           `json:"outcome"`
	Pressure       int               `json:"pressure"`
	MaxPressure    int               `json:"max_pressure"`
	CrisesResolved int               `json:"crises_resolved"`
	Rounds         int               `json:"rounds"`
	Roles          map[string]string `json:"roles"`
}

// Service persists finished session summaries. RecordSession is
// fire-and-forget: callers on the game path never block on storage.
type Service interface {
	Close() error
	RecordSession(summary Summary)
	ListRecent(ctx context.Context, limit int) ([]Summary, error)
}

// NewServiceFromEnv selects a backend from the configured mode. The second
// return value names the selected backend for startup logging.
func NewServiceFromEnv(mode, sqlitePath, dsn string) (Service, string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "memory":
		return NewMemoryService(defaultRecentLimit), "memory", nil
	case "local", "sqlite":
		service, err := NewSQLiteService(sqlitePath)
		if err != nil {
			return nil, "", err
		}
		return service, "sqlite", nil
	default:
		service, err := NewPostgresService(dsn)
		if err != nil {
			return nil, "", err
		}
		return service, "postgres", nil
	}
}

// MemoryService keeps the most recent summaries in a bounded in-process
// ring. It is the default backend and the one used in tests.
type MemoryService struct {
	mu      sync.Mutex
	entries []Summary
	cap     int
}

func NewMemoryService(capacity int) *MemoryService {
	if capacity <= 0 {
		capacity = defaultRecentLimit
	}
	return &MemoryService{cap: capacity}
}

func (m *MemoryService) Close() error { return nil }

func (m *MemoryService) RecordSession(summary Summary) {
	if summary.EndedAt.IsZero() {
		summary.EndedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, summary)
	if len(m.entries) > m.cap {
		m.entries = m.entries[len(m.entries)-m.cap:]
	}
}

func (m *MemoryService) ListRecent(_ context.Context, limit int) ([]Summary, error) {
	limit = clampLimit(limit)
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]Summary, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, m.entries[i])
	}
	return items, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
