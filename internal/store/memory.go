package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
)

var (
	// ErrNotFound is returned when no report matches the request.
	ErrNotFound = errors.New("no solar report available")
)

// Report is one completed batch kept in memory.
type Report struct {
	ID          uuid.UUID         `json:"id"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Result      solar.BatchResult `json:"result"`
}

// MemoryStore is a concurrency-safe in-memory history of batch reports.
// Nothing survives a restart.
type MemoryStore struct {
	mu sync.RWMutex

	// ordered oldest first
	reports []Report

	// retention configuration
	maxHistory int           // max number of reports kept
	maxAge     time.Duration // optional max age for reports

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// Save records result as a new report and enforces retention.
func (s *MemoryStore) Save(result solar.BatchResult) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := Report{
		ID:          uuid.New(),
		GeneratedAt: s.now().UTC(),
		Result:      result,
	}
	s.reports = append(s.reports, report)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(s.reports) > s.maxHistory {
		over := len(s.reports) - s.maxHistory
		s.reports = s.reports[over:]
	}

	// Enforce retention by age; the newest report is always kept.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := 0
		for ; i < len(s.reports)-1; i++ {
			if !s.reports[i].GeneratedAt.Before(cutoff) {
				break
			}
		}
		s.reports = s.reports[i:]
	}

	return report
}

// Latest returns the most recent report.
func (s *MemoryStore) Latest() (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reports) == 0 {
		return Report{}, ErrNotFound
	}
	return s.reports[len(s.reports)-1], nil
}

// Get returns the report with the given id.
func (s *MemoryStore) Get(id uuid.UUID) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}

// List returns the stored reports, newest first.
func (s *MemoryStore) List() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Report, 0, len(s.reports))
	for i := len(s.reports) - 1; i >= 0; i-- {
		out = append(out, s.reports[i])
	}
	return out
}
