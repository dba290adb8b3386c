package metrics

import (
	"sync"
)

// Mode identifies the entry point through which a search was invoked
type Mode string

const (
	ModeMCP    Mode = "mcp"
	ModeSearch Mode = "search"
)

// Store keeps per-mode invocation counts for the lifetime of the process.
// Counts are process-local: the search core holds no state across calls and
// nothing here is persisted.
type Store struct {
	mu     sync.Mutex
	counts map[Mode]int64
}

// NewStore creates an empty invocation store
func NewStore() (*Store, error) {
	return &Store{
		counts: make(map[Mode]int64),
	}, nil
}

// Increment increases the invocation count for the given mode
func (s *Store) Increment(mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[mode]++
	return nil
}

// Counts returns a copy of the current per-mode invocation counts
func (s *Store) Counts() map[Mode]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[Mode]int64, len(s.counts))
	for mode, count := range s.counts {
		counts[mode] = count
	}
	return counts
}
