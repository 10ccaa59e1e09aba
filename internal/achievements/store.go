// Package achievements keeps the leaderboard of best levels reached.
// The list lives in a single key of a key-value backend and is always read
// and written whole.
package achievements

import (
	"encoding/json"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Defaults for the leaderboard.
const (
	DefaultKey   = "bestAchievements"
	DefaultLimit = 10
)

// Backend stores opaque blobs by key.
type Backend interface {
	// Get returns the blob for key. ok is false when the key was never written.
	Get(key string) (value []byte, ok bool, err error)
	// Put replaces the blob for key.
	Put(key string, value []byte) error
}

// Store is a bounded, descending list of levels reached.
// Backend failures are logged and swallowed: the in-memory list stays
// authoritative for the rest of the session.
type Store struct {
	mu      sync.Mutex
	backend Backend
	key     string
	limit   int
	logger  *log.Logger
	levels  []int
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the backend key the list is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLimit sets the maximum number of entries kept.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithLogger sets the logger used for backend failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a store over backend. A nil backend keeps achievements in
// memory only.
func New(backend Backend, opts ...Option) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		limit:   DefaultLimit,
		logger:  log.New(io.Discard),
		levels:  []int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted list into memory and returns it. A missing key
// yields an empty list; read or decode failures are logged and also yield
// an empty list.
func (s *Store) Load() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels = []int{}

	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		s.logger.Error("cannot load achievements", "key", s.key, "error", err)
		return s.copyLevels()
	}
	if !ok {
		return s.copyLevels()
	}

	var levels []int
	if err := json.Unmarshal(data, &levels); err != nil {
		s.logger.Error("cannot decode achievements", "key", s.key, "error", err)
		return s.copyLevels()
	}

	s.levels = s.normalize(levels)
	return s.copyLevels()
}

// Save adds level to the list, keeps the best entries and persists the
// result. The in-memory list is updated even when the write fails.
func (s *Store) Save(level int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]int, 0, len(s.levels)+1)
	next = append(next, s.levels...)
	next = append(next, level)
	next = s.normalize(next)

	data, err := json.Marshal(next)
	if err != nil {
		s.logger.Error("cannot encode achievements", "error", err)
	} else if err := s.backend.Put(s.key, data); err != nil {
		s.logger.Error("cannot save achievements", "key", s.key, "level", level, "error", err)
	} else {
		s.logger.Debug("achievement saved", "level", level, "best", next[0])
	}

	s.levels = next
	return s.copyLevels()
}

// Levels returns a copy of the current list, best first.
func (s *Store) Levels() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLevels()
}

// Best returns the highest level reached, or 0 when the list is empty.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.levels) == 0 {
		return 0
	}
	return s.levels[0]
}

// Limit returns the maximum number of entries kept.
func (s *Store) Limit() int {
	return s.limit
}

// normalize sorts descending and truncates to the limit.
func (s *Store) normalize(levels []int) []int {
	slices.SortFunc(levels, func(a, b int) int { return b - a })
	if len(levels) > s.limit {
		levels = levels[:s.limit]
	}
	return levels
}

func (s *Store) copyLevels() []int {
	return slices.Clone(s.levels)
}
