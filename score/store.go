package score

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/config"
)

// ErrNegative is returned when saving a negative score
var ErrNegative = errors.New("negative score")

// Store persists the best score across sessions
// Save keeps the maximum of the stored and offered value
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, best int) error
	Close() error
}

// Open builds the store selected by cfg.Backend
func Open(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case "memory", "":
		return NewMemoryStore(0), nil
	case "file":
		return NewFileStore(cfg.Path), nil
	case "postgres":
		s, err := NewPGStore(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, s.Pool); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// MemoryStore keeps the best score for the process lifetime
type MemoryStore struct {
	mu   sync.Mutex
	best int
	runs []int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{best: initial}
}

func (s *MemoryStore) Load(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

func (s *MemoryStore) Save(_ context.Context, best int) error {
	if best < 0 {
		return ErrNegative
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = max(s.best, best)
	return nil
}

func (s *MemoryStore) RecordRun(_ context.Context, score int, _ int64) error {
	if score < 0 {
		return ErrNegative
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, score)
	return nil
}

// TopScores returns up to n recorded run scores, highest first
func (s *MemoryStore) TopScores(_ context.Context, n int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	top := slices.Clone(s.runs)
	slices.SortFunc(top, func(a, b int) int { return b - a })
	if len(top) > n {
		top = top[:n]
	}
	return top, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// RunRecorder is implemented by stores that keep per-run history
type RunRecorder interface {
	RecordRun(ctx context.Context, score int, frames int64) error
	TopScores(ctx context.Context, n int) ([]int, error)
}
