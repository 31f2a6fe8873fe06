package leaderboard

import (
	"context"
	"slices"
	"sync"

	"github.com/victornm/themequiz/internal/domain"
)

// DefaultSize is the number of entries kept per quiz type.
const DefaultSize = 10

// Store keeps the top entries of every quiz type, ordered by domain.LeaderboardEntry.RanksAbove.
// Record must be serialized per quiz type.
type Store interface {
	Record(ctx context.Context, quizType string, e domain.LeaderboardEntry) error
	List(ctx context.Context, quizType string) ([]domain.LeaderboardEntry, error)
}

type MemoryStore struct {
	size int

	mu     sync.Mutex
	boards map[string]*board
}

type board struct {
	mu      sync.Mutex
	entries []domain.LeaderboardEntry
}

// NewMemoryStore returns a process local store keeping at most size entries per quiz type.
func NewMemoryStore(size int) *MemoryStore {
	if size <= 0 {
		size = DefaultSize
	}

	return &MemoryStore{
		size:   size,
		boards: make(map[string]*board),
	}
}

func (s *MemoryStore) Record(_ context.Context, quizType string, e domain.LeaderboardEntry) error {
	b := s.board(quizType)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, e)
	slices.SortStableFunc(b.entries, compare)
	if len(b.entries) > s.size {
		b.entries = b.entries[:s.size]
	}

	return nil
}

// List returns the ranked entries of a quiz. Reading a quiz that was never recorded does not
// allocate a board for it.
func (s *MemoryStore) List(_ context.Context, quizType string) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	b, ok := s.boards[quizType]
	s.mu.Unlock()
	if !ok {
		return []domain.LeaderboardEntry{}, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.entries), nil
}

func (s *MemoryStore) board(quizType string) *board {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[quizType]
	if !ok {
		b = &board{}
		s.boards[quizType] = b
	}

	return b
}

func compare(a, b domain.LeaderboardEntry) int {
	switch {
	case a.RanksAbove(b):
		return -1
	case b.RanksAbove(a):
		return 1
	default:
		return 0
	}
}
