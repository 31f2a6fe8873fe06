package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/errors"
)

// Store keeps session records. Implementations must serialize Update calls for the same session
// and must not persist anything when the update function fails.
type Store interface {
	Create(ctx context.Context, quizID string) (domain.Session, error)
	Get(ctx context.Context, sessionID string) (domain.Session, error)
	Update(ctx context.Context, sessionID string, fn func(ss *domain.Session) error) (domain.Session, error)
	// List returns every session of a quiz.
	List(ctx context.Context, quizID string) ([]domain.Session, error)
}

// Catalog resolves quiz definitions.
type Catalog interface {
	GetQuiz(id string) (domain.Quiz, error)
}

type MemoryStoreConfig struct {
	Catalog Catalog
	Now     func() time.Time
}

// MemoryStore is a process local Store. Sessions are never evicted.
type MemoryStore struct {
	catalog Catalog
	now     func() time.Time

	mu      sync.RWMutex
	records map[string]*record
}

type record struct {
	mu sync.Mutex
	ss domain.Session
}

func NewMemoryStore(c MemoryStoreConfig) *MemoryStore {
	if c.Now == nil {
		c.Now = time.Now
	}

	return &MemoryStore{
		catalog: c.Catalog,
		now:     c.Now,
		records: make(map[string]*record),
	}
}

func (s *MemoryStore) Create(_ context.Context, quizID string) (domain.Session, error) {
	if _, err := s.catalog.GetQuiz(quizID); err != nil {
		if stderrors.Is(err, domain.ErrQuizNotFound) {
			return domain.Session{}, domain.ErrInvalidQuiz.Clone(
				errors.WithMessagef("invalid quiz type: %s", quizID),
				errors.WithCause(err))
		}
		return domain.Session{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Session{}, fmt.Errorf("generate session ID: %w", err)
	}

	ss := domain.Session{
		SessionID:  id.String(),
		QuizID:     quizID,
		CreateTime: s.now(),
		Answers:    []domain.Answer{},
	}

	s.mu.Lock()
	s.records[ss.SessionID] = &record{ss: ss}
	s.mu.Unlock()

	return ss.Clone(), nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (domain.Session, error) {
	r, err := s.record(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ss.Clone(), nil
}

// Update applies fn to a copy of the session while holding the session lock, and stores the
// copy only if fn succeeds.
func (s *MemoryStore) Update(_ context.Context, sessionID string, fn func(ss *domain.Session) error) (domain.Session, error) {
	r, err := s.record(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ss := r.ss.Clone()
	if err := fn(&ss); err != nil {
		return domain.Session{}, err
	}
	r.ss = ss

	return ss.Clone(), nil
}

func (s *MemoryStore) List(_ context.Context, quizID string) ([]domain.Session, error) {
	s.mu.RLock()
	records := make([]*record, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	s.mu.RUnlock()

	var l []domain.Session
	for _, r := range records {
		r.mu.Lock()
		if r.ss.QuizID == quizID {
			l = append(l, r.ss.Clone())
		}
		r.mu.Unlock()
	}

	return l, nil
}

// Len returns the number of stored sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func (s *MemoryStore) record(sessionID string) (*record, error) {
	s.mu.RLock()
	r, ok := s.records[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound.Clone(
			errors.WithMessagef("session not found: %s", sessionID))
	}

	return r, nil
}
