// AngelaMos | 2026
// memory.go

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carterperez-dev/cardops/internal/core"
)

type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryRepository() Repository {
	return &memoryRepository{sessions: make(map[string]Session)}
}

func (r *memoryRepository) Create(_ context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.Token]; exists {
		return fmt.Errorf("create session: %w", core.ErrDuplicateKey)
	}

	session.CreatedAt = time.Now().UTC()
	r.sessions[session.Token] = *session
	return nil
}

func (r *memoryRepository) FindByToken(
	_ context.Context,
	token string,
) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("find session: %w", core.ErrNotFound)
	}
	return &s, nil
}

func (r *memoryRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

func (r *memoryRepository) DeleteExpired(
	_ context.Context,
	now time.Time,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for token, s := range r.sessions {
		if s.ExpiresAt.Before(now) {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}
