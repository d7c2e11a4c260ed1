// AngelaMos | 2026
// memory.go

package client

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/carterperez-dev/cardops/internal/core"
)

type memoryRepository struct {
	mu      sync.RWMutex
	clients map[string]Client
}

func NewMemoryRepository() Repository {
	return &memoryRepository{clients: make(map[string]Client)}
}

func (r *memoryRepository) ListActive(_ context.Context) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Client, 0, len(r.clients))
	for _, c := range r.clients {
		if c.IsActive == Active {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.clients)), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, fmt.Errorf("get client: %w", core.ErrNotFound)
	}
	return &c, nil
}

func (r *memoryRepository) Create(_ context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codeTaken(c.Code, c.ID) {
		return fmt.Errorf("create client: %w", core.ErrDuplicateKey)
	}

	now := time.Now().UTC()
	c.CreatedAt = &now
	r.clients[c.ID] = *c
	return nil
}

func (r *memoryRepository) Update(_ context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.clients[c.ID]
	if !ok {
		return fmt.Errorf("update client: %w", core.ErrNotFound)
	}
	if r.codeTaken(c.Code, c.ID) {
		return fmt.Errorf("update client: %w", core.ErrDuplicateKey)
	}

	c.CreatedAt = current.CreatedAt
	r.clients[c.ID] = *c
	return nil
}

func (r *memoryRepository) codeTaken(code, exceptID string) bool {
	for id, c := range r.clients {
		if id != exceptID && c.Code == code {
			return true
		}
	}
	return false
}
