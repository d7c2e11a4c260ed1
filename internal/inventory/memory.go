// AngelaMos | 2026
// memory.go

package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/carterperez-dev/cardops/internal/core"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]Item
}

func NewMemoryRepository() Repository {
	return &memoryRepository{items: make(map[string]Item)}
}

func (r *memoryRepository) List(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })

	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("get inventory item: %w", core.ErrNotFound)
	}
	return &item, nil
}

func (r *memoryRepository) Create(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	item.LastUpdated = &now
	r.items[item.ID] = *item
	return nil
}

func (r *memoryRepository) Update(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("update inventory item: %w", core.ErrNotFound)
	}

	now := time.Now().UTC()
	item.LastUpdated = &now
	r.items[item.ID] = *item
	return nil
}
