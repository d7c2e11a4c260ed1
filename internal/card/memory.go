// AngelaMos | 2026
// memory.go

package card

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
	cards map[string]Card
	txs   []Transaction
}

func NewMemoryRepository() Repository {
	return &memoryRepository{cards: make(map[string]Card)}
}

func (r *memoryRepository) List(_ context.Context, params ListParams) ([]Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Card, 0, len(r.cards))
	for _, c := range r.cards {
		if params.Status != "" && c.Status != params.Status {
			continue
		}
		if params.ClientID != "" && c.ClientID != params.ClientID {
			continue
		}
		if params.Channel != "" && c.Channel != params.Channel {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return timeOrZero(out[i].CreatedAt).After(timeOrZero(out[j].CreatedAt))
	})

	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cards[id]
	if !ok {
		return nil, fmt.Errorf("get card: %w", core.ErrNotFound)
	}
	return &c, nil
}

func (r *memoryRepository) Create(_ context.Context, c *Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.numberTaken(c.CardNumber, c.ID) {
		return fmt.Errorf("create card: %w", core.ErrDuplicateKey)
	}

	now := time.Now().UTC()
	if c.IssuedAt == nil {
		c.IssuedAt = &now
	}
	c.CreatedAt = &now
	c.UpdatedAt = &now
	r.cards[c.ID] = *c
	return nil
}

func (r *memoryRepository) Update(_ context.Context, c *Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.cards[c.ID]
	if !ok {
		return fmt.Errorf("update card: %w", core.ErrNotFound)
	}
	if r.numberTaken(c.CardNumber, c.ID) {
		return fmt.Errorf("update card: %w", core.ErrDuplicateKey)
	}

	now := time.Now().UTC()
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = &now
	r.cards[c.ID] = *c
	return nil
}

func (r *memoryRepository) ListTransactions(
	_ context.Context,
	cardID string,
) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Transaction{}
	for i := len(r.txs) - 1; i >= 0; i-- {
		if r.txs[i].CardID == cardID {
			out = append(out, r.txs[i])
		}
	}
	return out, nil
}

func (r *memoryRepository) CreateTransaction(_ context.Context, t *Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t.CreatedAt = &now
	r.txs = append(r.txs, *t)
	return nil
}

func (r *memoryRepository) numberTaken(number, exceptID string) bool {
	for id, c := range r.cards {
		if id != exceptID && c.CardNumber == number {
			return true
		}
	}
	return false
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
