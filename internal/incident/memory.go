// AngelaMos | 2026
// memory.go

package incident

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/carterperez-dev/cardops/internal/core"
)

type memoryRepository struct {
	mu        sync.RWMutex
	incidents map[string]Incident
	seq       int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{incidents: make(map[string]Incident)}
}

func (r *memoryRepository) List(
	_ context.Context,
	params ListParams,
) ([]Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Incident, 0, len(r.incidents))
	for _, inc := range r.incidents {
		if params.Status != "" && inc.Status != params.Status {
			continue
		}
		if params.ClientID != "" && inc.ClientID != params.ClientID {
			continue
		}
		if params.Priority != "" && inc.Priority != params.Priority {
			continue
		}
		out = append(out, inc)
	}

	sort.Slice(out, func(i, j int) bool {
		ti, tj := createdOrEpoch(out[i]), createdOrEpoch(out[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return newerNumber(out[i].IncidentNumber, out[j].IncidentNumber)
	})

	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inc, ok := r.incidents[id]
	if !ok {
		return nil, fmt.Errorf("get incident: %w", core.ErrNotFound)
	}
	return &inc, nil
}

func (r *memoryRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	return r.seq, nil
}

func (r *memoryRepository) Create(_ context.Context, inc *Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.incidents {
		if existing.IncidentNumber == inc.IncidentNumber {
			return fmt.Errorf("create incident: %w", core.ErrDuplicateKey)
		}
	}

	now := time.Now().UTC()
	inc.CreatedAt = &now
	inc.UpdatedAt = &now
	r.incidents[inc.ID] = *inc
	return nil
}

func (r *memoryRepository) Update(_ context.Context, inc *Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.incidents[inc.ID]
	if !ok {
		return fmt.Errorf("update incident: %w", core.ErrNotFound)
	}

	now := time.Now().UTC()
	inc.IncidentNumber = current.IncidentNumber
	inc.CreatedAt = current.CreatedAt
	inc.UpdatedAt = &now
	r.incidents[inc.ID] = *inc
	return nil
}

func createdOrEpoch(inc Incident) time.Time {
	if inc.CreatedAt == nil {
		return time.Unix(0, 0)
	}
	return *inc.CreatedAt
}
