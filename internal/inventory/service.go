// AngelaMos | 2026
// service.go

package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/cardops/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*Item, error) {
	item := &Item{
		ID:           uuid.New().String(),
		ItemType:     strings.TrimSpace(req.ItemType),
		ItemName:     strings.TrimSpace(req.ItemName),
		CurrentStock: core.Merge(0, req.CurrentStock),
		MinimumStock: core.Merge(0, req.MinimumStock),
		MaxStock:     core.Merge(0, req.MaxStock),
		Unit:         core.Merge(DefaultUnit, req.Unit),
		Location:     core.MergeNullable(nil, req.Location),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateItemRequest,
) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ItemType != nil {
		item.ItemType = strings.TrimSpace(*req.ItemType)
	}
	if req.ItemName != nil {
		item.ItemName = strings.TrimSpace(*req.ItemName)
	}
	item.CurrentStock = core.Merge(item.CurrentStock, req.CurrentStock)
	item.MinimumStock = core.Merge(item.MinimumStock, req.MinimumStock)
	item.MaxStock = core.Merge(item.MaxStock, req.MaxStock)
	item.Unit = core.Merge(item.Unit, req.Unit)
	item.Location = core.MergeNullable(item.Location, req.Location)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update inventory item %s: %w", id, err)
	}

	return item, nil
}

// Alerts returns every item below its minimum, critical ones first.
func (s *Service) Alerts(ctx context.Context) ([]AlertResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory alerts: %w", err)
	}

	var critical, low []AlertResponse
	for i := range items {
		resp := ToItemResponse(&items[i])
		alert := AlertResponse{
			ItemResponse:  resp,
			DaysRemaining: DaysRemaining(resp.AlertLevel),
		}

		switch resp.AlertLevel {
		case LevelCritical:
			critical = append(critical, alert)
		case LevelLow:
			low = append(low, alert)
		}
	}

	alerts := make([]AlertResponse, 0, len(critical)+len(low))
	alerts = append(alerts, critical...)
	return append(alerts, low...), nil
}
