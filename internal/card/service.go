// AngelaMos | 2026
// service.go

package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/cardops/internal/core"
)

// amountScale matches the NUMERIC(12,2) column.
const amountScale = 2

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Card, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*Card, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCardRequest) (*Card, error) {
	c := &Card{
		ID:          uuid.New().String(),
		CardNumber:  strings.TrimSpace(req.CardNumber),
		Status:      core.Merge(StatusActive, req.Status),
		ClientID:    req.ClientID,
		Channel:     req.Channel,
		Type:        req.Type,
		IssuedAt:    req.IssuedAt,
		DeliveredAt: req.DeliveredAt,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateCardRequest,
) (*Card, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CardNumber != nil {
		c.CardNumber = strings.TrimSpace(*req.CardNumber)
	}
	c.Status = core.Merge(c.Status, req.Status)
	c.ClientID = core.Merge(c.ClientID, req.ClientID)
	c.Channel = core.Merge(c.Channel, req.Channel)
	c.Type = core.Merge(c.Type, req.Type)
	if req.IssuedAt != nil {
		c.IssuedAt = req.IssuedAt
	}
	if req.DeliveredAt != nil {
		c.DeliveredAt = req.DeliveredAt
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update card %s: %w", id, err)
	}

	return c, nil
}

// Stats scans every card on each call; the table is small and the
// dashboard wants live numbers.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	cards, err := s.repo.List(ctx, ListParams{})
	if err != nil {
		return Stats{}, fmt.Errorf("card stats: %w", err)
	}

	var stats Stats
	for i := range cards {
		stats.add(cards[i].Status)
	}

	return stats, nil
}

func (s *Service) Transactions(
	ctx context.Context,
	cardID string,
) ([]Transaction, error) {
	if _, err := s.repo.GetByID(ctx, cardID); err != nil {
		return nil, err
	}

	return s.repo.ListTransactions(ctx, cardID)
}

func (s *Service) RecordTransaction(
	ctx context.Context,
	cardID string,
	req CreateTransactionRequest,
) (*Transaction, error) {
	if _, err := s.repo.GetByID(ctx, cardID); err != nil {
		return nil, err
	}

	t := &Transaction{
		ID:              uuid.New().String(),
		CardID:          cardID,
		TransactionType: req.TransactionType,
		Status:          req.Status,
	}
	if req.Amount != nil {
		t.Amount = decimal.NewNullDecimal(req.Amount.Round(amountScale))
	}

	if err := s.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
