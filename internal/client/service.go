// AngelaMos | 2026
// service.go

package client

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

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.ListActive(ctx)
}

// Count includes inactive clients.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateClientRequest,
) (*Client, error) {
	c := &Client{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Code:         strings.TrimSpace(req.Code),
		ContactEmail: core.MergeNullable(nil, req.ContactEmail),
		ContactPhone: core.MergeNullable(nil, req.ContactPhone),
		IsActive:     core.Merge(Active, req.IsActive),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Update merges the set fields of req into the stored client. Setting
// isActive to 0 is how a client is retired.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateClientRequest,
) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		c.Code = strings.TrimSpace(*req.Code)
	}
	c.ContactEmail = core.MergeNullable(c.ContactEmail, req.ContactEmail)
	c.ContactPhone = core.MergeNullable(c.ContactPhone, req.ContactPhone)
	c.IsActive = core.Merge(c.IsActive, req.IsActive)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update client %s: %w", id, err)
	}

	return c, nil
}
