// AngelaMos | 2026
// seed.go

package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/client"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/incident"
	"github.com/carterperez-dev/cardops/internal/inventory"
	"github.com/carterperez-dev/cardops/internal/user"
)

type Admin struct {
	Username string
	Password string
}

// Seeder fills an empty store with demo data. Everything goes through the
// services so ids, defaults and incident numbers are produced the same
// way as for API writes.
type Seeder struct {
	Clients   *client.Service
	Inventory *inventory.Service
	Cards     *card.Service
	Incidents *incident.Service
	Users     *user.Service
	Logger    *slog.Logger
}

// Run does nothing when any client already exists, inactive ones included.
func (s *Seeder) Run(ctx context.Context, admin Admin) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	n, err := s.Clients.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		logger.Info("store already seeded, skipping", "clients", n)
		return nil
	}

	clientIDs, err := s.seedClients(ctx)
	if err != nil {
		return err
	}
	if err := s.seedInventory(ctx); err != nil {
		return err
	}
	if err := s.seedCards(ctx, clientIDs); err != nil {
		return err
	}
	if err := s.seedIncidents(ctx, clientIDs); err != nil {
		return err
	}
	if err := s.seedAdmin(ctx, admin, logger); err != nil {
		return err
	}

	logger.Info("store seeded",
		"clients", len(sampleClients),
		"inventory", len(sampleInventory),
		"cards", len(sampleCards),
		"incidents", len(sampleIncidents),
	)
	return nil
}

func (s *Seeder) seedClients(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(sampleClients))
	for _, req := range sampleClients {
		c, err := s.Clients.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed client %s: %w", req.Code, err)
		}
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *Seeder) seedInventory(ctx context.Context) error {
	for _, req := range sampleInventory {
		if _, err := s.Inventory.Create(ctx, req); err != nil {
			return fmt.Errorf("seed inventory %s: %w", req.ItemType, err)
		}
	}
	return nil
}

func (s *Seeder) seedCards(ctx context.Context, clientIDs []string) error {
	now := time.Now().UTC()

	for _, sc := range sampleCards {
		req := card.CreateCardRequest{
			CardNumber: sc.number,
			Status:     &sc.status,
			ClientID:   clientIDs[sc.client],
			Channel:    sc.channel,
			Type:       sc.kind,
			IssuedAt:   &now,
		}
		if sc.delivered {
			req.DeliveredAt = &now
		}

		if _, err := s.Cards.Create(ctx, req); err != nil {
			return fmt.Errorf("seed card %s: %w", sc.number, err)
		}
	}
	return nil
}

func (s *Seeder) seedIncidents(ctx context.Context, clientIDs []string) error {
	for _, si := range sampleIncidents {
		req := incident.CreateIncidentRequest{
			Title:       si.title,
			Description: si.description,
			ClientID:    clientIDs[si.client],
			Status:      &si.status,
			Priority:    &si.priority,
			AssignedTo:  si.assignedTo,
			ResolvedAt:  si.resolvedAt,
		}

		if _, err := s.Incidents.Create(ctx, req); err != nil {
			return fmt.Errorf("seed incident %q: %w", si.title, err)
		}
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, admin Admin, logger *slog.Logger) error {
	if admin.Username == "" || admin.Password == "" {
		logger.Warn("seed admin credentials not set, no user created")
		return nil
	}

	hash, err := core.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	_, err = s.Users.Create(ctx, admin.Username, hash)
	if errors.Is(err, core.ErrDuplicateKey) {
		logger.Info("seed admin already exists", "username", admin.Username)
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return nil
}
