// AngelaMos | 2026
// seed_test.go

package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/client"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/incident"
	"github.com/carterperez-dev/cardops/internal/inventory"
	"github.com/carterperez-dev/cardops/internal/user"
)

func newSeeder() *Seeder {
	return &Seeder{
		Clients:   client.NewService(client.NewMemoryRepository()),
		Inventory: inventory.NewService(inventory.NewMemoryRepository()),
		Cards:     card.NewService(card.NewMemoryRepository()),
		Incidents: incident.NewService(incident.NewMemoryRepository()),
		Users:     user.NewService(user.NewMemoryRepository()),
	}
}

func TestRunSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := newSeeder()

	require.NoError(t, s.Run(ctx, Admin{Username: "admin", Password: "admin123"}))

	clients, err := s.Clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 3)

	stats, err := s.Cards.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, card.Stats{Active: 1, Blocked: 1, Delivered: 1, Transit: 1}, stats)

	incidents, err := s.Incidents.List(ctx, incident.ListParams{})
	require.NoError(t, err)
	numbers := make([]string, 0, len(incidents))
	for _, inc := range incidents {
		numbers = append(numbers, inc.IncidentNumber)
	}
	assert.ElementsMatch(t, []string{"INC-001", "INC-002", "INC-003"}, numbers)

	alerts, err := s.Inventory.Alerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, inventory.LevelCritical, alerts[0].AlertLevel)
	assert.Equal(t, inventory.LevelLow, alerts[1].AlertLevel)

	u, err := s.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	ok, err := core.VerifyPassword("admin123", u.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunSkipsWhenClientsExist(t *testing.T) {
	ctx := context.Background()
	s := newSeeder()

	_, err := s.Clients.Create(ctx, client.CreateClientRequest{Name: "X", Code: "X"})
	require.NoError(t, err)

	require.NoError(t, s.Run(ctx, Admin{}))

	stats, err := s.Cards.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total())
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newSeeder()

	require.NoError(t, s.Run(ctx, Admin{}))
	require.NoError(t, s.Run(ctx, Admin{}))

	n, err := s.Clients.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	next, err := s.Incidents.Create(ctx, incident.CreateIncidentRequest{
		Title: "t", Description: "d", ClientID: "c",
	})
	require.NoError(t, err)
	assert.Equal(t, "INC-004", next.IncidentNumber)
}
