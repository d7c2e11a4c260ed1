// AngelaMos | 2026
// service_test.go

package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/core"
)

func seedItems(t *testing.T, svc *Service) {
	t.Helper()

	for _, req := range []CreateItemRequest{
		{ItemType: "plastic_cards", ItemName: "Tarjetas Plásticas", CurrentStock: ptr(2450), MinimumStock: ptr(5000)},
		{ItemType: "chips", ItemName: "Chips EMV", CurrentStock: ptr(7800), MinimumStock: ptr(10000)},
		{ItemType: "envelopes", ItemName: "Sobres de Seguridad", CurrentStock: ptr(15600), MinimumStock: ptr(8000)},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	item, err := svc.Create(context.Background(), CreateItemRequest{
		ItemType: "chips",
		ItemName: "Chips EMV",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultUnit, item.Unit)
	assert.Zero(t, item.CurrentStock)
	assert.Nil(t, item.Location)
	assert.NotNil(t, item.LastUpdated)
}

func TestAlertsListsNonOptimalCriticalFirst(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedItems(t, svc)

	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "Tarjetas Plásticas", alerts[0].ItemName)
	assert.Equal(t, LevelCritical, alerts[0].AlertLevel)
	assert.Equal(t, 3, alerts[0].DaysRemaining)

	assert.Equal(t, "Chips EMV", alerts[1].ItemName)
	assert.Equal(t, LevelLow, alerts[1].AlertLevel)
	assert.Equal(t, 12, alerts[1].DaysRemaining)
}

func TestUpdateRestocks(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	item, err := svc.Create(ctx, CreateItemRequest{
		ItemType:     "chips",
		ItemName:     "Chips EMV",
		CurrentStock: ptr(10),
		MinimumStock: ptr(100),
		Location:     ptr("Almacén B"),
	})
	require.NoError(t, err)
	assert.Equal(t, LevelCritical, item.AlertLevel())

	updated, err := svc.Update(ctx, item.ID, UpdateItemRequest{
		CurrentStock: ptr(500),
		Location:     ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, LevelOptimal, updated.AlertLevel())
	assert.Nil(t, updated.Location)
	assert.Equal(t, 100, updated.MinimumStock)

	_, err = svc.Update(ctx, "missing", UpdateItemRequest{})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
