// AngelaMos | 2026
// service_test.go

package card

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/core"
)

func ptr[T any](v T) *T { return &v }

func newCardRequest(number string) CreateCardRequest {
	return CreateCardRequest{
		CardNumber: number,
		ClientID:   "client-1",
		Channel:    ChannelBranch,
		Type:       TypeCredit,
	}
}

func TestCreateDefaultsStatusToActive(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	c, err := svc.Create(context.Background(), newCardRequest("1234-5678-9012-3456"))
	require.NoError(t, err)

	assert.Equal(t, StatusActive, c.Status)
	assert.NotEmpty(t, c.ID)
	assert.NotNil(t, c.IssuedAt)
}

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, newCardRequest("1111"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, newCardRequest("1111"))
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestStatsSumToTotal(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	statuses := []string{
		StatusActive, StatusActive, StatusBlocked,
		StatusDelivered, StatusTransit, StatusTransit, StatusTransit,
	}
	for i, status := range statuses {
		req := newCardRequest(fmt.Sprintf("4000-0000-0000-%04d", i))
		req.Status = ptr(status)
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, Stats{Active: 2, Blocked: 1, Delivered: 1, Transit: 3}, stats)

	all, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, len(all), stats.Total())
}

func TestListFiltersByExactMatch(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	a := newCardRequest("1")
	b := newCardRequest("2")
	b.Channel = ChannelDigital
	b.ClientID = "client-2"
	for _, req := range []CreateCardRequest{a, b} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	got, err := svc.List(ctx, ListParams{Channel: ChannelDigital})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].CardNumber)

	got, err = svc.List(ctx, ListParams{ClientID: "client-1", Channel: ChannelDigital})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	c, err := svc.Create(ctx, newCardRequest("1"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, c.ID, UpdateCardRequest{Status: ptr(StatusBlocked)})
	require.NoError(t, err)

	assert.Equal(t, StatusBlocked, updated.Status)
	assert.Equal(t, ChannelBranch, updated.Channel)
	assert.Equal(t, "1", updated.CardNumber)

	_, err = svc.Update(ctx, "missing", UpdateCardRequest{})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRecordTransactionRoundsAmount(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	c, err := svc.Create(ctx, newCardRequest("1"))
	require.NoError(t, err)

	amount := decimal.RequireFromString("150.255")
	tx, err := svc.RecordTransaction(ctx, c.ID, CreateTransactionRequest{
		TransactionType: "activation_fee",
		Amount:          &amount,
		Status:          "completed",
	})
	require.NoError(t, err)
	require.True(t, tx.Amount.Valid)
	assert.Equal(t, "150.26", tx.Amount.Decimal.StringFixed(2))

	txs, err := svc.Transactions(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	_, err = svc.Transactions(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
