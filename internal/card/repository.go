// AngelaMos | 2026
// repository.go

package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/cardops/internal/core"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Card, error)
	GetByID(ctx context.Context, id string) (*Card, error)
	Create(ctx context.Context, card *Card) error
	Update(ctx context.Context, card *Card) error
	ListTransactions(ctx context.Context, cardID string) ([]Transaction, error)
	CreateTransaction(ctx context.Context, tx *Transaction) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const cardColumns = `id, card_number, status, client_id, channel, type,
	issued_at, delivered_at, created_at, updated_at`

func (r *repository) List(ctx context.Context, params ListParams) ([]Card, error) {
	var conditions []string
	var args []any

	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addFilter("status", params.Status)
	addFilter("client_id", params.ClientID)
	addFilter("channel", params.Channel)

	query := `SELECT ` + cardColumns + ` FROM cards`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC NULLS LAST"

	cards := []Card{}
	if err := r.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	var c Card
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get card: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Card) error {
	query := `
		INSERT INTO cards (
			id, card_number, status, client_id, channel, type,
			issued_at, delivered_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, COALESCE($7, NOW()), $8
		)
		RETURNING issued_at, created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		c.ID,
		c.CardNumber,
		c.Status,
		c.ClientID,
		c.Channel,
		c.Type,
		c.IssuedAt,
		c.DeliveredAt,
	)
	if err := row.Scan(&c.IssuedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create card: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create card: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, c *Card) error {
	query := `
		UPDATE cards
		SET card_number = $2, status = $3, client_id = $4, channel = $5,
		    type = $6, issued_at = $7, delivered_at = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &c.UpdatedAt, query,
		c.ID,
		c.CardNumber,
		c.Status,
		c.ClientID,
		c.Channel,
		c.Type,
		c.IssuedAt,
		c.DeliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update card: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("update card: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update card: %w", err)
	}

	return nil
}

func (r *repository) ListTransactions(
	ctx context.Context,
	cardID string,
) ([]Transaction, error) {
	query := `
		SELECT id, card_id, transaction_type, amount, status, created_at
		FROM card_transactions
		WHERE card_id = $1
		ORDER BY created_at DESC NULLS LAST`

	txs := []Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, cardID); err != nil {
		return nil, fmt.Errorf("list card transactions: %w", err)
	}

	return txs, nil
}

func (r *repository) CreateTransaction(ctx context.Context, t *Transaction) error {
	query := `
		INSERT INTO card_transactions (id, card_id, transaction_type, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &t.CreatedAt, query,
		t.ID,
		t.CardID,
		t.TransactionType,
		t.Amount,
		t.Status,
	)
	if err != nil {
		return fmt.Errorf("create card transaction: %w", err)
	}

	return nil
}
