// AngelaMos | 2026
// repository.go

package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/cardops/internal/core"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Client, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const clientColumns = `id, name, code, contact_email, contact_phone, is_active, created_at`

func (r *repository) ListActive(ctx context.Context) ([]Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE is_active = 1
		ORDER BY name`

	clients := []Client{}
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM clients`); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var c Client
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get client: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	query := `
		INSERT INTO clients (id, name, code, contact_email, contact_phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &c.CreatedAt, query,
		c.ID,
		c.Name,
		c.Code,
		c.ContactEmail,
		c.ContactPhone,
		c.IsActive,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create client: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create client: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	query := `
		UPDATE clients
		SET name = $2, code = $3, contact_email = $4, contact_phone = $5,
		    is_active = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Code,
		c.ContactEmail,
		c.ContactPhone,
		c.IsActive,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("update client: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update client: %w", core.ErrNotFound)
	}

	return nil
}
