// AngelaMos | 2026
// repository.go

package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/cardops/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const itemColumns = `id, item_type, item_name, current_stock, minimum_stock,
	max_stock, unit, location, last_updated`

func (r *repository) List(ctx context.Context) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory ORDER BY item_name`

	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1`

	var item Item
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get inventory item: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}

	return &item, nil
}

func (r *repository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO inventory (
			id, item_type, item_name, current_stock, minimum_stock,
			max_stock, unit, location
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING last_updated`

	err := r.db.GetContext(ctx, &item.LastUpdated, query,
		item.ID,
		item.ItemType,
		item.ItemName,
		item.CurrentStock,
		item.MinimumStock,
		item.MaxStock,
		item.Unit,
		item.Location,
	)
	if err != nil {
		return fmt.Errorf("create inventory item: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, item *Item) error {
	query := `
		UPDATE inventory
		SET item_type = $2, item_name = $3, current_stock = $4,
		    minimum_stock = $5, max_stock = $6, unit = $7, location = $8,
		    last_updated = NOW()
		WHERE id = $1
		RETURNING last_updated`

	err := r.db.GetContext(ctx, &item.LastUpdated, query,
		item.ID,
		item.ItemType,
		item.ItemName,
		item.CurrentStock,
		item.MinimumStock,
		item.MaxStock,
		item.Unit,
		item.Location,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update inventory item: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}

	return nil
}
