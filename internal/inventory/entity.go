// AngelaMos | 2026
// entity.go

package inventory

import (
	"time"
)

const DefaultUnit = "units"

type Item struct {
	ID           string     `db:"id"`
	ItemType     string     `db:"item_type"`
	ItemName     string     `db:"item_name"`
	CurrentStock int        `db:"current_stock"`
	MinimumStock int        `db:"minimum_stock"`
	MaxStock     int        `db:"max_stock"`
	Unit         string     `db:"unit"`
	Location     *string    `db:"location"`
	LastUpdated  *time.Time `db:"last_updated"`
}

func (i *Item) AlertLevel() Level {
	return AlertLevel(i.CurrentStock, i.MinimumStock)
}
