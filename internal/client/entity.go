// AngelaMos | 2026
// entity.go

package client

import (
	"time"
)

// Client is an issuing institution. Clients are deactivated, never
// deleted.
type Client struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Code         string     `db:"code"`
	ContactEmail *string    `db:"contact_email"`
	ContactPhone *string    `db:"contact_phone"`
	IsActive     int        `db:"is_active"`
	CreatedAt    *time.Time `db:"created_at"`
}

const (
	Inactive = 0
	Active   = 1
)
