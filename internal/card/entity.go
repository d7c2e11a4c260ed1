// AngelaMos | 2026
// entity.go

package card

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive    = "active"
	StatusBlocked   = "blocked"
	StatusDelivered = "delivered"
	StatusTransit   = "transit"
)

const (
	ChannelBranch     = "branch"
	ChannelDigital    = "digital"
	ChannelCallCenter = "call_center"
)

const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Card moves freely between statuses; no transition is forbidden.
type Card struct {
	ID          string     `db:"id"`
	CardNumber  string     `db:"card_number"`
	Status      string     `db:"status"`
	ClientID    string     `db:"client_id"`
	Channel     string     `db:"channel"`
	Type        string     `db:"type"`
	IssuedAt    *time.Time `db:"issued_at"`
	DeliveredAt *time.Time `db:"delivered_at"`
	CreatedAt   *time.Time `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

type Transaction struct {
	ID              string              `db:"id"`
	CardID          string              `db:"card_id"`
	TransactionType string              `db:"transaction_type"`
	Amount          decimal.NullDecimal `db:"amount"`
	Status          string              `db:"status"`
	CreatedAt       *time.Time          `db:"created_at"`
}

// Stats counts cards per status.
type Stats struct {
	Active    int `json:"active"`
	Blocked   int `json:"blocked"`
	Delivered int `json:"delivered"`
	Transit   int `json:"transit"`
}

func (s Stats) Total() int {
	return s.Active + s.Blocked + s.Delivered + s.Transit
}

func (s *Stats) add(status string) {
	switch status {
	case StatusActive:
		s.Active++
	case StatusBlocked:
		s.Blocked++
	case StatusDelivered:
		s.Delivered++
	case StatusTransit:
		s.Transit++
	}
}
