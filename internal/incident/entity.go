// AngelaMos | 2026
// entity.go

package incident

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const numberPrefix = "INC-"

// Incident is a support ticket raised against a client. ResolvedAt is
// set by the caller and is not tied to Status.
type Incident struct {
	ID             string     `db:"id"`
	IncidentNumber string     `db:"incident_number"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	ClientID       string     `db:"client_id"`
	Status         string     `db:"status"`
	Priority       string     `db:"priority"`
	AssignedTo     *string    `db:"assigned_to"`
	CreatedAt      *time.Time `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
	ResolvedAt     *time.Time `db:"resolved_at"`
}

// FormatNumber renders a sequence value as INC-001, INC-002, ...
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%s%03d", numberPrefix, seq)
}

// ParseNumber returns the sequence value behind an incident number.
func ParseNumber(number string) (int64, bool) {
	digits, ok := strings.CutPrefix(number, numberPrefix)
	if !ok {
		return 0, false
	}
	seq, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// newerNumber orders incident numbers by sequence, highest first.
// Unparseable numbers sort after parseable ones.
func newerNumber(a, b string) bool {
	sa, okA := ParseNumber(a)
	sb, okB := ParseNumber(b)
	switch {
	case okA && okB:
		return sa > sb
	case okA != okB:
		return okA
	default:
		return a > b
	}
}
