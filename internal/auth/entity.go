// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

type Session struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// UserInfo is the slice of a user the auth flow needs, supplied by
// whatever owns user records.
type UserInfo struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
