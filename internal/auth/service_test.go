// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/core"
)

type stubUsers struct {
	byID map[string]*UserInfo
}

func newStubUsers(t *testing.T, username, password string) *stubUsers {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	u := &UserInfo{
		ID:           "user-1",
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	return &stubUsers{byID: map[string]*UserInfo{u.ID: u}}
}

func (s *stubUsers) GetByUsername(_ context.Context, username string) (*UserInfo, error) {
	for _, u := range s.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (s *stubUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (s *stubUsers) UpdatePassword(_ context.Context, id, hash string) error {
	s.byID[id].PasswordHash = hash
	return nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, Repository, *fakeClock) {
	t.Helper()

	repo := NewMemoryRepository()
	clock := &fakeClock{t: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := NewService(repo, newStubUsers(t, "admin", "s3cret-pass"), 0).
		WithClock(clock.Now)

	return svc, repo, clock
}

func TestAuthenticateIssuesSession(t *testing.T) {
	svc, repo, clock := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	assert.Len(t, resp.Token, 64)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, clock.t.Add(24*time.Hour), resp.ExpiresAt)

	stored, err := repo.FindByToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateReturnsOwningUser(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	user, err := svc.Validate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestValidateExpiredSessionIsDeleted(t *testing.T) {
	svc, repo, clock := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	clock.t = clock.t.Add(24*time.Hour + time.Second)

	_, err = svc.Validate(ctx, resp.Token)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, core.ErrTokenExpired)

	_, err = repo.FindByToken(ctx, resp.Token)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestValidateUnknownToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Validate(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))
	require.NoError(t, svc.Logout(ctx, resp.Token))

	_, err = svc.Validate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestPurgeExpired(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	old, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	clock.t = clock.t.Add(20 * time.Hour)
	fresh, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	clock.t = clock.t.Add(5 * time.Hour)

	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.Validate(ctx, old.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.Validate(ctx, fresh.Token)
	assert.NoError(t, err)
}
