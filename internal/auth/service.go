// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/middleware"
)

const DefaultSessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = fmt.Errorf("invalid session: %w", core.ErrTokenInvalid)
	ErrSessionExpired     = fmt.Errorf("session expired: %w", core.ErrTokenExpired)
)

type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	repo         Repository
	userProvider UserProvider
	sessionTTL   time.Duration
	now          func() time.Time
}

func NewService(
	repo Repository,
	userProvider UserProvider,
	sessionTTL time.Duration,
) *Service {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &Service{
		repo:         repo,
		userProvider: userProvider,
		sessionTTL:   sessionTTL,
		now:          time.Now,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Authenticate checks the credentials and opens a new session.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(
	ctx context.Context,
	username, password string,
) (*LoginResponse, error) {
	user, err := s.userProvider.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // burn the same time as a real verification
			_, _, _ = core.VerifyPasswordTimingSafe(password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, upgraded, err := core.VerifyPasswordTimingSafe(
		password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	if upgraded != "" {
		if err := s.userProvider.UpdatePassword(ctx, user.ID, upgraded); err != nil {
			slog.WarnContext(ctx, "password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	token, err := core.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL).UTC(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		User:      ToUserResponse(user),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Validate resolves a token to its user. Expired sessions are deleted on
// the way out.
func (s *Service) Validate(ctx context.Context, token string) (*UserInfo, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err := s.repo.Delete(ctx, token); err != nil {
			return nil, fmt.Errorf("drop expired session: %w", err)
		}
		return nil, ErrSessionExpired
	}

	user, err := s.userProvider.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// VerifySession satisfies middleware.SessionVerifier.
func (s *Service) VerifySession(
	ctx context.Context,
	token string,
) (*middleware.Principal, error) {
	user, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	return &middleware.Principal{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Service) CurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}

// RunJanitor purges expired sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "session purge failed", "error", err)
				continue
			}
			if n > 0 {
				slog.InfoContext(ctx, "expired sessions purged", "count", n)
			}
		}
	}
}
