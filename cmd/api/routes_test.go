// AngelaMos | 2026
// routes_test.go

package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/admin"
	"github.com/carterperez-dev/cardops/internal/config"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/health"
	"github.com/carterperez-dev/cardops/internal/seed"
)

func testConfig(protect bool) *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "test"},
		Auth: config.AuthConfig{
			SessionTTL:       time.Hour,
			ProtectAPI:       protect,
			LoginAttempts:    100,
			LoginAttemptsWin: time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
			AllowedMethods: []string{"GET", "POST", "PATCH"},
		},
		Otel: config.OtelConfig{ServiceName: "cardops-test"},
	}
}

func newTestAPI(t *testing.T, cfg *config.Config) (http.Handler, *services) {
	t.Helper()

	svc := newServices(memoryRepositories(), cfg.Auth)
	h := newRouter(routerDeps{
		cfg:      cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		services: svc,
		health:   health.NewHandler(),
		admin:    admin.NewHandler(admin.HandlerConfig{Backend: config.StorageMemory}),
	})
	return h, svc
}

func call(
	t *testing.T,
	h http.Handler,
	method, path, token, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateClientThenList(t *testing.T) {
	h, _ := newTestAPI(t, testConfig(false))

	rec := call(t, h, http.MethodPost, "/api/clients", "", `{"name":"Test","code":"TST"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID       string `json:"id"`
		IsActive int    `json:"isActive"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.IsActive)

	rec = call(t, h, http.MethodGet, "/api/clients", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)
}

func TestSeededCardStats(t *testing.T) {
	h, svc := newTestAPI(t, testConfig(false))

	seeder := &seed.Seeder{
		Clients:   svc.clients,
		Inventory: svc.inventory,
		Cards:     svc.cards,
		Incidents: svc.incidents,
		Users:     svc.users,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	require.NoError(t, seeder.Run(context.Background(), seed.Admin{}))

	rec := call(t, h, http.MethodGet, "/api/cards/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active":1,"blocked":1,"delivered":1,"transit":1}`, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/api/export/incidents", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Len(t, strings.Split(rec.Body.String(), "\n"), 4)
}

func TestProtectedAPISessionFlow(t *testing.T) {
	h, svc := newTestAPI(t, testConfig(true))
	ctx := context.Background()

	hash, err := core.HashPassword("admin123")
	require.NoError(t, err)
	_, err = svc.users.Create(ctx, "admin", hash)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized,
		call(t, h, http.MethodGet, "/api/clients", "", "").Code)

	rec := call(t, h, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.Len(t, login.Token, 64)

	assert.Equal(t, http.StatusOK,
		call(t, h, http.MethodGet, "/api/clients", login.Token, "").Code)

	rec = call(t, h, http.MethodGet, "/api/auth/me", login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)

	assert.Equal(t, http.StatusOK,
		call(t, h, http.MethodGet, "/api/admin/stats", login.Token, "").Code)

	rec = call(t, h, http.MethodPost, "/api/auth/logout", login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"logged out"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized,
		call(t, h, http.MethodGet, "/api/clients", login.Token, "").Code)
}

func TestLogoutTwice(t *testing.T) {
	h, svc := newTestAPI(t, testConfig(true))

	hash, err := core.HashPassword("admin123")
	require.NoError(t, err)
	_, err = svc.users.Create(context.Background(), "admin", hash)
	require.NoError(t, err)

	rec := call(t, h, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	for range 2 {
		rec = call(t, h, http.MethodPost, "/api/auth/logout", login.Token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"logged out"}`, rec.Body.String())
	}

	assert.Equal(t, http.StatusUnauthorized,
		call(t, h, http.MethodPost, "/api/auth/logout", "", "").Code)
}

func TestAdminRequiresSessionWhenAPIOpen(t *testing.T) {
	h, _ := newTestAPI(t, testConfig(false))

	assert.Equal(t, http.StatusUnauthorized,
		call(t, h, http.MethodGet, "/api/admin/stats", "", "").Code)
}

func TestLoginAttemptsLimited(t *testing.T) {
	cfg := testConfig(true)
	cfg.Auth.LoginAttempts = 2
	h, _ := newTestAPI(t, cfg)

	body := `{"username":"nobody","password":"x"}`
	for range 2 {
		assert.Equal(t, http.StatusUnauthorized,
			call(t, h, http.MethodPost, "/api/auth/login", "", body).Code)
	}

	rec := call(t, h, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestHealthAndHeaders(t *testing.T) {
	h, _ := newTestAPI(t, testConfig(true))

	rec := call(t, h, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
