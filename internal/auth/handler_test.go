// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/middleware"
)

func identity(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T) (http.Handler, *fakeClock) {
	t.Helper()

	svc, _, clock := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r, middleware.Authenticator(svc), identity)
	return r, clock
}

func send(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()

	rec := send(h, http.MethodPost, "/auth/login", "",
		`{"username":"admin","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHandlerLogoutIsIdempotent(t *testing.T) {
	h, _ := newTestRouter(t)
	token := login(t, h)

	for range 2 {
		rec := send(h, http.MethodPost, "/auth/logout", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"logged out"}`, rec.Body.String())
	}

	assert.Equal(t, http.StatusUnauthorized,
		send(h, http.MethodGet, "/auth/me", token, "").Code)
}

func TestHandlerLogoutExpiredSession(t *testing.T) {
	h, clock := newTestRouter(t)
	token := login(t, h)

	clock.t = clock.t.Add(DefaultSessionTTL + time.Minute)

	rec := send(h, http.MethodGet, "/auth/me", token, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")

	rec = send(h, http.MethodPost, "/auth/logout", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerLogoutRequiresBearerHeader(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := send(h, http.MethodPost, "/auth/logout", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Basic YWRtaW46eA==")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = send(h, http.MethodPost, "/auth/logout", "never-issued", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
