// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter map[string]int64

func (s stubCounter) Count(_ context.Context, table string) (int64, error) {
	n, ok := s[table]
	if !ok {
		return 0, errors.New("no such table")
	}
	return n, nil
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r, func(next http.Handler) http.Handler { return next })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSystemStatsMemoryMode(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Backend:   "memory",
		StartedAt: time.Now().Add(-90 * time.Second),
	})

	rec := serve(h, "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "memory", body.Backend)
	assert.Equal(t, "1m30s", body.Uptime)
	assert.True(t, body.Database.Healthy)
	assert.Nil(t, body.Database.Stats)
	assert.False(t, body.Redis.Enabled)
	assert.Nil(t, body.Rows)
	assert.NotEmpty(t, body.Runtime.GoVersion)
}

func TestSystemStatsCountsRows(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Backend: "postgres",
		Counter: stubCounter{"clients": 3, "cards": 4, "incidents": 3},
		DBPing:  func(context.Context) error { return errors.New("down") },
	})

	rec := serve(h, "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Database.Healthy)
	assert.Equal(t, map[string]int64{"clients": 3, "cards": 4, "incidents": 3}, body.Rows)
}

func TestRuntimeStats(t *testing.T) {
	rec := serve(NewHandler(HandlerConfig{}), "/admin/stats/runtime")
	require.Equal(t, http.StatusOK, rec.Code)

	var body RuntimeStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Positive(t, body.NumCPU)
}
