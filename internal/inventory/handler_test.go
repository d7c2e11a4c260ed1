// AngelaMos | 2026
// handler_test.go

package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRejectsNegativeStock(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(NewService(NewMemoryRepository())).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/inventory",
		strings.NewReader(`{"itemType":"chips","itemName":"Chips","currentStock":-1}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerListIncludesAlertLevel(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedItems(t, svc)

	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)

	levels := make(map[string]Level, len(items))
	for _, it := range items {
		levels[it.ItemName] = it.AlertLevel
	}
	assert.Equal(t, LevelCritical, levels["Tarjetas Plásticas"])
	assert.Equal(t, LevelLow, levels["Chips EMV"])
	assert.Equal(t, LevelOptimal, levels["Sobres de Seguridad"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory/alerts", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"daysRemaining":3`)
}

func TestHandlerUnknownItem(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(NewService(NewMemoryRepository())).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/inventory/missing",
		strings.NewReader(`{"currentStock":5}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerRejectsBlankNames(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(NewService(NewMemoryRepository())).RegisterRoutes(r)

	for _, body := range []string{
		`{"itemType":"  ","itemName":"Chips"}`,
		`{"itemType":"chips","itemName":" \t "}`,
		`{"itemType":"chips","itemName":"Chips","unit":"   "}`,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inventory",
			strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), `"tag":"notblank"`, body)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory", nil))
	assert.JSONEq(t, `[]`, rec.Body.String())
}
