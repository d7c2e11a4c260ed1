// AngelaMos | 2026
// postgres_test.go

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cardops/internal/admin"
	"github.com/carterperez-dev/cardops/internal/config"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/health"
	"github.com/carterperez-dev/cardops/internal/incident"
)

// openTestDatabase connects to DATABASE_URL and applies the embedded
// migrations. Tests that use it are skipped when the variable is unset.
func openTestDatabase(t *testing.T) *core.Database {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := core.NewDatabase(ctx, config.DatabaseConfig{
		URL:          url,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, core.Migrate(ctx, db.DB))
	require.NoError(t, core.Migrate(ctx, db.DB), "migrations must be re-runnable")

	return db
}

// cleanup removes rows by id once the test finishes, so the suite can run
// against a shared database.
type cleanup struct {
	t  *testing.T
	db *core.Database
}

func (c cleanup) track(table, id string) {
	c.t.Cleanup(func() {
		query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
		_, err := c.db.DB.ExecContext(context.Background(), query, id)
		assert.NoError(c.t, err)
	})
}

func newPostgresAPI(t *testing.T, db *core.Database) (http.Handler, *services) {
	t.Helper()

	cfg := testConfig(true)
	svc := newServices(postgresRepositories(db.DB), cfg.Auth)
	h := newRouter(routerDeps{
		cfg:      cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		services: svc,
		health:   health.NewHandler(),
		admin: admin.NewHandler(admin.HandlerConfig{
			Backend: config.StoragePostgres,
			DBStats: db.Stats,
			DBPing:  db.Ping,
		}),
	})
	return h, svc
}

func decodeID(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestPostgresBackend(t *testing.T) {
	db := openTestDatabase(t)
	h, svc := newPostgresAPI(t, db)
	clean := cleanup{t: t, db: db}
	suffix := strings.ToUpper(uuid.NewString()[:8])

	username := "it-" + suffix
	hash, err := core.HashPassword("admin123")
	require.NoError(t, err)
	user, err := svc.users.Create(context.Background(), username, hash)
	require.NoError(t, err)
	clean.track("users", user.ID)

	rec := call(t, h, http.MethodPost, "/api/auth/login", "",
		`{"username":"`+username+`","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	token := login.Token

	t.Run("clients", func(t *testing.T) {
		body := `{"name":"Integration","code":"C` + suffix + `","contactEmail":"ops@example.com"}`
		rec := call(t, h, http.MethodPost, "/api/clients", token, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		id := decodeID(t, rec.Body.Bytes())
		clean.track("clients", id)

		rec = call(t, h, http.MethodPost, "/api/clients", token, body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "DUPLICATE")

		rec = call(t, h, http.MethodPatch, "/api/clients/"+id, token,
			`{"contactEmail":"","isActive":0}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"contactEmail":null`)

		rec = call(t, h, http.MethodGet, "/api/clients", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), id)

		assert.Equal(t, http.StatusNotFound,
			call(t, h, http.MethodGet, "/api/clients/"+uuid.NewString(), token, "").Code)
	})

	t.Run("cards", func(t *testing.T) {
		before, err := svc.cards.Stats(context.Background())
		require.NoError(t, err)

		number := fmt.Sprintf("%016d", time.Now().UnixNano()%1e16)
		rec := call(t, h, http.MethodPost, "/api/cards", token,
			`{"cardNumber":"`+number+`","clientId":"c-`+suffix+`","channel":"digital","type":"credit"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		id := decodeID(t, rec.Body.Bytes())
		clean.track("cards", id)

		rec = call(t, h, http.MethodPost, "/api/cards", token,
			`{"cardNumber":"`+number+`","clientId":"c-`+suffix+`","channel":"digital","type":"credit"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)

		after, err := svc.cards.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before.Active+1, after.Active)

		rec = call(t, h, http.MethodPost, "/api/cards/"+id+"/transactions", token,
			`{"transactionType":"activation","amount":"12.50","status":"completed"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		clean.track("card_transactions", decodeID(t, rec.Body.Bytes()))

		rec = call(t, h, http.MethodGet, "/api/cards/"+id+"/transactions", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var txs []struct {
			CardID string `json:"cardId"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txs))
		require.Len(t, txs, 1)
		assert.Equal(t, id, txs[0].CardID)

		rec = call(t, h, http.MethodGet, "/api/cards?clientId=c-"+suffix, token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), number)
	})

	t.Run("incidents", func(t *testing.T) {
		create := func(title string) incident.IncidentResponse {
			rec := call(t, h, http.MethodPost, "/api/incidents", token,
				`{"title":"`+title+`","description":"d","clientId":"c-`+suffix+`"}`)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			var inc incident.IncidentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inc))
			clean.track("incidents", inc.ID)
			return inc
		}

		first := create("first")
		second := create("second")

		a, ok := incident.ParseNumber(first.IncidentNumber)
		require.True(t, ok, first.IncidentNumber)
		b, ok := incident.ParseNumber(second.IncidentNumber)
		require.True(t, ok, second.IncidentNumber)
		assert.Greater(t, b, a)
		assert.Equal(t, incident.StatusNew, first.Status)
		assert.Equal(t, incident.PriorityMedium, first.Priority)

		rec := call(t, h, http.MethodPatch, "/api/incidents/"+first.ID, token,
			`{"status":"resolved","priority":"high"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = call(t, h, http.MethodGet,
			"/api/incidents?clientId=c-"+suffix+"&status=resolved", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []incident.IncidentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, first.IncidentNumber, list[0].IncidentNumber)
		assert.Nil(t, list[0].ResolvedAt)
	})

	t.Run("inventory", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/api/inventory", token,
			`{"itemType":"chips","itemName":"Chips `+suffix+`","currentStock":10,"minimumStock":100}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		id := decodeID(t, rec.Body.Bytes())
		clean.track("inventory", id)

		rec = call(t, h, http.MethodPatch, "/api/inventory/"+id, token, `{"currentStock":250}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = call(t, h, http.MethodGet, "/api/inventory/"+id, token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"currentStock":250`)
		assert.Contains(t, rec.Body.String(), `"unit":"units"`)
	})

	t.Run("logout", func(t *testing.T) {
		for range 2 {
			assert.Equal(t, http.StatusOK,
				call(t, h, http.MethodPost, "/api/auth/logout", token, "").Code)
		}
		assert.Equal(t, http.StatusUnauthorized,
			call(t, h, http.MethodGet, "/api/clients", token, "").Code)
	})
}
