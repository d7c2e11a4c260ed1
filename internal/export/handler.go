// AngelaMos | 2026
// handler.go

package export

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/incident"
)

type CardLister interface {
	List(ctx context.Context, params card.ListParams) ([]card.Card, error)
}

type IncidentLister interface {
	List(
		ctx context.Context,
		params incident.ListParams,
	) ([]incident.Incident, error)
}

type Handler struct {
	cards     CardLister
	incidents IncidentLister
}

func NewHandler(cards CardLister, incidents IncidentLister) *Handler {
	return &Handler{cards: cards, incidents: incidents}
}

// RegisterRoutes mounts the CSV downloads. They accept the same filters
// as the matching list endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/export", func(r chi.Router) {
		r.Get("/cards", h.Cards)
		r.Get("/incidents", h.Incidents)
	})
}

func (h *Handler) Cards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cards, err := h.cards.List(r.Context(), card.ListParams{
		Status:   q.Get("status"),
		ClientID: q.Get("clientId"),
		Channel:  q.Get("channel"),
	})
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.CSV(w, CardsFilename, CardsCSV(cards))
}

func (h *Handler) Incidents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	incidents, err := h.incidents.List(r.Context(), incident.ListParams{
		Status:   q.Get("status"),
		ClientID: q.Get("clientId"),
		Priority: q.Get("priority"),
	})
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.CSV(w, IncidentsFilename, IncidentsCSV(incidents))
}
