// AngelaMos | 2026
// export.go

package export

import (
	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/incident"
)

const (
	CardsFilename     = "cards_export.csv"
	IncidentsFilename = "incidents_export.csv"
)

var (
	cardColumns = []string{
		"cardNumber", "status", "clientId", "channel", "type",
		"issuedAt", "deliveredAt",
	}
	incidentColumns = []string{
		"incidentNumber", "title", "description", "clientId", "status",
		"priority", "createdAt",
	}
)

func CardsCSV(cards []card.Card) string {
	rows := make([][]any, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []any{
			c.CardNumber, c.Status, c.ClientID, c.Channel, c.Type,
			c.IssuedAt, c.DeliveredAt,
		})
	}
	return core.EncodeCSV(cardColumns, rows)
}

func IncidentsCSV(incidents []incident.Incident) string {
	rows := make([][]any, 0, len(incidents))
	for _, i := range incidents {
		rows = append(rows, []any{
			i.IncidentNumber, i.Title, i.Description, i.ClientID, i.Status,
			i.Priority, i.CreatedAt,
		})
	}
	return core.EncodeCSV(incidentColumns, rows)
}
