// AngelaMos | 2026
// data.go

package seed

import (
	"time"

	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/client"
	"github.com/carterperez-dev/cardops/internal/incident"
	"github.com/carterperez-dev/cardops/internal/inventory"
)

func ptr[T any](v T) *T { return &v }

var sampleClients = []client.CreateClientRequest{
	{
		Name:         "BBVA",
		Code:         "BBVA",
		ContactEmail: ptr("contact@bbva.com"),
		ContactPhone: ptr("+1234567890"),
	},
	{
		Name:         "Santander",
		Code:         "SANT",
		ContactEmail: ptr("contact@santander.com"),
		ContactPhone: ptr("+1234567891"),
	},
	{
		Name:         "Banco Nación",
		Code:         "BNA",
		ContactEmail: ptr("contact@bna.gov.ar"),
		ContactPhone: ptr("+1234567892"),
	},
}

var sampleInventory = []inventory.CreateItemRequest{
	{
		ItemType:     "cards",
		ItemName:     "Tarjetas Plásticas",
		CurrentStock: ptr(2450),
		MinimumStock: ptr(5000),
		MaxStock:     ptr(50000),
		Location:     ptr("Warehouse A"),
	},
	{
		ItemType:     "chips",
		ItemName:     "Chips de Seguridad",
		CurrentStock: ptr(7800),
		MinimumStock: ptr(10000),
		MaxStock:     ptr(100000),
		Location:     ptr("Warehouse B"),
	},
	{
		ItemType:     "envelopes",
		ItemName:     "Sobres de Envío",
		CurrentStock: ptr(15600),
		MinimumStock: ptr(8000),
		MaxStock:     ptr(80000),
		Location:     ptr("Warehouse C"),
	},
}

// client fields index into sampleClients.
var sampleCards = []struct {
	number    string
	status    string
	client    int
	channel   string
	kind      string
	delivered bool
}{
	{"1234-5678-9012-3456", card.StatusActive, 0, card.ChannelBranch, card.TypeCredit, true},
	{"2345-6789-0123-4567", card.StatusBlocked, 1, card.ChannelDigital, card.TypeDebit, false},
	{"3456-7890-1234-5678", card.StatusDelivered, 2, card.ChannelCallCenter, card.TypeCredit, true},
	{"4567-8901-2345-6789", card.StatusTransit, 0, card.ChannelBranch, card.TypeDebit, false},
}

var sampleIncidents = []struct {
	title       string
	description string
	client      int
	status      string
	priority    string
	assignedTo  *string
	resolvedAt  *time.Time
}{
	{
		title:       "Tarjeta bloqueada por error del sistema",
		description: "Sistema automático bloqueó tarjeta sin motivo válido",
		client:      0,
		status:      incident.StatusInProgress,
		priority:    incident.PriorityHigh,
		assignedTo:  ptr("admin"),
	},
	{
		title:       "Demora en entrega de tarjetas",
		description: "Retraso en el proceso de entrega a domicilio",
		client:      1,
		status:      incident.StatusResolved,
		priority:    incident.PriorityMedium,
		assignedTo:  ptr("admin"),
		resolvedAt:  ptr(time.Date(2024, 11, 13, 0, 0, 0, 0, time.UTC)),
	},
	{
		title:       "Problema de activación automática",
		description: "Falla en el sistema de activación automática de tarjetas",
		client:      2,
		status:      incident.StatusNew,
		priority:    incident.PriorityLow,
	},
}
