// AngelaMos | 2026
// dto.go

package card

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCardRequest struct {
	CardNumber  string     `json:"cardNumber"  validate:"required,notblank,max=19"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=active blocked delivered transit"`
	ClientID    string     `json:"clientId"    validate:"required,notblank,max=64"`
	Channel     string     `json:"channel"     validate:"required,oneof=branch digital call_center"`
	Type        string     `json:"type"        validate:"required,oneof=credit debit"`
	IssuedAt    *time.Time `json:"issuedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

type UpdateCardRequest struct {
	CardNumber  *string    `json:"cardNumber"  validate:"omitempty,notblank,max=19"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=active blocked delivered transit"`
	ClientID    *string    `json:"clientId"    validate:"omitempty,notblank,max=64"`
	Channel     *string    `json:"channel"     validate:"omitempty,oneof=branch digital call_center"`
	Type        *string    `json:"type"        validate:"omitempty,oneof=credit debit"`
	IssuedAt    *time.Time `json:"issuedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// ListParams holds exact-match filters; empty fields are ignored.
type ListParams struct {
	Status   string
	ClientID string
	Channel  string
}

type CardResponse struct {
	ID          string     `json:"id"`
	CardNumber  string     `json:"cardNumber"`
	Status      string     `json:"status"`
	ClientID    string     `json:"clientId"`
	Channel     string     `json:"channel"`
	Type        string     `json:"type"`
	IssuedAt    *time.Time `json:"issuedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func ToCardResponse(c *Card) CardResponse {
	return CardResponse{
		ID:          c.ID,
		CardNumber:  c.CardNumber,
		Status:      c.Status,
		ClientID:    c.ClientID,
		Channel:     c.Channel,
		Type:        c.Type,
		IssuedAt:    c.IssuedAt,
		DeliveredAt: c.DeliveredAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCardResponseList(cards []Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, ToCardResponse(&cards[i]))
	}
	return responses
}

type CreateTransactionRequest struct {
	TransactionType string           `json:"transactionType" validate:"required,notblank,max=50"`
	Amount          *decimal.Decimal `json:"amount"`
	Status          string           `json:"status"          validate:"required,notblank,max=20"`
}

type TransactionResponse struct {
	ID              string           `json:"id"`
	CardID          string           `json:"cardId"`
	TransactionType string           `json:"transactionType"`
	Amount          *decimal.Decimal `json:"amount"`
	Status          string           `json:"status"`
	CreatedAt       *time.Time       `json:"createdAt"`
}

func ToTransactionResponse(t *Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID,
		CardID:          t.CardID,
		TransactionType: t.TransactionType,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
	}
	if t.Amount.Valid {
		amount := t.Amount.Decimal
		resp.Amount = &amount
	}
	return resp
}

func ToTransactionResponseList(txs []Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, ToTransactionResponse(&txs[i]))
	}
	return responses
}
