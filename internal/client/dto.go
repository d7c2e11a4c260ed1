// AngelaMos | 2026
// dto.go

package client

import (
	"time"
)

type CreateClientRequest struct {
	Name         string  `json:"name"         validate:"required,notblank,max=200"`
	Code         string  `json:"code"         validate:"required,notblank,max=10"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,max=255,emailorempty"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=20"`
	IsActive     *int    `json:"isActive"     validate:"omitempty,oneof=0 1"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name"         validate:"omitempty,notblank,max=200"`
	Code         *string `json:"code"         validate:"omitempty,notblank,max=10"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,max=255,emailorempty"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=20"`
	IsActive     *int    `json:"isActive"     validate:"omitempty,oneof=0 1"`
}

type ClientResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	ContactEmail *string    `json:"contactEmail"`
	ContactPhone *string    `json:"contactPhone"`
	IsActive     int        `json:"isActive"`
	CreatedAt    *time.Time `json:"createdAt"`
}

func ToClientResponse(c *Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Code:         c.Code,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

func ToClientResponseList(clients []Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses
}
