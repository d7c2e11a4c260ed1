// AngelaMos | 2026
// dto.go

package inventory

import (
	"time"
)

type CreateItemRequest struct {
	ItemType     string  `json:"itemType"     validate:"required,notblank,max=50"`
	ItemName     string  `json:"itemName"     validate:"required,notblank,max=200"`
	CurrentStock *int    `json:"currentStock" validate:"omitempty,min=0"`
	MinimumStock *int    `json:"minimumStock" validate:"omitempty,min=0"`
	MaxStock     *int    `json:"maxStock"     validate:"omitempty,min=0"`
	Unit         *string `json:"unit"         validate:"omitempty,notblank,max=20"`
	Location     *string `json:"location"     validate:"omitempty,max=100"`
}

type UpdateItemRequest struct {
	ItemType     *string `json:"itemType"     validate:"omitempty,notblank,max=50"`
	ItemName     *string `json:"itemName"     validate:"omitempty,notblank,max=200"`
	CurrentStock *int    `json:"currentStock" validate:"omitempty,min=0"`
	MinimumStock *int    `json:"minimumStock" validate:"omitempty,min=0"`
	MaxStock     *int    `json:"maxStock"     validate:"omitempty,min=0"`
	Unit         *string `json:"unit"         validate:"omitempty,notblank,max=20"`
	Location     *string `json:"location"     validate:"omitempty,max=100"`
}

type ItemResponse struct {
	ID           string     `json:"id"`
	ItemType     string     `json:"itemType"`
	ItemName     string     `json:"itemName"`
	CurrentStock int        `json:"currentStock"`
	MinimumStock int        `json:"minimumStock"`
	MaxStock     int        `json:"maxStock"`
	Unit         string     `json:"unit"`
	Location     *string    `json:"location"`
	LastUpdated  *time.Time `json:"lastUpdated"`
	AlertLevel   Level      `json:"alertLevel"`
}

type AlertResponse struct {
	ItemResponse
	DaysRemaining int `json:"daysRemaining"`
}

func ToItemResponse(i *Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		ItemType:     i.ItemType,
		ItemName:     i.ItemName,
		CurrentStock: i.CurrentStock,
		MinimumStock: i.MinimumStock,
		MaxStock:     i.MaxStock,
		Unit:         i.Unit,
		Location:     i.Location,
		LastUpdated:  i.LastUpdated,
		AlertLevel:   i.AlertLevel(),
	}
}

func ToItemResponseList(items []Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	return responses
}
