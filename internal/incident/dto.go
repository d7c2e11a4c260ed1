// AngelaMos | 2026
// dto.go

package incident

import (
	"time"
)

type CreateIncidentRequest struct {
	Title       string     `json:"title"       validate:"required,notblank,max=200"`
	Description string     `json:"description" validate:"required,notblank,max=5000"`
	ClientID    string     `json:"clientId"    validate:"required,notblank,max=64"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=new in_progress resolved"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	AssignedTo  *string    `json:"assignedTo"  validate:"omitempty,max=100"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

type UpdateIncidentRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,notblank,max=200"`
	Description *string    `json:"description" validate:"omitempty,notblank,max=5000"`
	ClientID    *string    `json:"clientId"    validate:"omitempty,notblank,max=64"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=new in_progress resolved"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	AssignedTo  *string    `json:"assignedTo"  validate:"omitempty,max=100"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

type ListParams struct {
	Status   string
	ClientID string
	Priority string
}

type IncidentResponse struct {
	ID             string     `json:"id"`
	IncidentNumber string     `json:"incidentNumber"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ClientID       string     `json:"clientId"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssignedTo     *string    `json:"assignedTo"`
	CreatedAt      *time.Time `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
	ResolvedAt     *time.Time `json:"resolvedAt"`
}

func ToIncidentResponse(i *Incident) IncidentResponse {
	return IncidentResponse{
		ID:             i.ID,
		IncidentNumber: i.IncidentNumber,
		Title:          i.Title,
		Description:    i.Description,
		ClientID:       i.ClientID,
		Status:         i.Status,
		Priority:       i.Priority,
		AssignedTo:     i.AssignedTo,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		ResolvedAt:     i.ResolvedAt,
	}
}

func ToIncidentResponseList(incidents []Incident) []IncidentResponse {
	responses := make([]IncidentResponse, 0, len(incidents))
	for i := range incidents {
		responses = append(responses, ToIncidentResponse(&incidents[i]))
	}
	return responses
}
