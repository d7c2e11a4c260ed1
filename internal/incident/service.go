// AngelaMos | 2026
// service.go

package incident

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/cardops/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Incident, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*Incident, error) {
	return s.repo.GetByID(ctx, id)
}

// Create numbers the incident from the store's sequence rather than from
// a row count, so concurrent creators never share a number. Numbers may
// skip when an insert fails after reservation.
func (s *Service) Create(
	ctx context.Context,
	req CreateIncidentRequest,
) (_ *Incident, err error) {
	ctx, span := core.StartSpan(ctx, "incident.create")
	defer func() {
		core.SetSpanError(span, err)
		span.End()
	}()

	seq, err := s.repo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

	inc := &Incident{
		ID:             uuid.New().String(),
		IncidentNumber: FormatNumber(seq),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		ClientID:       req.ClientID,
		Status:         core.Merge(StatusNew, req.Status),
		Priority:       core.Merge(PriorityMedium, req.Priority),
		AssignedTo:     core.MergeNullable(nil, req.AssignedTo),
		ResolvedAt:     req.ResolvedAt,
	}
	span.AddEvent("incident number assigned",
		trace.WithAttributes(
			attribute.String("incident.number", inc.IncidentNumber),
		),
	)

	if err := s.repo.Create(ctx, inc); err != nil {
		return nil, err
	}

	return inc, nil
}

// Update merges set fields. Moving to resolved does not stamp
// ResolvedAt; callers send it explicitly.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateIncidentRequest,
) (*Incident, error) {
	inc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		inc.Title = strings.TrimSpace(*req.Title)
	}
	inc.Description = core.Merge(inc.Description, req.Description)
	inc.ClientID = core.Merge(inc.ClientID, req.ClientID)
	inc.Status = core.Merge(inc.Status, req.Status)
	inc.Priority = core.Merge(inc.Priority, req.Priority)
	inc.AssignedTo = core.MergeNullable(inc.AssignedTo, req.AssignedTo)
	if req.ResolvedAt != nil {
		inc.ResolvedAt = req.ResolvedAt
	}

	if err := s.repo.Update(ctx, inc); err != nil {
		return nil, fmt.Errorf("update incident %s: %w", id, err)
	}

	return inc, nil
}
