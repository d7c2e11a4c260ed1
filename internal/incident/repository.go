// AngelaMos | 2026
// repository.go

package incident

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/cardops/internal/core"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Incident, error)
	GetByID(ctx context.Context, id string) (*Incident, error)
	// NextSequence reserves the next incident number. Reserved values are
	// never handed out twice, even if the insert that follows fails.
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, incident *Incident) error
	Update(ctx context.Context, incident *Incident) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const incidentColumns = `id, incident_number, title, description, client_id,
	status, priority, assigned_to, created_at, updated_at, resolved_at`

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Incident, error) {
	var conditions []string
	var args []any

	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addFilter("status", params.Status)
	addFilter("client_id", params.ClientID)
	addFilter("priority", params.Priority)

	query := `SELECT ` + incidentColumns + ` FROM incidents`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY COALESCE(created_at, 'epoch'::timestamptz) DESC,
		LENGTH(incident_number) DESC, incident_number DESC`

	incidents := []Incident{}
	if err := r.db.SelectContext(ctx, &incidents, query, args...); err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}

	return incidents, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	var inc Incident
	err := r.db.GetContext(ctx, &inc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get incident: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get incident: %w", err)
	}

	return &inc, nil
}

func (r *repository) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.GetContext(
		ctx,
		&seq,
		`SELECT nextval('incident_number_seq')`,
	); err != nil {
		return 0, fmt.Errorf("next incident sequence: %w", err)
	}
	return seq, nil
}

func (r *repository) Create(ctx context.Context, inc *Incident) error {
	query := `
		INSERT INTO incidents (
			id, incident_number, title, description, client_id,
			status, priority, assigned_to, resolved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		inc.ID,
		inc.IncidentNumber,
		inc.Title,
		inc.Description,
		inc.ClientID,
		inc.Status,
		inc.Priority,
		inc.AssignedTo,
		inc.ResolvedAt,
	)
	if err := row.Scan(&inc.CreatedAt, &inc.UpdatedAt); err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create incident: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create incident: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, inc *Incident) error {
	query := `
		UPDATE incidents
		SET title = $2, description = $3, client_id = $4, status = $5,
		    priority = $6, assigned_to = $7, resolved_at = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &inc.UpdatedAt, query,
		inc.ID,
		inc.Title,
		inc.Description,
		inc.ClientID,
		inc.Status,
		inc.Priority,
		inc.AssignedTo,
		inc.ResolvedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update incident: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}

	return nil
}
