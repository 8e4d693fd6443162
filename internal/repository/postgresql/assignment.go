package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

type assignmentRepository struct {
	db *database.DB
}

// Create implements project.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a project.WorkerAssignment) (project.WorkerAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_assignments (id, worker_id, project_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.WorkerID,
		a.ProjectID,
		a.StartDate,
		a.EndDate,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return project.WorkerAssignment{}, project.ErrAssignmentExists
		}
		return project.WorkerAssignment{}, fmt.Errorf("failed to create worker assignment: %w", err)
	}

	return a, nil
}

// GetOpen implements project.AssignmentRepository.
func (r *assignmentRepository) GetOpen(ctx context.Context, workerID, projectID string) (*project.WorkerAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, project_id, start_date, end_date, created_at, updated_at
		FROM worker_assignments
		WHERE worker_id = $1
		  AND project_id = $2
		  AND end_date IS NULL
		LIMIT 1
	`

	var a project.WorkerAssignment
	err := q.QueryRow(ctx, query, workerID, projectID).Scan(
		&a.ID, &a.WorkerID, &a.ProjectID, &a.StartDate, &a.EndDate,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No open assignment
		}
		return nil, fmt.Errorf("failed to get open assignment: %w", err)
	}

	return &a, nil
}

// End implements project.AssignmentRepository.
func (r *assignmentRepository) End(ctx context.Context, workerID, projectID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worker_assignments
		SET end_date = $1, updated_at = NOW()
		WHERE worker_id = $2
		  AND project_id = $3
		  AND end_date IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, endDate, workerID, projectID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to end worker assignment: %w", err)
	}

	return nil
}

// ListByProject implements project.AssignmentRepository.
func (r *assignmentRepository) ListByProject(ctx context.Context, projectID string, openOnly bool) ([]project.WorkerAssignment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.project_id = $1"
	if openOnly {
		baseWhere += " AND a.end_date IS NULL"
	}

	query := `
		SELECT a.id, a.worker_id, a.project_id, a.start_date, a.end_date,
			   a.created_at, a.updated_at,
			   w.name AS worker_name,
			   w.type AS worker_type
		FROM worker_assignments a
		LEFT JOIN workers w ON w.id = a.worker_id
		WHERE ` + baseWhere + `
		ORDER BY a.start_date DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments by project: %w", err)
	}
	defer rows.Close()

	var assignments []project.WorkerAssignment
	for rows.Next() {
		var a project.WorkerAssignment
		err := rows.Scan(
			&a.ID, &a.WorkerID, &a.ProjectID, &a.StartDate, &a.EndDate,
			&a.CreatedAt, &a.UpdatedAt,
			&a.WorkerName, &a.WorkerType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// ListByWorker implements project.AssignmentRepository.
func (r *assignmentRepository) ListByWorker(ctx context.Context, workerID string) ([]project.WorkerAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.project_id, a.start_date, a.end_date,
			   a.created_at, a.updated_at,
			   p.code AS project_code
		FROM worker_assignments a
		LEFT JOIN projects p ON p.id = a.project_id
		WHERE a.worker_id = $1
		ORDER BY a.start_date DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments by worker: %w", err)
	}
	defer rows.Close()

	var assignments []project.WorkerAssignment
	for rows.Next() {
		var a project.WorkerAssignment
		err := rows.Scan(
			&a.ID, &a.WorkerID, &a.ProjectID, &a.StartDate, &a.EndDate,
			&a.CreatedAt, &a.UpdatedAt,
			&a.ProjectCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func NewAssignmentRepository(db *database.DB) project.AssignmentRepository {
	return &assignmentRepository{db: db}
}
