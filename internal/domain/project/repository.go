package project

import (
	"context"
	"time"
)

// Repository defines data access methods for projects.
type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)

	GetByID(ctx context.Context, id string) (Project, error)

	Update(ctx context.Context, p Project) error

	List(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
}

// AssignmentRepository defines data access methods for worker assignments.
type AssignmentRepository interface {
	// Create inserts an assignment. The partial unique index over
	// (worker_id, project_id) WHERE end_date IS NULL rejects a second open
	// assignment for the same pair; that surfaces as ErrAssignmentExists.
	Create(ctx context.Context, a WorkerAssignment) (WorkerAssignment, error)

	// GetOpen retrieves the open assignment for a (worker, project) pair.
	// Returns nil without error when none exists.
	GetOpen(ctx context.Context, workerID, projectID string) (*WorkerAssignment, error)

	// End closes an open assignment by setting its end date.
	End(ctx context.Context, workerID, projectID string, endDate time.Time) error

	ListByProject(ctx context.Context, projectID string, openOnly bool) ([]WorkerAssignment, error)

	ListByWorker(ctx context.Context, workerID string) ([]WorkerAssignment, error)
}
