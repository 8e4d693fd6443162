package attendance

import (
	"context"
	"time"
)

// Repository defines data access for muster-roll records. The table carries a
// uniqueness constraint over (worker_id, date, project_id) which is what makes
// Upsert well-defined; see migrations/0001_init.sql.
type Repository interface {
	// Upsert inserts a record for its (worker, project, date) key, or
	// overwrites present/hours_worked/overtime if the key already exists.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByKey retrieves the record for one (worker, project, date) key.
	// Returns nil without error when no record exists.
	GetByKey(ctx context.Context, workerID string, projectID *string, date time.Time) (*Record, error)

	// List retrieves records with filters and pagination, joined with worker
	// display data.
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)

	// ListForPeriod retrieves all of a worker's records in [from, to),
	// unpaginated, for aggregation.
	ListForPeriod(ctx context.Context, workerID string, from, to time.Time) ([]Record, error)
}
