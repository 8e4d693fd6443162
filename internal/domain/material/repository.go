package material

import "context"

// Repository defines data access methods for material usage records.
type Repository interface {
	Create(ctx context.Context, usage Usage) (Usage, error)

	// ListByProject retrieves a project's material usage, newest first.
	ListByProject(ctx context.Context, projectID string) ([]Usage, error)
}
