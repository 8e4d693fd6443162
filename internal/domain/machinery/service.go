package machinery

import "context"

// Service defines business logic for machinery usage tracking.
type Service interface {
	// CreateUsage records machinery hours against a project. Total cost is
	// computed server-side as hours x rate; the subtype is validated against
	// the per-type lookup table.
	CreateUsage(ctx context.Context, req CreateUsageRequest) (UsageResponse, error)

	// ListProjectUsage retrieves a project's machinery usage with the running
	// cost total.
	ListProjectUsage(ctx context.Context, projectID string) (ListUsageResponse, error)
}
