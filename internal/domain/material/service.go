package material

import "context"

// Service defines business logic for material usage tracking.
type Service interface {
	// CreateUsage records a material purchase/usage against a project. The
	// measurement unit is filled in from the type lookup table.
	CreateUsage(ctx context.Context, req CreateUsageRequest) (UsageResponse, error)

	// ListProjectUsage retrieves a project's material usage with the running
	// cost total.
	ListProjectUsage(ctx context.Context, projectID string) (ListUsageResponse, error)
}
