package project

import (
	"context"
)

// Service defines business logic for project and assignment management.
type Service interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)

	GetProject(ctx context.Context, id string) (ProjectResponse, error)

	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)

	ListProjects(ctx context.Context, filter ProjectFilter) (ListProjectsResponse, error)

	// AssignWorker attaches an existing worker to a project, or creates the
	// worker and the assignment together in one transaction.
	AssignWorker(ctx context.Context, req AssignWorkerRequest) (AssignmentResponse, error)

	EndAssignment(ctx context.Context, workerID, projectID string) (AssignmentResponse, error)

	ListProjectWorkers(ctx context.Context, projectID string, openOnly bool) (ListAssignmentsResponse, error)

	// ListWorkerAssignments retrieves every project stint for a worker,
	// newest first.
	ListWorkerAssignments(ctx context.Context, workerID string) (ListAssignmentsResponse, error)
}
