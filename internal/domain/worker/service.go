package worker

import (
	"context"
)

// Service defines business logic for worker management.
type Service interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	GetWorker(ctx context.Context, id string) (WorkerResponse, error)

	// UpdateWorker mutates rate, phone number or the active flag. Workers are
	// never deleted; deactivation is the only removal path.
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	ListWorkers(ctx context.Context, filter WorkerFilter) (ListWorkersResponse, error)

	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)

	// ListAdvances retrieves a worker's advances with the running total.
	ListAdvances(ctx context.Context, workerID string, from, to *string) (ListAdvancesResponse, error)
}
