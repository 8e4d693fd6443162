package worker

import (
	"context"
	"time"
)

// Repository defines data access methods for workers.
type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByIDs retrieves several workers at once, keyed by ID. Missing IDs
	// are simply absent from the result map.
	GetByIDs(ctx context.Context, ids []string) (map[string]Worker, error)

	Update(ctx context.Context, w Worker) error

	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)
}

// AdvanceRepository defines data access methods for advance payments.
type AdvanceRepository interface {
	Create(ctx context.Context, advance AdvancePayment) (AdvancePayment, error)

	// ListByWorker retrieves a worker's advances in [from, to), newest first.
	// Nil bounds mean unbounded.
	ListByWorker(ctx context.Context, workerID string, from, to *time.Time) ([]AdvancePayment, error)
}
