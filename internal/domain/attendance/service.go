package attendance

import (
	"context"
)

// Service defines business logic for the attendance ledger.
type Service interface {
	// SubmitAttendance applies one muster-roll submission as a single atomic
	// batch of upserts: either every entry is persisted or none are.
	// Resubmitting the same batch is safe; the keys are idempotent.
	SubmitAttendance(ctx context.Context, req SubmitAttendanceRequest) (SubmitAttendanceResponse, error)

	// ListAttendance retrieves records with filters, newest date first.
	ListAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// GetMonthlySummary aggregates a worker's presence, hours, earnings and
	// advances for one calendar month ("YYYY-MM").
	GetMonthlySummary(ctx context.Context, workerID string, month string) (MonthlySummaryResponse, error)
}
