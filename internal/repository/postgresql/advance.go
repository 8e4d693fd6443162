package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

// Create implements worker.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, advance worker.AdvancePayment) (worker.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_payments (id, worker_id, amount, date, is_paid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		advance.ID,
		advance.WorkerID,
		advance.Amount,
		advance.Date,
		advance.IsPaid,
	).Scan(&advance.CreatedAt, &advance.UpdatedAt)

	if err != nil {
		return worker.AdvancePayment{}, fmt.Errorf("failed to create advance payment: %w", err)
	}

	return advance, nil
}

// ListByWorker implements worker.AdvanceRepository.
func (r *advanceRepository) ListByWorker(ctx context.Context, workerID string, from, to *time.Time) ([]worker.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "worker_id = $1"
	args := []interface{}{workerID}
	argIdx := 2

	if from != nil {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		baseWhere += fmt.Sprintf(" AND date < $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}

	query := `
		SELECT id, worker_id, amount, date, is_paid, created_at, updated_at
		FROM advance_payments
		WHERE ` + baseWhere + `
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance payments: %w", err)
	}
	defer rows.Close()

	var advances []worker.AdvancePayment
	for rows.Next() {
		var adv worker.AdvancePayment
		err := rows.Scan(
			&adv.ID, &adv.WorkerID, &adv.Amount, &adv.Date, &adv.IsPaid,
			&adv.CreatedAt, &adv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance payment: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, nil
}

func NewAdvanceRepository(db *database.DB) worker.AdvanceRepository {
	return &advanceRepository{db: db}
}
