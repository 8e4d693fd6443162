package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

// Create implements worker.Repository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, type, hourly_rate, phone_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.ID,
		w.Name,
		w.Type,
		w.HourlyRate,
		w.PhoneNumber,
		w.IsActive,
	).Scan(&w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.Repository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, hourly_rate, phone_number, is_active, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Type, &w.HourlyRate, &w.PhoneNumber,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by ID: %w", err)
	}

	return w, nil
}

// GetByIDs implements worker.Repository.
func (r *workerRepository) GetByIDs(ctx context.Context, ids []string) (map[string]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, hourly_rate, phone_number, is_active, created_at, updated_at
		FROM workers
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers by IDs: %w", err)
	}
	defer rows.Close()

	workers := make(map[string]worker.Worker, len(ids))
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(
			&w.ID, &w.Name, &w.Type, &w.HourlyRate, &w.PhoneNumber,
			&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers[w.ID] = w
	}

	return workers, nil
}

// Update implements worker.Repository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET hourly_rate = $1, phone_number = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, w.HourlyRate, w.PhoneNumber, w.IsActive, w.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	return nil
}

// List implements worker.Repository.
func (r *workerRepository) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.ActiveOnly {
		baseWhere += " AND is_active = TRUE"
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM workers WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, name, type, hourly_rate, phone_number, is_active, created_at, updated_at
		FROM workers
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(
			&w.ID, &w.Name, &w.Type, &w.HourlyRate, &w.PhoneNumber,
			&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, total, nil
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}
