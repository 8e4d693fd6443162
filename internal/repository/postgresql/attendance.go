package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/attendance"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

// nilProjectID is the sentinel the uniqueness index substitutes for a NULL
// project_id, so that unscoped records still collide on (worker, date).
// Must match migrations/0001_init.sql.
const nilProjectID = "00000000-0000-0000-0000-000000000000"

type attendanceRepository struct {
	db *database.DB
}

// Upsert implements attendance.Repository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			worker_id, project_id, date, present, hours_worked, overtime
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (worker_id, date, COALESCE(project_id, '` + nilProjectID + `'::uuid))
		DO UPDATE SET
			present      = EXCLUDED.present,
			hours_worked = EXCLUDED.hours_worked,
			overtime     = EXCLUDED.overtime,
			updated_at   = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.WorkerID,
		record.ProjectID,
		record.Date,
		record.Present,
		record.HoursWorked,
		record.Overtime,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return attendance.Record{}, attendance.ErrUnknownWorker
		}
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, nil
}

// GetByKey implements attendance.Repository.
func (a *attendanceRepository) GetByKey(ctx context.Context, workerID string, projectID *string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, worker_id, project_id, date, present, hours_worked, overtime,
			   created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1
		  AND date = $2
		  AND COALESCE(project_id, '` + nilProjectID + `'::uuid) = COALESCE($3, '` + nilProjectID + `'::uuid)
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, workerID, date, projectID).Scan(
		&rec.ID, &rec.WorkerID, &rec.ProjectID, &rec.Date, &rec.Present,
		&rec.HoursWorked, &rec.Overtime, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this key
		}
		return nil, fmt.Errorf("failed to get attendance record by key: %w", err)
	}

	return &rec, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		baseWhere += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	if filter.ProjectID != nil && *filter.ProjectID != "" {
		baseWhere += fmt.Sprintf(" AND a.project_id = $%d", argIdx)
		args = append(args, *filter.ProjectID)
		argIdx++
	}

	// Date range filters
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Presence filter
	if filter.Present != nil {
		baseWhere += fmt.Sprintf(" AND a.present = $%d", argIdx)
		args = append(args, *filter.Present)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendance_records a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT
			a.id, a.worker_id, a.project_id, a.date, a.present,
			a.hours_worked, a.overtime, a.created_at, a.updated_at,
			w.name AS worker_name,
			w.type AS worker_type
		FROM attendance_records a
		LEFT JOIN workers w ON w.id = a.worker_id
		WHERE %s
		ORDER BY a.date %s, w.name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.ProjectID, &rec.Date, &rec.Present,
			&rec.HoursWorked, &rec.Overtime, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.WorkerName, &rec.WorkerType,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// ListForPeriod implements attendance.Repository.
func (a *attendanceRepository) ListForPeriod(ctx context.Context, workerID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, worker_id, project_id, date, present, hours_worked, overtime,
			   created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.ProjectID, &rec.Date, &rec.Present,
			&rec.HoursWorked, &rec.Overtime, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
