package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

// Create implements project.Repository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, code, client_name, location, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.Code,
		p.ClientName,
		p.Location,
		p.StartDate,
		p.EndDate,
		p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return project.Project{}, project.ErrProjectCodeExists
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.Repository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, client_name, location, start_date, end_date, status, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Code, &p.ClientName, &p.Location, &p.StartDate,
		&p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return p, nil
}

// Update implements project.Repository.
func (r *projectRepository) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET status = $1, end_date = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, p.Status, p.EndDate, p.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// List implements project.Repository.
func (r *projectRepository) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ClientName != nil && *filter.ClientName != "" {
		baseWhere += fmt.Sprintf(" AND client_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.ClientName+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM projects WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, code, client_name, location, start_date, end_date, status, created_at, updated_at
		FROM projects
		WHERE %s
		ORDER BY start_date DESC
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
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID, &p.Code, &p.ClientName, &p.Location, &p.StartDate,
			&p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, total, nil
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepository{db: db}
}
