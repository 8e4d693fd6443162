package postgresql

import (
	"context"
	"fmt"

	"github.com/newera-construction/siteledger-backend-go/internal/domain/machinery"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

type machineryRepository struct {
	db *database.DB
}

// Create implements machinery.Repository.
func (r *machineryRepository) Create(ctx context.Context, usage machinery.Usage) (machinery.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machinery_usages (id, project_id, type, subtype, hours_used, hourly_rate, total_cost, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		usage.ID,
		usage.ProjectID,
		usage.Type,
		usage.Subtype,
		usage.HoursUsed,
		usage.HourlyRate,
		usage.TotalCost,
		usage.Date,
	).Scan(&usage.CreatedAt)

	if err != nil {
		return machinery.Usage{}, fmt.Errorf("failed to create machinery usage: %w", err)
	}

	return usage, nil
}

// ListByProject implements machinery.Repository.
func (r *machineryRepository) ListByProject(ctx context.Context, projectID string) ([]machinery.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, type, subtype, hours_used, hourly_rate, total_cost, date, created_at
		FROM machinery_usages
		WHERE project_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query machinery usages: %w", err)
	}
	defer rows.Close()

	var usages []machinery.Usage
	for rows.Next() {
		var u machinery.Usage
		err := rows.Scan(
			&u.ID, &u.ProjectID, &u.Type, &u.Subtype, &u.HoursUsed,
			&u.HourlyRate, &u.TotalCost, &u.Date, &u.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machinery usage: %w", err)
		}
		usages = append(usages, u)
	}

	return usages, nil
}

func NewMachineryRepository(db *database.DB) machinery.Repository {
	return &machineryRepository{db: db}
}
