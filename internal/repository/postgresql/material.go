package postgresql

import (
	"context"
	"fmt"

	"github.com/newera-construction/siteledger-backend-go/internal/domain/material"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
)

type materialRepository struct {
	db *database.DB
}

// Create implements material.Repository.
func (r *materialRepository) Create(ctx context.Context, usage material.Usage) (material.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO material_usages (id, project_id, type, unit, volume, cost, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		usage.ID,
		usage.ProjectID,
		usage.Type,
		usage.Unit,
		usage.Volume,
		usage.Cost,
		usage.Date,
	).Scan(&usage.CreatedAt)

	if err != nil {
		return material.Usage{}, fmt.Errorf("failed to create material usage: %w", err)
	}

	return usage, nil
}

// ListByProject implements material.Repository.
func (r *materialRepository) ListByProject(ctx context.Context, projectID string) ([]material.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, type, unit, volume, cost, date, created_at
		FROM material_usages
		WHERE project_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query material usages: %w", err)
	}
	defer rows.Close()

	var usages []material.Usage
	for rows.Next() {
		var u material.Usage
		err := rows.Scan(
			&u.ID, &u.ProjectID, &u.Type, &u.Unit, &u.Volume, &u.Cost,
			&u.Date, &u.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material usage: %w", err)
		}
		usages = append(usages, u)
	}

	return usages, nil
}

func NewMaterialRepository(db *database.DB) material.Repository {
	return &materialRepository{db: db}
}
