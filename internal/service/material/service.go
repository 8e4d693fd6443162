package material

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/material"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MaterialServiceImpl struct {
	materialRepo material.Repository
	projectRepo  project.Repository
}

func NewMaterialService(materialRepo material.Repository, projectRepo project.Repository) material.Service {
	return &MaterialServiceImpl{
		materialRepo: materialRepo,
		projectRepo:  projectRepo,
	}
}

// CreateUsage implements material.Service.
func (s *MaterialServiceImpl) CreateUsage(ctx context.Context, req material.CreateUsageRequest) (material.UsageResponse, error) {
	if err := req.Validate(); err != nil {
		return material.UsageResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return material.UsageResponse{}, err
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		date, _ = validator.IsValidDate(req.Date)
	}

	unit, _ := material.UnitFor(material.Type(req.Type))

	usage := material.Usage{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Type:      material.Type(req.Type),
		Unit:      unit,
		Volume:    req.Volume,
		Cost:      req.Cost,
		Date:      date,
	}

	created, err := s.materialRepo.Create(ctx, usage)
	if err != nil {
		return material.UsageResponse{}, fmt.Errorf("failed to create material usage: %w", err)
	}

	return toUsageResponse(created), nil
}

// ListProjectUsage implements material.Service.
func (s *MaterialServiceImpl) ListProjectUsage(ctx context.Context, projectID string) (material.ListUsageResponse, error) {
	if validator.IsEmpty(projectID) {
		return material.ListUsageResponse{}, validator.ValidationErrors{{
			Field:   "project_id",
			Message: "project id is required",
		}}
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return material.ListUsageResponse{}, err
	}

	usages, err := s.materialRepo.ListByProject(ctx, projectID)
	if err != nil {
		return material.ListUsageResponse{}, fmt.Errorf("failed to list material usages: %w", err)
	}

	responses := make([]material.UsageResponse, 0, len(usages))
	totalCost := decimal.Zero
	for _, u := range usages {
		responses = append(responses, toUsageResponse(u))
		totalCost = totalCost.Add(u.Cost)
	}

	return material.ListUsageResponse{
		Usages:    responses,
		TotalCost: totalCost,
	}, nil
}

func toUsageResponse(u material.Usage) material.UsageResponse {
	return material.UsageResponse{
		ID:        u.ID,
		ProjectID: u.ProjectID,
		Type:      u.Type,
		Unit:      u.Unit,
		Volume:    u.Volume,
		Cost:      u.Cost,
		Date:      u.Date.Format("2006-01-02"),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
