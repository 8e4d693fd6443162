package machinery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/machinery"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MachineryServiceImpl struct {
	machineryRepo machinery.Repository
	projectRepo   project.Repository
}

func NewMachineryService(machineryRepo machinery.Repository, projectRepo project.Repository) machinery.Service {
	return &MachineryServiceImpl{
		machineryRepo: machineryRepo,
		projectRepo:   projectRepo,
	}
}

// CreateUsage implements machinery.Service.
func (s *MachineryServiceImpl) CreateUsage(ctx context.Context, req machinery.CreateUsageRequest) (machinery.UsageResponse, error) {
	if err := req.Validate(); err != nil {
		return machinery.UsageResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return machinery.UsageResponse{}, err
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		date, _ = validator.IsValidDate(req.Date)
	}

	var subtype *string
	if req.Subtype != "" {
		subtype = &req.Subtype
	}

	usage := machinery.Usage{
		ID:         uuid.NewString(),
		ProjectID:  req.ProjectID,
		Type:       machinery.Type(req.Type),
		Subtype:    subtype,
		HoursUsed:  req.HoursUsed,
		HourlyRate: req.HourlyRate,
		TotalCost:  req.HoursUsed.Mul(req.HourlyRate),
		Date:       date,
	}

	created, err := s.machineryRepo.Create(ctx, usage)
	if err != nil {
		return machinery.UsageResponse{}, fmt.Errorf("failed to create machinery usage: %w", err)
	}

	return toUsageResponse(created), nil
}

// ListProjectUsage implements machinery.Service.
func (s *MachineryServiceImpl) ListProjectUsage(ctx context.Context, projectID string) (machinery.ListUsageResponse, error) {
	if validator.IsEmpty(projectID) {
		return machinery.ListUsageResponse{}, validator.ValidationErrors{{
			Field:   "project_id",
			Message: "project id is required",
		}}
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return machinery.ListUsageResponse{}, err
	}

	usages, err := s.machineryRepo.ListByProject(ctx, projectID)
	if err != nil {
		return machinery.ListUsageResponse{}, fmt.Errorf("failed to list machinery usages: %w", err)
	}

	responses := make([]machinery.UsageResponse, 0, len(usages))
	totalCost := decimal.Zero
	for _, u := range usages {
		responses = append(responses, toUsageResponse(u))
		totalCost = totalCost.Add(u.TotalCost)
	}

	return machinery.ListUsageResponse{
		Usages:    responses,
		TotalCost: totalCost,
	}, nil
}

func toUsageResponse(u machinery.Usage) machinery.UsageResponse {
	return machinery.UsageResponse{
		ID:         u.ID,
		ProjectID:  u.ProjectID,
		Type:       u.Type,
		Subtype:    u.Subtype,
		HoursUsed:  u.HoursUsed,
		HourlyRate: u.HourlyRate,
		TotalCost:  u.TotalCost,
		Date:       u.Date.Format("2006-01-02"),
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
