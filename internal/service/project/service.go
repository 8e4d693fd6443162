package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/newera-construction/siteledger-backend-go/internal/repository/postgresql"
)

type ProjectServiceImpl struct {
	db             *database.DB
	projectRepo    project.Repository
	assignmentRepo project.AssignmentRepository
	workerRepo     worker.Repository
}

func NewProjectService(
	db *database.DB,
	projectRepo project.Repository,
	assignmentRepo project.AssignmentRepository,
	workerRepo worker.Repository,
) project.Service {
	return &ProjectServiceImpl{
		db:             db,
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
	}
}

// CreateProject implements project.Service.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		t, _ := validator.IsValidDate(*req.EndDate)
		endDate = &t
	}

	p := project.Project{
		ID:         uuid.NewString(),
		Code:       req.Code,
		ClientName: req.ClientName,
		Location:   req.Location,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     project.StatusActive,
	}

	created, err := s.projectRepo.Create(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return toProjectResponse(created), nil
}

// GetProject implements project.Service.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	if validator.IsEmpty(id) {
		return project.ProjectResponse{}, validator.ValidationErrors{{
			Field:   "id",
			Message: "project id is required",
		}}
	}

	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return toProjectResponse(p), nil
}

// UpdateProject implements project.Service.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Status != nil {
		p.Status = project.Status(*req.Status)
	}
	if req.EndDate != nil && *req.EndDate != "" {
		t, _ := validator.IsValidDate(*req.EndDate)
		p.EndDate = &t
	}

	// Completing a project without an explicit end date stamps today.
	if p.Status == project.StatusCompleted && p.EndDate == nil {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		p.EndDate = &now
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return toProjectResponse(updated), nil
}

// ListProjects implements project.Service.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ProjectFilter) (project.ListProjectsResponse, error) {
	if err := filter.Validate(); err != nil {
		return project.ListProjectsResponse{}, err
	}

	projects, total, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return project.ListProjectsResponse{}, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}

	return project.ListProjectsResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// AssignWorker implements project.Service.
func (s *ProjectServiceImpl) AssignWorker(ctx context.Context, req project.AssignWorkerRequest) (project.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return project.AssignmentResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		startDate, _ = validator.IsValidDate(req.StartDate)
	}

	var assignment project.WorkerAssignment

	// Worker creation and assignment commit together, so the inline-worker
	// mode never leaves a worker behind when the assignment fails.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		workerID := req.WorkerID
		if workerID == "" {
			w := worker.Worker{
				ID:          uuid.NewString(),
				Name:        req.Name,
				Type:        worker.Type(req.Type),
				HourlyRate:  req.HourlyRate,
				PhoneNumber: req.PhoneNumber,
				IsActive:    true,
			}
			created, err := s.workerRepo.Create(txCtx, w)
			if err != nil {
				return fmt.Errorf("failed to create worker: %w", err)
			}
			workerID = created.ID
		} else {
			w, err := s.workerRepo.GetByID(txCtx, workerID)
			if err != nil {
				return err
			}
			if !w.IsActive {
				return worker.ErrWorkerInactive
			}
		}

		created, err := s.assignmentRepo.Create(txCtx, project.WorkerAssignment{
			ID:        uuid.NewString(),
			WorkerID:  workerID,
			ProjectID: p.ID,
			StartDate: startDate,
		})
		if err != nil {
			return err
		}

		assignment = created
		return nil
	})
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	return toAssignmentResponse(assignment), nil
}

// EndAssignment implements project.Service.
func (s *ProjectServiceImpl) EndAssignment(ctx context.Context, workerID, projectID string) (project.AssignmentResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(workerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker id is required",
		})
	}
	if validator.IsEmpty(projectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project id is required",
		})
	}
	if len(errs) > 0 {
		return project.AssignmentResponse{}, errs
	}

	open, err := s.assignmentRepo.GetOpen(ctx, workerID, projectID)
	if err != nil {
		return project.AssignmentResponse{}, err
	}
	if open == nil {
		return project.AssignmentResponse{}, project.ErrAssignmentNotFound
	}

	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.assignmentRepo.End(ctx, workerID, projectID, endDate); err != nil {
		return project.AssignmentResponse{}, err
	}

	open.EndDate = &endDate
	return toAssignmentResponse(*open), nil
}

// ListProjectWorkers implements project.Service.
func (s *ProjectServiceImpl) ListProjectWorkers(ctx context.Context, projectID string, openOnly bool) (project.ListAssignmentsResponse, error) {
	if validator.IsEmpty(projectID) {
		return project.ListAssignmentsResponse{}, validator.ValidationErrors{{
			Field:   "project_id",
			Message: "project id is required",
		}}
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return project.ListAssignmentsResponse{}, err
	}

	assignments, err := s.assignmentRepo.ListByProject(ctx, projectID, openOnly)
	if err != nil {
		return project.ListAssignmentsResponse{}, fmt.Errorf("failed to list project workers: %w", err)
	}

	responses := make([]project.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}

	return project.ListAssignmentsResponse{Assignments: responses}, nil
}

// ListWorkerAssignments implements project.Service.
func (s *ProjectServiceImpl) ListWorkerAssignments(ctx context.Context, workerID string) (project.ListAssignmentsResponse, error) {
	if validator.IsEmpty(workerID) {
		return project.ListAssignmentsResponse{}, validator.ValidationErrors{{
			Field:   "worker_id",
			Message: "worker id is required",
		}}
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return project.ListAssignmentsResponse{}, err
	}

	assignments, err := s.assignmentRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return project.ListAssignmentsResponse{}, fmt.Errorf("failed to list worker assignments: %w", err)
	}

	responses := make([]project.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}

	return project.ListAssignmentsResponse{Assignments: responses}, nil
}

func toProjectResponse(p project.Project) project.ProjectResponse {
	resp := project.ProjectResponse{
		ID:         p.ID,
		Code:       p.Code,
		ClientName: p.ClientName,
		Location:   p.Location,
		StartDate:  p.StartDate.Format("2006-01-02"),
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
	if p.EndDate != nil {
		resp.EndDate = ptr(p.EndDate.Format("2006-01-02"))
	}
	return resp
}

func toAssignmentResponse(a project.WorkerAssignment) project.AssignmentResponse {
	resp := project.AssignmentResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		WorkerName:  a.WorkerName,
		WorkerType:  a.WorkerType,
		ProjectID:   a.ProjectID,
		ProjectCode: a.ProjectCode,
		StartDate:   a.StartDate.Format("2006-01-02"),
	}
	if a.EndDate != nil {
		resp.EndDate = ptr(a.EndDate.Format("2006-01-02"))
	}
	return resp
}

func ptr[T any](v T) *T {
	return &v
}
