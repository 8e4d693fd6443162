package project

import (
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PROJECT DTOs
// ========================================

type CreateProjectRequest struct {
	Code       string  `json:"code"`
	ClientName string  `json:"client_name"`
	Location   string  `json:"location"`
	StartDate  string  `json:"start_date"`         // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_name",
			Message: "client_name is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil && *r.EndDate != "" {
		endDate, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startOK && endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	ID      string  `json:"-"`
	Status  *string `json:"status,omitempty"`
	EndDate *string `json:"end_date,omitempty"` // YYYY-MM-DD
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "project id is required",
		})
	}

	if r.Status == nil && r.EndDate == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one updatable field is required",
		})
	}

	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or COMPLETED",
		})
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	ClientName string  `json:"client_name"`
	Location   string  `json:"location"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     Status  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type ProjectFilter struct {
	Status     *string `json:"status,omitempty"`
	ClientName *string `json:"client_name,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ProjectFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}

	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if f.Status != nil && *f.Status != "" && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or COMPLETED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// WORKER ASSIGNMENT DTOs
// ========================================

// AssignWorkerRequest attaches a worker to a project. Either an existing
// worker_id is given, or a new worker is created inline (name/type/rate),
// mirroring the add-worker form's two modes.
type AssignWorkerRequest struct {
	ProjectID string `json:"-"`
	WorkerID  string `json:"worker_id,omitempty"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, defaults to today

	// Inline new-worker fields, used only when worker_id is empty.
	Name        string          `json:"name,omitempty"`
	Type        string          `json:"type,omitempty"`
	HourlyRate  decimal.Decimal `json:"hourly_rate,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
}

func (r *AssignWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project id is required",
		})
	}

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if validator.IsEmpty(r.WorkerID) {
		// New-worker mode: name, type and rate become required.
		if validator.IsEmpty(r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name is required when worker_id is not given",
			})
		}
		if !worker.IsValidType(r.Type) {
			errs = append(errs, validator.ValidationError{
				Field:   "type",
				Message: "type must be a valid worker type",
			})
		}
		if !r.HourlyRate.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be greater than zero",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	WorkerName  *string `json:"worker_name,omitempty"`
	WorkerType  *string `json:"worker_type,omitempty"`
	ProjectID   string  `json:"project_id"`
	ProjectCode *string `json:"project_code,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}
