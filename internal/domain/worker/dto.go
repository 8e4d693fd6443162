package worker

import (
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !IsValidType(r.Type) {
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

	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is not a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID          string           `json:"-"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "worker id is required",
		})
	}

	if r.HourlyRate == nil && r.PhoneNumber == nil && r.IsActive == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one updatable field is required",
		})
	}

	if r.HourlyRate != nil && !r.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be greater than zero",
		})
	}

	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is not a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        Type            `json:"type"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

type WorkerFilter struct {
	Name       *string `json:"name,omitempty"`
	Type       *string `json:"type,omitempty"`
	ActiveOnly bool    `json:"active_only"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *WorkerFilter) Validate() error {
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

	if f.Type != nil && *f.Type != "" && !IsValidType(*f.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be a valid worker type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// ADVANCE PAYMENT DTOs
// ========================================

type CreateAdvanceRequest struct {
	WorkerID string          `json:"-"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // YYYY-MM-DD
	IsPaid   bool            `json:"is_paid"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker id is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdvanceResponse struct {
	ID        string          `json:"id"`
	WorkerID  string          `json:"worker_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	IsPaid    bool            `json:"is_paid"`
	CreatedAt string          `json:"created_at"`
}

type ListAdvancesResponse struct {
	Advances []AdvanceResponse `json:"advances"`
	Total    decimal.Decimal   `json:"total_amount"`
}
