package machinery

import (
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// MACHINERY USAGE DTOs
// ========================================

type CreateUsageRequest struct {
	ProjectID  string          `json:"-"`
	Type       string          `json:"type"`
	Subtype    string          `json:"subtype,omitempty"`
	HoursUsed  decimal.Decimal `json:"hours_used"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Date       string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateUsageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project id is required",
		})
	}

	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be a valid machinery type",
		})
	} else if !IsValidSubtype(Type(r.Type), r.Subtype) {
		errs = append(errs, validator.ValidationError{
			Field:   "subtype",
			Message: "subtype is not valid for this machinery type",
		})
	}

	if !r.HoursUsed.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_used",
			Message: "hours_used must be greater than zero",
		})
	}

	if !r.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be greater than zero",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UsageResponse struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	Type       Type            `json:"type"`
	Subtype    *string         `json:"subtype,omitempty"`
	HoursUsed  decimal.Decimal `json:"hours_used"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Date       string          `json:"date"`
	CreatedAt  string          `json:"created_at"`
}

type ListUsageResponse struct {
	Usages    []UsageResponse `json:"usages"`
	TotalCost decimal.Decimal `json:"total_cost"`
}
