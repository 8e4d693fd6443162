package material

import (
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// MATERIAL USAGE DTOs
// ========================================

type CreateUsageRequest struct {
	ProjectID string          `json:"-"`
	Type      string          `json:"type"`
	Volume    decimal.Decimal `json:"volume"`
	Cost      decimal.Decimal `json:"cost"`
	Date      string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
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
			Message: "type must be a valid material type",
		})
	}

	if !r.Volume.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "volume",
			Message: "volume must be greater than zero",
		})
	}

	if r.Cost.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "cost",
			Message: "cost must not be negative",
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
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Type      Type            `json:"type"`
	Unit      string          `json:"unit"`
	Volume    decimal.Decimal `json:"volume"`
	Cost      decimal.Decimal `json:"cost"`
	Date      string          `json:"date"`
	CreatedAt string          `json:"created_at"`
}

type ListUsageResponse struct {
	Usages    []UsageResponse `json:"usages"`
	TotalCost decimal.Decimal `json:"total_cost"`
}
