package attendance

import (
	"fmt"

	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Entry is one worker's row in a muster-roll submission.
type Entry struct {
	WorkerID    string          `json:"worker_id"`
	Present     bool            `json:"present"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Overtime    decimal.Decimal `json:"overtime"`
}

type SubmitAttendanceRequest struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	ProjectID *string `json:"project_id,omitempty"`
	Entries   []Entry `json:"attendance"`
}

func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance",
			Message: "at least one attendance entry is required",
		})
	}

	for i, entry := range r.Entries {
		prefix := fmt.Sprintf("attendance[%d]", i)

		if validator.IsEmpty(entry.WorkerID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".worker_id",
				Message: "worker_id is required",
			})
		}

		if !validator.IsWithinDay(entry.HoursWorked) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".hours_worked",
				Message: "hours_worked must be between 0 and 24",
			})
		}

		if !validator.IsWithinDay(entry.Overtime) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".overtime",
				Message: "overtime must be between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize enforces the absence invariant on every entry: a worker marked
// absent stores zero hours no matter what the caller sent.
func (r *SubmitAttendanceRequest) Normalize() {
	for i := range r.Entries {
		if !r.Entries[i].Present {
			r.Entries[i].HoursWorked = decimal.Zero
			r.Entries[i].Overtime = decimal.Zero
		}
	}
}

type SubmitAttendanceResponse struct {
	Date         string `json:"date"`
	RecordsSaved int    `json:"records_saved"`
}

type RecordResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	WorkerName  *string         `json:"worker_name,omitempty"`
	WorkerType  *string         `json:"worker_type,omitempty"`
	ProjectID   *string         `json:"project_id,omitempty"`
	Date        string          `json:"date"`
	Present     bool            `json:"present"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Overtime    decimal.Decimal `json:"overtime"`
	DailyIncome decimal.Decimal `json:"daily_income"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

type ListFilter struct {
	// Search & Filter
	WorkerID  *string `json:"worker_id,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Present   *bool   `json:"present,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortOrder string `json:"sort_order"` // asc, desc (by date; desc default)
}

func (f *ListFilter) Validate() error {
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

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlySummaryResponse aggregates one worker's records for a calendar month.
type MonthlySummaryResponse struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	Month         string          `json:"month"` // YYYY-MM
	DaysPresent   int             `json:"days_present"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Earnings      decimal.Decimal `json:"earnings"`
	Advances      decimal.Decimal `json:"advances"`
	NetEarnings   decimal.Decimal `json:"net_earnings"`
}
