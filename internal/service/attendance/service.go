package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/attendance"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/newera-construction/siteledger-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.Repository
	workerRepo     worker.Repository
	advanceRepo    worker.AdvanceRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	workerRepo worker.Repository,
	advanceRepo worker.AdvanceRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		advanceRepo:    advanceRepo,
	}
}

// SubmitAttendance implements attendance.Service.
//
// Concurrency: there is no optimistic-concurrency token on attendance
// records. Two submissions racing on the same (worker, project, date) key
// resolve last-writer-wins, which matches the expected usage of one
// supervisor submitting once per day.
func (s *AttendanceServiceImpl) SubmitAttendance(ctx context.Context, req attendance.SubmitAttendanceRequest) (attendance.SubmitAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	// Absent entries store zero hours regardless of what the caller sent.
	req.Normalize()

	// Resolve every referenced worker up front, so an unknown worker is a
	// validation error naming the entry rather than a failed transaction.
	ids := make([]string, 0, len(req.Entries))
	for _, entry := range req.Entries {
		ids = append(ids, entry.WorkerID)
	}
	workers, err := s.workerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, fmt.Errorf("failed to resolve workers: %w", err)
	}

	var errs validator.ValidationErrors
	for i, entry := range req.Entries {
		if _, ok := workers[entry.WorkerID]; !ok {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("attendance[%d].worker_id", i),
				Message: "worker does not exist",
			})
		}
	}
	if len(errs) > 0 {
		return attendance.SubmitAttendanceResponse{}, errs
	}

	// One transaction for the whole batch: either every entry is upserted or
	// none are. A failed batch is safe to resubmit as-is.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, entry := range req.Entries {
			record := attendance.Record{
				WorkerID:    entry.WorkerID,
				ProjectID:   req.ProjectID,
				Date:        date,
				Present:     entry.Present,
				HoursWorked: entry.HoursWorked,
				Overtime:    entry.Overtime,
			}

			if _, err := s.attendanceRepo.Upsert(txCtx, record); err != nil {
				return fmt.Errorf("entry for worker %s on %s: %w", entry.WorkerID, req.Date, err)
			}
		}

		return nil
	})
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	return attendance.SubmitAttendanceResponse{
		Date:         req.Date,
		RecordsSaved: len(req.Entries),
	}, nil
}

// ListAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	// Daily income is derived, never stored; rates come from the workers.
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.WorkerID)
	}
	workers := map[string]worker.Worker{}
	if len(ids) > 0 {
		workers, err = s.workerRepo.GetByIDs(ctx, ids)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to resolve workers: %w", err)
		}
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		income := decimal.Zero
		if w, ok := workers[rec.WorkerID]; ok {
			income = attendance.DailyIncome(w.HourlyRate, rec.Present, rec.HoursWorked, rec.Overtime)
		}
		responses = append(responses, toRecordResponse(rec, income))
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}

	return attendance.ListAttendanceResponse{
		Records: responses,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// GetMonthlySummary implements attendance.Service.
func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, workerID string, month string) (attendance.MonthlySummaryResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(workerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker id is required",
		})
	}
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if len(errs) > 0 {
		return attendance.MonthlySummaryResponse{}, errs
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	monthEnd := monthStart.AddDate(0, 1, 0)

	records, err := s.attendanceRepo.ListForPeriod(ctx, workerID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to load attendance for month: %w", err)
	}

	advances, err := s.advanceRepo.ListByWorker(ctx, workerID, &monthStart, &monthEnd)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to load advances for month: %w", err)
	}

	summary := attendance.MonthlySummaryResponse{
		WorkerID:      w.ID,
		WorkerName:    w.Name,
		Month:         month,
		TotalHours:    decimal.Zero,
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		Earnings:      decimal.Zero,
		Advances:      decimal.Zero,
		NetEarnings:   decimal.Zero,
	}

	for _, rec := range records {
		if !rec.Present {
			continue
		}
		summary.DaysPresent++
		summary.RegularHours = summary.RegularHours.Add(rec.HoursWorked)
		summary.OvertimeHours = summary.OvertimeHours.Add(rec.Overtime)
		summary.TotalHours = summary.TotalHours.Add(rec.HoursWorked).Add(rec.Overtime)
		summary.Earnings = summary.Earnings.Add(
			attendance.DailyIncome(w.HourlyRate, rec.Present, rec.HoursWorked, rec.Overtime),
		)
	}

	for _, adv := range advances {
		summary.Advances = summary.Advances.Add(adv.Amount)
	}
	summary.NetEarnings = summary.Earnings.Sub(summary.Advances)

	return summary, nil
}

func toRecordResponse(rec attendance.Record, income decimal.Decimal) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:          rec.ID,
		WorkerID:    rec.WorkerID,
		WorkerName:  rec.WorkerName,
		WorkerType:  rec.WorkerType,
		ProjectID:   rec.ProjectID,
		Date:        rec.Date.Format("2006-01-02"),
		Present:     rec.Present,
		HoursWorked: rec.HoursWorked,
		Overtime:    rec.Overtime,
		DailyIncome: income,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rec.UpdatedAt.Format(time.RFC3339),
	}
}
