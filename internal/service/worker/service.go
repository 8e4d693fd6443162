package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WorkerServiceImpl struct {
	workerRepo  worker.Repository
	advanceRepo worker.AdvanceRepository
}

func NewWorkerService(workerRepo worker.Repository, advanceRepo worker.AdvanceRepository) worker.Service {
	return &WorkerServiceImpl{
		workerRepo:  workerRepo,
		advanceRepo: advanceRepo,
	}
}

// CreateWorker implements worker.Service.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w := worker.Worker{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Type:        worker.Type(req.Type),
		HourlyRate:  req.HourlyRate,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}

	created, err := s.workerRepo.Create(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return toWorkerResponse(created), nil
}

// GetWorker implements worker.Service.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	if validator.IsEmpty(id) {
		return worker.WorkerResponse{}, validator.ValidationErrors{{
			Field:   "id",
			Message: "worker id is required",
		}}
	}

	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(w), nil
}

// UpdateWorker implements worker.Service.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.HourlyRate != nil {
		w.HourlyRate = *req.HourlyRate
	}
	if req.PhoneNumber != nil {
		w.PhoneNumber = req.PhoneNumber
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}

	if err := s.workerRepo.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to update worker: %w", err)
	}

	updated, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(updated), nil
}

// ListWorkers implements worker.Service.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) (worker.ListWorkersResponse, error) {
	if err := filter.Validate(); err != nil {
		return worker.ListWorkersResponse{}, err
	}

	workers, total, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return worker.ListWorkersResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toWorkerResponse(w))
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}

	return worker.ListWorkersResponse{
		Workers: responses,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// CreateAdvance implements worker.Service.
func (s *WorkerServiceImpl) CreateAdvance(ctx context.Context, req worker.CreateAdvanceRequest) (worker.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.AdvanceResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return worker.AdvanceResponse{}, err
	}
	if !w.IsActive {
		return worker.AdvanceResponse{}, worker.ErrWorkerInactive
	}

	date, _ := validator.IsValidDate(req.Date)

	advance := worker.AdvancePayment{
		ID:       uuid.NewString(),
		WorkerID: req.WorkerID,
		Amount:   req.Amount,
		Date:     date,
		IsPaid:   req.IsPaid,
	}

	created, err := s.advanceRepo.Create(ctx, advance)
	if err != nil {
		return worker.AdvanceResponse{}, fmt.Errorf("failed to create advance payment: %w", err)
	}

	return toAdvanceResponse(created), nil
}

// ListAdvances implements worker.Service.
func (s *WorkerServiceImpl) ListAdvances(ctx context.Context, workerID string, from, to *string) (worker.ListAdvancesResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(workerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker id is required",
		})
	}

	var fromTime, toTime *time.Time
	if from != nil && *from != "" {
		t, ok := validator.IsValidDate(*from)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		} else {
			fromTime = &t
		}
	}
	if to != nil && *to != "" {
		t, ok := validator.IsValidDate(*to)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		} else {
			toTime = &t
		}
	}
	if len(errs) > 0 {
		return worker.ListAdvancesResponse{}, errs
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return worker.ListAdvancesResponse{}, err
	}

	advances, err := s.advanceRepo.ListByWorker(ctx, workerID, fromTime, toTime)
	if err != nil {
		return worker.ListAdvancesResponse{}, fmt.Errorf("failed to list advance payments: %w", err)
	}

	responses := make([]worker.AdvanceResponse, 0, len(advances))
	total := decimal.Zero
	for _, adv := range advances {
		responses = append(responses, toAdvanceResponse(adv))
		total = total.Add(adv.Amount)
	}

	return worker.ListAdvancesResponse{
		Advances: responses,
		Total:    total,
	}, nil
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:          w.ID,
		Name:        w.Name,
		Type:        w.Type,
		HourlyRate:  w.HourlyRate,
		PhoneNumber: w.PhoneNumber,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}

func toAdvanceResponse(a worker.AdvancePayment) worker.AdvanceResponse {
	return worker.AdvanceResponse{
		ID:        a.ID,
		WorkerID:  a.WorkerID,
		Amount:    a.Amount,
		Date:      a.Date.Format("2006-01-02"),
		IsPaid:    a.IsPaid,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
