package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// Create implements WorkerHandler.
func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", result)
}

// Get implements WorkerHandler.
func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workerService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements WorkerHandler.
func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.workerService.UpdateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", result)
}

// List implements WorkerHandler.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.WorkerFilter{}

	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	if workerType := r.URL.Query().Get("type"); workerType != "" {
		filter.Type = &workerType
	}

	if activeOnly := r.URL.Query().Get("active_only"); activeOnly != "" {
		if active, err := strconv.ParseBool(activeOnly); err == nil {
			filter.ActiveOnly = active
		}
	}

	// Pagination
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	filter.Page = page

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	filter.Limit = limit

	results, err := h.workerService.ListWorkers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateAdvance implements WorkerHandler.
func (h *workerHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	var req worker.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = workerID

	result, err := h.workerService.CreateAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance payment recorded", result)
}

// ListAdvances implements WorkerHandler.
func (h *workerHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	var from, to *string
	if f := r.URL.Query().Get("from"); f != "" {
		from = &f
	}
	if t := r.URL.Query().Get("to"); t != "" {
		to = &t
	}

	results, err := h.workerService.ListAdvances(r.Context(), workerID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
