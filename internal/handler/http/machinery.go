package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/machinery"
	"github.com/newera-construction/siteledger-backend-go/internal/handler/http/response"
)

type MachineryHandler interface {
	CreateUsage(w http.ResponseWriter, r *http.Request)
	ListUsage(w http.ResponseWriter, r *http.Request)
}

type machineryHandlerImpl struct {
	machineryService machinery.Service
}

func NewMachineryHandler(machineryService machinery.Service) MachineryHandler {
	return &machineryHandlerImpl{
		machineryService: machineryService,
	}
}

// CreateUsage implements MachineryHandler.
func (h *machineryHandlerImpl) CreateUsage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	var req machinery.CreateUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = projectID

	result, err := h.machineryService.CreateUsage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Machinery usage recorded", result)
}

// ListUsage implements MachineryHandler.
func (h *machineryHandlerImpl) ListUsage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	results, err := h.machineryService.ListProjectUsage(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
