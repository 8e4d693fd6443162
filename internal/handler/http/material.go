package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/material"
	"github.com/newera-construction/siteledger-backend-go/internal/handler/http/response"
)

type MaterialHandler interface {
	CreateUsage(w http.ResponseWriter, r *http.Request)
	ListUsage(w http.ResponseWriter, r *http.Request)
}

type materialHandlerImpl struct {
	materialService material.Service
}

func NewMaterialHandler(materialService material.Service) MaterialHandler {
	return &materialHandlerImpl{
		materialService: materialService,
	}
}

// CreateUsage implements MaterialHandler.
func (h *materialHandlerImpl) CreateUsage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	var req material.CreateUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = projectID

	result, err := h.materialService.CreateUsage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Material usage recorded", result)
}

// ListUsage implements MaterialHandler.
func (h *materialHandlerImpl) ListUsage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	results, err := h.materialService.ListProjectUsage(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
