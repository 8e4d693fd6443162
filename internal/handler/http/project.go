package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignWorker(w http.ResponseWriter, r *http.Request)
	EndAssignment(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	ListWorkerAssignments(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", result)
}

// Get implements ProjectHandler.
func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ProjectHandler.
func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.projectService.UpdateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", result)
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ProjectFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	if clientName := r.URL.Query().Get("client_name"); clientName != "" {
		filter.ClientName = &clientName
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

	results, err := h.projectService.ListProjects(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// AssignWorker implements ProjectHandler.
func (h *projectHandlerImpl) AssignWorker(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	var req project.AssignWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = projectID

	result, err := h.projectService.AssignWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker assigned to project", result)
}

// EndAssignment implements ProjectHandler.
func (h *projectHandlerImpl) EndAssignment(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	workerID := chi.URLParam(r, "workerID")

	result, err := h.projectService.EndAssignment(r.Context(), workerID, projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment ended", result)
}

// ListWorkers implements ProjectHandler.
func (h *projectHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	openOnly := false
	if o := r.URL.Query().Get("open_only"); o != "" {
		if parsed, err := strconv.ParseBool(o); err == nil {
			openOnly = parsed
		}
	}

	results, err := h.projectService.ListProjectWorkers(r.Context(), projectID, openOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListWorkerAssignments implements ProjectHandler.
func (h *projectHandlerImpl) ListWorkerAssignments(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	results, err := h.projectService.ListWorkerAssignments(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
