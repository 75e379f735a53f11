package handlers

import (
	"net/http"

	"task-manager/backend/services"
)

type ProjectHandler struct {
	service ProjectService
}

func NewProjectHandler(service ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.service.List(r.Context(), services.ParsePagination(q.Get("page"), q.Get("limit")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse("projects", page))
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	in, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req projectPatch
	if !decodeAndValidate(w, r, &req) {
		return
	}
	update, err := req.toUpdate()
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project removed")
}
