package handlers

import (
	"net/http"

	"task-manager/backend/services"
)

type TaskHandler struct {
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// GetTasks lists tasks. Every filter is an optional query parameter.
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.TaskFilter{
		Project:        q.Get("project"),
		Status:         q.Get("status"),
		AssignedMember: q.Get("assignedMember"),
		Search:         q.Get("search"),
		StartDate:      q.Get("startDate"),
		EndDate:        q.Get("endDate"),
	}

	page, err := h.service.List(r.Context(), filter, services.ParsePagination(q.Get("page"), q.Get("limit")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse("tasks", page))
}

// GetSuggestions returns task titles starting with the search text.
func (h *TaskHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prefix := q.Get("search")
	if prefix == "" {
		prefix = q.Get("query")
	}

	titles, err := h.service.Suggest(r.Context(), prefix)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, titles)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	in, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "task")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req taskPatch
	if !decodeAndValidate(w, r, &req) {
		return
	}
	update, err := req.toUpdate()
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "task")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Task removed")
}
