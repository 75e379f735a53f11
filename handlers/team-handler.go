package handlers

import (
	"net/http"

	"task-manager/backend/services"
)

type TeamHandler struct {
	service TeamService
}

func NewTeamHandler(service TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

func (h *TeamHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.service.List(r.Context(), services.ParsePagination(q.Get("page"), q.Get("limit")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse("teams", page))
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	team, err := h.service.Create(r.Context(), services.TeamInput{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "team member")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req teamPatch
	if !decodeAndValidate(w, r, &req) {
		return
	}

	team, err := h.service.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "team member")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Team member removed")
}
