package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"task-manager/backend/middleware"
)

type Handlers struct {
	Auth     *AuthHandler
	Teams    *TeamHandler
	Projects *ProjectHandler
	Tasks    *TaskHandler
	Health   *HealthHandler
}

// NewRouter mounts the public auth and health routes and the bearer
// protected resource routes under /api.
func NewRouter(h Handlers, gate *middleware.AuthGate, corsOrigin string) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.NotFoundHandler = http.HandlerFunc(notFound)
	auth.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	protected := api.NewRoute().Subrouter()
	protected.Use(gate.Require)
	// mux skips subrouter middleware for unmatched requests, so the
	// fallbacks are gated explicitly.
	protected.NotFoundHandler = gate.Require(http.HandlerFunc(notFound))
	protected.MethodNotAllowedHandler = gate.Require(http.HandlerFunc(methodNotAllowed))

	protected.HandleFunc("/teams", h.Teams.GetTeams).Methods(http.MethodGet)
	protected.HandleFunc("/teams", h.Teams.CreateTeam).Methods(http.MethodPost)
	protected.HandleFunc("/teams/{id}", h.Teams.UpdateTeam).Methods(http.MethodPut)
	protected.HandleFunc("/teams/{id}", h.Teams.DeleteTeam).Methods(http.MethodDelete)

	protected.HandleFunc("/projects", h.Projects.GetProjects).Methods(http.MethodGet)
	protected.HandleFunc("/projects", h.Projects.CreateProject).Methods(http.MethodPost)
	protected.HandleFunc("/projects/{id}", h.Projects.UpdateProject).Methods(http.MethodPut)
	protected.HandleFunc("/projects/{id}", h.Projects.DeleteProject).Methods(http.MethodDelete)

	protected.HandleFunc("/tasks", h.Tasks.GetTasks).Methods(http.MethodGet)
	protected.HandleFunc("/tasks", h.Tasks.CreateTask).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/suggestions", h.Tasks.GetSuggestions).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{id}", h.Tasks.UpdateTask).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{id}", h.Tasks.DeleteTask).Methods(http.MethodDelete)

	return middleware.RequestLogger(middleware.CORS(corsOrigin)(r))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Route not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
}
