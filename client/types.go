package client

import "task-manager/backend/models"

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TeamPage struct {
	Teams []models.Team `json:"teams"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

type ProjectPage struct {
	Projects []models.ProjectView `json:"projects"`
	Page     int                  `json:"page"`
	Pages    int                  `json:"pages"`
}

type TaskPage struct {
	Tasks []models.TaskView `json:"tasks"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
}

type TeamRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

// Patch types send only the non-nil fields.
type TeamPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

type ProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	TeamMembers []string `json:"teamMembers,omitempty"`
}

type ProjectPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	TeamMembers *[]string `json:"teamMembers,omitempty"`
}

// TaskRequest carries the deadline as RFC 3339 or YYYY-MM-DD.
type TaskRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Deadline        string   `json:"deadline"`
	Project         string   `json:"project"`
	AssignedMembers []string `json:"assignedMembers,omitempty"`
	Status          string   `json:"status,omitempty"`
}

type TaskPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Deadline        *string   `json:"deadline,omitempty"`
	Project         *string   `json:"project,omitempty"`
	AssignedMembers *[]string `json:"assignedMembers,omitempty"`
	Status          *string   `json:"status,omitempty"`
}

type TaskFilter struct {
	Project        string
	Status         string
	AssignedMember string
	Search         string
	StartDate      string
	EndDate        string
}

type messageResponse struct {
	Message string `json:"message"`
}

type (
	TeamMember = models.Team
	Project    = models.Project
	Task       = models.Task
)
