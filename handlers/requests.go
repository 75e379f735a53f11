package handlers

import (
	"time"

	"github.com/aarondl/opt/omit"

	"task-manager/backend/models"
	"task-manager/backend/services"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type teamRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Designation string `json:"designation" validate:"required,min=2"`
}

// Patch requests use pointers so an absent field stays untouched while a
// supplied one is validated like on create.
type teamPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=2"`
	Email       *string `json:"email" validate:"omitnil,email"`
	Designation *string `json:"designation" validate:"omitnil,min=2"`
}

func (p teamPatch) toUpdate() services.TeamUpdate {
	return services.TeamUpdate{
		Name:        omit.FromPtr(p.Name),
		Email:       omit.FromPtr(p.Email),
		Designation: omit.FromPtr(p.Designation),
	}
}

type projectRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	TeamMembers []string `json:"teamMembers"`
}

func (req projectRequest) toInput() (services.ProjectInput, error) {
	members, err := services.ParseIDs(req.TeamMembers, "teamMember")
	if err != nil {
		return services.ProjectInput{}, err
	}
	return services.ProjectInput{Name: req.Name, Description: req.Description, TeamMembers: members}, nil
}

type projectPatch struct {
	Name        *string   `json:"name" validate:"omitnil,min=2"`
	Description *string   `json:"description"`
	TeamMembers *[]string `json:"teamMembers"`
}

func (p projectPatch) toUpdate() (services.ProjectUpdate, error) {
	update := services.ProjectUpdate{
		Name:        omit.FromPtr(p.Name),
		Description: omit.FromPtr(p.Description),
	}
	if p.TeamMembers != nil {
		members, err := services.ParseIDs(*p.TeamMembers, "teamMember")
		if err != nil {
			return update, err
		}
		update.TeamMembers = omit.From(members)
	}
	return update, nil
}

type taskRequest struct {
	Title           string   `json:"title" validate:"required,min=2"`
	Description     string   `json:"description"`
	Deadline        string   `json:"deadline" validate:"required"`
	Project         string   `json:"project" validate:"required"`
	AssignedMembers []string `json:"assignedMembers"`
	Status          string   `json:"status" validate:"omitempty,oneof=to-do in-progress done cancelled"`
}

func (req taskRequest) toInput() (services.TaskInput, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return services.TaskInput{}, err
	}
	project, err := services.ParseID(req.Project, "project")
	if err != nil {
		return services.TaskInput{}, err
	}
	members, err := services.ParseIDs(req.AssignedMembers, "assignedMember")
	if err != nil {
		return services.TaskInput{}, err
	}

	return services.TaskInput{
		Title:           req.Title,
		Description:     req.Description,
		Deadline:        deadline,
		Project:         project,
		AssignedMembers: members,
		Status:          models.TaskStatus(req.Status),
	}, nil
}

type taskPatch struct {
	Title           *string   `json:"title" validate:"omitnil,min=2"`
	Description     *string   `json:"description"`
	Deadline        *string   `json:"deadline"`
	Project         *string   `json:"project"`
	AssignedMembers *[]string `json:"assignedMembers"`
	Status          *string   `json:"status" validate:"omitnil,oneof=to-do in-progress done cancelled"`
}

func (p taskPatch) toUpdate() (services.TaskUpdate, error) {
	update := services.TaskUpdate{
		Title:       omit.FromPtr(p.Title),
		Description: omit.FromPtr(p.Description),
	}
	if p.Deadline != nil {
		deadline, err := parseDeadline(*p.Deadline)
		if err != nil {
			return update, err
		}
		update.Deadline = omit.From(deadline)
	}
	if p.Project != nil {
		project, err := services.ParseID(*p.Project, "project")
		if err != nil {
			return update, err
		}
		update.Project = omit.From(project)
	}
	if p.AssignedMembers != nil {
		members, err := services.ParseIDs(*p.AssignedMembers, "assignedMember")
		if err != nil {
			return update, err
		}
		update.AssignedMembers = omit.From(members)
	}
	if p.Status != nil {
		update.Status = omit.From(models.TaskStatus(*p.Status))
	}
	return update, nil
}

func parseDeadline(raw string) (time.Time, error) {
	deadline, err := services.ParseDate(raw)
	if err != nil {
		return time.Time{}, services.NewError(services.ErrorCodeValidation, "Invalid deadline")
	}
	return deadline, nil
}
