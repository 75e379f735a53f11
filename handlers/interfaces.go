package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/models"
	"task-manager/backend/services"
)

type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, in services.LoginInput) (*services.AuthResult, error)
}

type TeamService interface {
	List(ctx context.Context, p services.Pagination) (*services.Page[models.Team], error)
	Create(ctx context.Context, in services.TeamInput) (*models.Team, error)
	Update(ctx context.Context, id primitive.ObjectID, in services.TeamUpdate) (*models.Team, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectService interface {
	List(ctx context.Context, p services.Pagination) (*services.Page[models.ProjectView], error)
	Create(ctx context.Context, in services.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, in services.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TaskService interface {
	List(ctx context.Context, f services.TaskFilter, p services.Pagination) (*services.Page[models.TaskView], error)
	Suggest(ctx context.Context, prefix string) ([]string, error)
	Create(ctx context.Context, in services.TaskInput) (*models.Task, error)
	Update(ctx context.Context, id primitive.ObjectID, in services.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
