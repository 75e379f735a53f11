package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/models"
)

type TeamRepository interface {
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Team, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Team, error)
	FindByEmail(ctx context.Context, email string) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectRepository interface {
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Project, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Project, error)
	FindByName(ctx context.Context, name string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TaskRepository interface {
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Task, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	FindByTitle(ctx context.Context, title string) (*models.Task, error)
	FindTitles(ctx context.Context, filter bson.M, limit int64) ([]string, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}
