package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"task-manager/backend/models"
)

const ProjectsCollection = "projects"

type ProjectRepository struct {
	collection[models.Project]
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{collection: newCollection[models.Project](db, ProjectsCollection)}
}

func (r *ProjectRepository) FindByName(ctx context.Context, name string) (*models.Project, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	if project.TeamMembers == nil {
		project.TeamMembers = []primitive.ObjectID{}
	}
	return r.insert(ctx, project)
}

func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.replace(ctx, project.ID, project)
}
