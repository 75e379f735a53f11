package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"task-manager/backend/models"
)

const TeamsCollection = "teams"

type TeamRepository struct {
	collection[models.Team]
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{collection: newCollection[models.Team](db, TeamsCollection)}
}

func (r *TeamRepository) FindByEmail(ctx context.Context, email string) (*models.Team, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
	}
	return r.insert(ctx, team)
}

func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.replace(ctx, team.ID, team)
}
