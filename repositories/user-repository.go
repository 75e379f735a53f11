package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"task-manager/backend/models"
)

const UsersCollection = "users"

type UserRepository struct {
	collection[models.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: newCollection[models.User](db, UsersCollection)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	return r.insert(ctx, user)
}
