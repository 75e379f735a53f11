package repositories

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func indexSpecs() []indexSpec {
	unique := func(coll, field string) indexSpec {
		return indexSpec{
			collection: coll,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		}
	}
	plain := func(coll, field string) indexSpec {
		return indexSpec{
			collection: coll,
			model:      mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}},
		}
	}

	return []indexSpec{
		unique(TeamsCollection, "email"),
		unique(ProjectsCollection, "name"),
		unique(TasksCollection, "title"),
		unique(UsersCollection, "email"),
		plain(TasksCollection, "project"),
		plain(TasksCollection, "status"),
		plain(TasksCollection, "deadline"),
	}
}

// EnsureIndexes creates the unique indexes that back the uniqueness checks done
// by the services, plus the lookup indexes used by task filtering.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range indexSpecs() {
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			return errors.Wrapf(err, "create index on %s", spec.collection)
		}
	}
	return nil
}
