package repositories

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection holds the CRUD plumbing shared by every repository.
type collection[T any] struct {
	coll *mongo.Collection
	name string
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{coll: db.Collection(name), name: name}
}

// Find returns documents matching filter ordered by _id. A limit of 0 means no limit.
func (c collection[T]) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", c.name)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode %s", c.name)
	}
	return docs, nil
}

func (c collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "count %s", c.name)
	}
	return n, nil
}

func (c collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

// FindByIDs loads every document whose id is in ids. Order follows the store.
func (c collection[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, 0, 0)
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrapf(translate(err), "insert into %s", c.name)
	}
	return nil
}

func (c collection[T]) replace(ctx context.Context, id primitive.ObjectID, doc *T) error {
	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return errors.Wrapf(translate(err), "update %s", c.name)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c collection[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "delete from %s", c.name)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
