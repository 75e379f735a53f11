package repositories

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-manager/backend/models"
)

const TasksCollection = "tasks"

type TaskRepository struct {
	collection[models.Task]
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: newCollection[models.Task](db, TasksCollection)}
}

func (r *TaskRepository) FindByTitle(ctx context.Context, title string) (*models.Task, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

// FindTitles returns only the titles of tasks matching filter.
func (r *TaskRepository) FindTitles(ctx context.Context, filter bson.M, limit int64) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"title": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find task titles")
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Title string `bson:"title"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode task titles")
	}

	titles := make([]string, 0, len(docs))
	for _, d := range docs {
		titles = append(titles, d.Title)
	}
	return titles, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	if task.AssignedMembers == nil {
		task.AssignedMembers = []primitive.ObjectID{}
	}
	return r.insert(ctx, task)
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.replace(ctx, task.ID, task)
}
