package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"task-manager/backend/models"
)

func TestTeamRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	ns := "task_manager." + TeamsCollection
	id := primitive.NewObjectID()

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ana"},
			{Key: "email", Value: "ana@example.com"},
			{Key: "designation", Value: "Engineer"},
		}))

		team, err := repo.FindByEmail(context.Background(), "ana@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, id, team.ID)
		assert.Equal(mt, "Engineer", team.Designation)
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find page", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Ana"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Bo"}},
		))

		teams, err := repo.Find(context.Background(), bson.M{}, 10, 10)
		require.NoError(mt, err)
		require.Len(mt, teams, 2)
		assert.Equal(mt, "Bo", teams[1].Name)
	})

	mt.Run("find empty returns empty slice", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		teams, err := repo.Find(context.Background(), bson.M{}, 0, 10)
		require.NoError(mt, err)
		assert.NotNil(mt, teams)
		assert.Empty(mt, teams)
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: 1},
			{Key: "n", Value: int32(23)},
		}))

		n, err := repo.Count(context.Background(), bson.M{})
		require.NoError(mt, err)
		assert.Equal(mt, int64(23), n)
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		team := &models.Team{Name: "Ana", Email: "ana@example.com", Designation: "Engineer"}
		require.NoError(mt, repo.Create(context.Background(), team))
		assert.False(mt, team.ID.IsZero())
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: task_manager.teams index: email_1",
		}))

		err := repo.Create(context.Background(), &models.Team{Email: "ana@example.com"})
		assert.ErrorIs(mt, err, ErrAlreadyExists)
	})

	mt.Run("update missing document", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.Update(context.Background(), &models.Team{ID: id})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, repo.Delete(context.Background(), id))
	})

	mt.Run("delete missing document", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, repo.Delete(context.Background(), id), ErrNotFound)
	})

	mt.Run("find by ids skips query for empty input", func(mt *mtest.T) {
		repo := NewTeamRepository(mt.DB)

		teams, err := repo.FindByIDs(context.Background(), nil)
		require.NoError(mt, err)
		assert.Empty(mt, teams)
	})
}
