package repository

import (
	"context"
	"testing"

	"chillgamer/reviews-service/internal/app/reviews/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDocumentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by owner", func(mt *mtest.T) {
		repo := NewDocumentRepository(mt.DB, mt.Coll.Name())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Portal 2"},
			{Key: "email", Value: "a@x.com"},
		}))

		docs, err := repo.Find(context.Background(), OwnerFilter("email", "a@x.com"))

		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, "Portal 2", docs[0]["title"])
		assert.Equal(mt, id, docs[0]["_id"])

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "a@x.com", started.Command.Lookup("filter", "email").StringValue())
	})

	mt.Run("find all returns empty slice", func(mt *mtest.T) {
		repo := NewDocumentRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		docs, err := repo.Find(context.Background(), nil)

		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})

	mt.Run("insert replaces client id", func(mt *mtest.T) {
		repo := NewDocumentRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		doc := entity.Document{"_id": "client-chosen", "title": "Outer Wilds", "email": "a@x.com"}
		id, err := repo.Insert(context.Background(), doc)

		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
		assert.Equal(mt, "client-chosen", doc["_id"])

		inserted := mt.GetStartedEvent().Command.Lookup("documents", "0").Document()
		assert.Equal(mt, id, inserted.Lookup("_id").ObjectID())
		assert.Equal(mt, "Outer Wilds", inserted.Lookup("title").StringValue())
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewDocumentRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), deleted)
	})
}
