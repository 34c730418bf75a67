package repository

import (
	"context"

	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type documentRepository struct {
	collection *mongo.Collection
}

// NewDocumentRepository - репозиторий для коллекций без схемы (wishlist, users)
func NewDocumentRepository(db *mongo.Database, collection string) DocumentRepository {
	return &documentRepository{
		collection: db.Collection(collection),
	}
}

// EnsureOwnerIndex создает индекс по полю владельца для /mywatchlist
func EnsureOwnerIndex(ctx context.Context, db *mongo.Database, collection, ownerField string) error {
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: ownerField, Value: 1}},
		Options: options.Index().SetName(ownerField + "_idx"),
	})
	if err != nil {
		return wrapError("create owner index", err)
	}
	return nil
}

func (r *documentRepository) Find(ctx context.Context, filter bson.M) (docs []entity.Document, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpFind, r.collection.Name())
	defer func() { done(err) }()

	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, wrapError("find "+r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs = make([]entity.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrapError("decode "+r.collection.Name(), err)
	}

	return docs, nil
}

// Insert сохраняет документ как есть; присланный клиентом _id отбрасывается,
// идентификатор всегда назначает хранилище
func (r *documentRepository) Insert(ctx context.Context, doc entity.Document) (_ primitive.ObjectID, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpInsert, r.collection.Name())
	defer func() { done(err) }()

	stored := make(bson.M, len(doc)+1)
	for key, value := range doc {
		stored[key] = value
	}
	id := primitive.NewObjectID()
	stored["_id"] = id

	if _, err := r.collection.InsertOne(ctx, stored); err != nil {
		return primitive.NilObjectID, wrapError("insert into "+r.collection.Name(), err)
	}

	return id, nil
}

func (r *documentRepository) Delete(ctx context.Context, id primitive.ObjectID) (_ int64, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpDelete, r.collection.Name())
	defer func() { done(err) }()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, wrapError("delete from "+r.collection.Name(), err)
	}

	return result.DeletedCount, nil
}
