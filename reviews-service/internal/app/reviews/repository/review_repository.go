package repository

import (
	"context"
	"errors"

	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const serviceName = "reviews-service"

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository создает репозиторий поверх коллекции отзывов
func NewReviewRepository(db *mongo.Database, collection string) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(collection),
	}
}

// EnsureReviewIndexes создает индексы под фильтры /reviewsforall, /myreviews и сортировки
func EnsureReviewIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	_, err := db.Collection(collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "genre", Value: 1}}, Options: options.Index().SetName("genre_idx")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_idx")},
		{Keys: bson.D{{Key: "rating", Value: 1}}, Options: options.Index().SetName("rating_idx")},
		{Keys: bson.D{{Key: "year", Value: 1}}, Options: options.Index().SetName("year_idx")},
	})
	if err != nil {
		return wrapError("create review indexes", err)
	}
	return nil
}

func (r *reviewRepository) Find(ctx context.Context, query ReviewQuery) (reviews []entity.Review, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpFind, r.collection.Name())
	defer func() { done(err) }()

	cursor, err := r.collection.Find(ctx, query.filter(), query.findOptions())
	if err != nil {
		return nil, wrapError("find reviews", err)
	}
	defer cursor.Close(ctx)

	reviews = make([]entity.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, wrapError("decode reviews", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (_ *entity.Review, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpFind, r.collection.Name())
	defer func() {
		if errors.Is(err, ErrReviewNotFound) {
			done(nil)
			return
		}
		done(err)
	}()

	var review entity.Review
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReviewNotFound
		}
		return nil, wrapError("get review", err)
	}

	return &review, nil
}

func (r *reviewRepository) Exists(ctx context.Context, id primitive.ObjectID) (_ bool, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpFind, r.collection.Name())
	defer func() { done(err) }()

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err = r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, wrapError("check review", err)
	}

	return true, nil
}

// Insert сохраняет отзыв как есть, ID назначает драйвер
func (r *reviewRepository) Insert(ctx context.Context, review *entity.Review) (err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpInsert, r.collection.Name())
	defer func() { done(err) }()

	review.ID = primitive.NilObjectID

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return wrapError("create review", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}

	return nil
}

// InsertFields - ветка "вставка" для замены отзыва по несуществующему ID
func (r *reviewRepository) InsertFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) (err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpInsert, r.collection.Name())
	defer func() { done(err) }()

	doc := append(bson.D{{Key: "_id", Value: id}}, fields.SetDocument()...)
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return wrapError("insert review", err)
	}

	return nil
}

// SetFields - ветка "обновление": $set только фиксированного набора полей
func (r *reviewRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) (_ *SetResult, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpUpdate, r.collection.Name())
	defer func() { done(err) }()

	update := bson.D{{Key: "$set", Value: fields.SetDocument()}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, wrapError("update review", err)
	}

	return &SetResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete возвращает количество удаленных документов (0 - не ошибка)
func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (_ int64, err error) {
	done := metrics.ObserveDb(serviceName, metrics.DbOpDelete, r.collection.Name())
	defer func() { done(err) }()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, wrapError("delete review", err)
	}

	return result.DeletedCount, nil
}
