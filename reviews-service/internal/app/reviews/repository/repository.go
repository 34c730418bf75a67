package repository

import (
	"context"

	"chillgamer/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRepository определяет методы для работы с коллекцией отзывов в MongoDB.
// Каждый метод - ровно один запрос к базе.
type ReviewRepository interface {
	Find(ctx context.Context, query ReviewQuery) ([]entity.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, review *entity.Review) error
	InsertFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) error
	SetFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) (*SetResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// DocumentRepository - коллекция документов без схемы (wishlist, users)
type DocumentRepository interface {
	Find(ctx context.Context, filter bson.M) ([]entity.Document, error)
	Insert(ctx context.Context, doc entity.Document) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type SetResult struct {
	MatchedCount  int64
	ModifiedCount int64
}
