package mocks

import (
	"context"

	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Find(ctx context.Context, query repository.ReviewQuery) ([]entity.Review, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) InsertFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockReviewRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) (*repository.SetResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SetResult), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockDocumentRepository мок для DocumentRepository (wishlist, users)
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Find(ctx context.Context, filter bson.M) ([]entity.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockDocumentRepository) Insert(ctx context.Context, doc entity.Document) (primitive.ObjectID, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockTopReviewsCache мок для Redis кеша топа отзывов
type MockTopReviewsCache struct {
	mock.Mock
}

func (m *MockTopReviewsCache) GetTopReviews(ctx context.Context) ([]entity.Review, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entity.Review), args.Bool(1), args.Error(2)
}

func (m *MockTopReviewsCache) TopReviewsVersion(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTopReviewsCache) SetTopReviews(ctx context.Context, version int64, reviews []entity.Review) error {
	args := m.Called(ctx, version, reviews)
	return args.Error(0)
}

func (m *MockTopReviewsCache) InvalidateTopReviews(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTopReviewsCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
