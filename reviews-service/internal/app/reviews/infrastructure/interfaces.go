package infrastructure

import (
	"context"
	"errors"

	"chillgamer/reviews-service/internal/app/reviews/entity"
)

// MessagePublisher интерфейс для отправки сообщений в очередь (Kafka)
// Используется для dependency injection и упрощения тестирования
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// ErrTopReviewsChanged - между чтением версии и записью в кеш топ был сброшен
var ErrTopReviewsChanged = errors.New("top reviews changed since version was read")

// TopReviewsCache - кеш ответа /topreviews.
// found=false означает промах; пустой список - валидное закешированное значение.
//
// Каждый InvalidateTopReviews увеличивает версию. Заполнение кеша передает
// версию, прочитанную до запроса в MongoDB, и не выполняется, если она устарела.
type TopReviewsCache interface {
	GetTopReviews(ctx context.Context) (reviews []entity.Review, found bool, err error)
	TopReviewsVersion(ctx context.Context) (int64, error)
	SetTopReviews(ctx context.Context, version int64, reviews []entity.Review) error
	InvalidateTopReviews(ctx context.Context) error
	Close() error
}
