package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chillgamer/pkg/logger"
	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/infrastructure"
	"chillgamer/reviews-service/internal/app/reviews/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const cacheInvalidateTimeout = 5 * time.Second

// ReviewService обрабатывает бизнес-логику отзывов.
// Кеш и Kafka необязательны: nil отключает соответствующую функцию.
type ReviewService struct {
	reviewRepo    repository.ReviewRepository
	cache         infrastructure.TopReviewsCache
	kafkaProducer infrastructure.MessagePublisher
}

// NewReviewService создает новый сервис отзывов с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	cache infrastructure.TopReviewsCache,
	kafkaProducer infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		cache:         cache,
		kafkaProducer: kafkaProducer,
	}
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.Find(ctx, repository.AllReviewsQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListTopReviews сначала смотрит в кеш, при промахе идет в MongoDB и кеширует результат
func (s *ReviewService) ListTopReviews(ctx context.Context) ([]entity.Review, error) {
	if s.cache != nil {
		reviews, found, err := s.cache.GetTopReviews(ctx)
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Msg("Top reviews cache read failed")
		} else if found {
			return reviews, nil
		}
	}

	return s.loadTopReviews(ctx)
}

// RefreshTopReviews перечитывает топ из MongoDB и перезаписывает кеш
func (s *ReviewService) RefreshTopReviews(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	_, err := s.loadTopReviews(ctx)
	return err
}

// loadTopReviews читает топ из MongoDB и кладет его в кеш.
// Версия берется до запроса: если между чтением и заполнением прошла запись,
// кеш не заполняется, иначе в нем остался бы снимок без этой записи.
func (s *ReviewService) loadTopReviews(ctx context.Context) ([]entity.Review, error) {
	var version int64
	cacheable := false
	if s.cache != nil {
		v, err := s.cache.TopReviewsVersion(ctx)
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Msg("Failed to read top reviews cache version")
		} else {
			version, cacheable = v, true
		}
	}

	reviews, err := s.reviewRepo.Find(ctx, repository.TopReviewsQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to list top reviews: %w", err)
	}

	if cacheable {
		err := s.cache.SetTopReviews(ctx, version, reviews)
		switch {
		case errors.Is(err, infrastructure.ErrTopReviewsChanged):
			logger.Ctx(ctx).Debug().Int64("version", version).Msg("Top reviews changed during read, cache fill skipped")
		case err != nil:
			logger.Ctx(ctx).Warn().Err(err).Msg("Failed to cache top reviews")
		}
	}

	return reviews, nil
}

func (s *ReviewService) ListReviewsByCriteria(ctx context.Context, criteria entity.ListCriteria) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.Find(ctx, repository.CriteriaQuery(criteria))
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by criteria: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) ListReviewsBySubmitter(ctx context.Context, email string) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.Find(ctx, repository.SubmitterQuery(email))
	if err != nil {
		return nil, fmt.Errorf("failed to list submitter reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// CreateReview сохраняет отзыв в том виде, в котором его прислал клиент
func (s *ReviewService) CreateReview(ctx context.Context, review *entity.Review) (*entity.InsertResult, error) {
	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	metrics.ReviewsRating.Observe(review.Rating)

	s.afterWrite(ctx, entity.ReviewEvent{
		EventType: entity.ReviewCreated,
		ReviewID:  review.ID.Hex(),
		Genre:     review.Genre,
		Rating:    review.Rating,
		Email:     review.Email,
	})

	return &entity.InsertResult{Acknowledged: true, InsertedID: review.ID}, nil
}

// ReplaceReview - upsert в две явные ветки:
// отзыв есть - $set восьми полей, остальные поля документа не трогаются;
// отзыва нет - вставка нового документа с этим ID.
// Если между проверкой и записью состояние изменилось (параллельный запрос),
// выполняется другая ветка.
func (s *ReviewService) ReplaceReview(ctx context.Context, id string, fields entity.ReviewFields) (*entity.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.Exists(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to replace review: %w", err)
	}

	var result *entity.UpdateResult
	if exists {
		result, err = s.updateFields(ctx, oid, fields)
		if err == nil && result.MatchedCount == 0 {
			result, err = s.insertFields(ctx, oid, fields)
		}
	} else {
		result, err = s.insertFields(ctx, oid, fields)
		if errors.Is(err, repository.ErrDuplicateID) {
			result, err = s.updateFields(ctx, oid, fields)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace review: %w", err)
	}

	s.afterWrite(ctx, entity.ReviewEvent{
		EventType: entity.ReviewReplaced,
		ReviewID:  oid.Hex(),
		Genre:     valueOf(fields.Genre),
		Rating:    valueOf(fields.Rating),
		Email:     valueOf(fields.Email),
	})

	return result, nil
}

func (s *ReviewService) updateFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) (*entity.UpdateResult, error) {
	res, err := s.reviewRepo.SetFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	metrics.ReviewsReplaced.WithLabelValues("update").Inc()
	return &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *ReviewService) insertFields(ctx context.Context, id primitive.ObjectID, fields entity.ReviewFields) (*entity.UpdateResult, error) {
	if err := s.reviewRepo.InsertFields(ctx, id, fields); err != nil {
		return nil, err
	}

	metrics.ReviewsReplaced.WithLabelValues("insert").Inc()
	return &entity.UpdateResult{
		Acknowledged:  true,
		UpsertedCount: 1,
		UpsertedID:    &id,
	}, nil
}

// DeleteReview: отсутствующий отзыв - не ошибка, deletedCount будет 0
func (s *ReviewService) DeleteReview(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.reviewRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete review: %w", err)
	}

	if deleted > 0 {
		metrics.ReviewsDeleted.Add(float64(deleted))
		s.afterWrite(ctx, entity.ReviewEvent{
			EventType: entity.ReviewDeleted,
			ReviewID:  oid.Hex(),
		})
	}

	return &entity.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// afterWrite сбрасывает кеш топа и отправляет событие.
// Ошибки только логируются: запись в MongoDB уже выполнена.
func (s *ReviewService) afterWrite(ctx context.Context, event entity.ReviewEvent) {
	if s.cache != nil {
		// запись в MongoDB уже выполнена: кеш сбрасывается и после отмены запроса клиентом
		invalidateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheInvalidateTimeout)
		defer cancel()
		if err := s.cache.InvalidateTopReviews(invalidateCtx); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("review_id", event.ReviewID).Msg("Failed to invalidate top reviews cache")
		}
	}

	if s.kafkaProducer != nil {
		event.Timestamp = time.Now().UTC()
		if err := s.publishReviewEvent(ctx, event); err != nil {
			logger.Ctx(ctx).Warn().Err(err).
				Str("review_id", event.ReviewID).
				Str("event_type", string(event.EventType)).
				Msg("Failed to publish review event")
		}
	}
}

// publishReviewEvent отправляет событие в Kafka с ключом = ReviewID для партиционирования
func (s *ReviewService) publishReviewEvent(ctx context.Context, event entity.ReviewEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	if err := s.kafkaProducer.PublishMessage(ctx, event.ReviewID, eventData); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
