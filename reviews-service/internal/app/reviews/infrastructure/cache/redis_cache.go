package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/infrastructure"

	"github.com/redis/go-redis/v9"
)

const (
	serviceName          = "reviews-service"
	topReviewsKey        = "reviews:top"
	topReviewsVersionKey = "reviews:top:version"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache подключается к Redis и проверяет соединение через PING
func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// GetTopReviews: found=false при отсутствии ключа, это не ошибка
func (r *RedisCache) GetTopReviews(ctx context.Context) (_ []entity.Review, found bool, err error) {
	done := metrics.ObserveRedis(serviceName, metrics.RedisOpGet)
	defer func() { done(err) }()

	data, err := r.client.Get(ctx, topReviewsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(serviceName, topReviewsKey, false)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get top reviews from cache: %w", err)
	}

	var reviews []entity.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal top reviews: %w", err)
	}

	metrics.RecordCacheLookup(serviceName, topReviewsKey, true)
	return reviews, true, nil
}

// TopReviewsVersion возвращает текущую версию топа; отсутствие ключа - версия 0
func (r *RedisCache) TopReviewsVersion(ctx context.Context) (version int64, err error) {
	done := metrics.ObserveRedis(serviceName, metrics.RedisOpGet)
	defer func() { done(err) }()

	version, err = r.client.Get(ctx, topReviewsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get top reviews version: %w", err)
	}
	return version, nil
}

// SetTopReviews пишет топ только если версия не менялась с момента чтения.
// Иначе возвращает infrastructure.ErrTopReviewsChanged и кеш не трогает.
func (r *RedisCache) SetTopReviews(ctx context.Context, version int64, reviews []entity.Review) (err error) {
	done := metrics.ObserveRedis(serviceName, metrics.RedisOpSet)
	defer func() {
		if errors.Is(err, infrastructure.ErrTopReviewsChanged) {
			done(nil)
			return
		}
		done(err)
	}()

	if reviews == nil {
		reviews = []entity.Review{}
	}

	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to marshal top reviews: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, topReviewsVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return infrastructure.ErrTopReviewsChanged
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, topReviewsKey, data, r.ttl)
			return nil
		})
		return err
	}, topReviewsVersionKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, infrastructure.ErrTopReviewsChanged), errors.Is(err, redis.TxFailedErr):
		return infrastructure.ErrTopReviewsChanged
	default:
		return fmt.Errorf("failed to set top reviews in cache: %w", err)
	}
}

// InvalidateTopReviews удаляет топ и увеличивает версию в одной транзакции
func (r *RedisCache) InvalidateTopReviews(ctx context.Context) (err error) {
	done := metrics.ObserveRedis(serviceName, metrics.RedisOpDel)
	defer func() { done(err) }()

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, topReviewsVersionKey)
		pipe.Del(ctx, topReviewsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate top reviews cache: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
