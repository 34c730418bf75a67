package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrReviewNotFound     = errors.New("review not found")
	ErrDuplicateID        = errors.New("document with this id already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// wrapError добавляет контекст операции и помечает сетевые сбои и таймауты
// как ErrStorageUnavailable
func wrapError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to %s: %w: %w", op, ErrDuplicateID, err)
	}
	if isUnavailable(err) {
		return fmt.Errorf("failed to %s: %w: %w", op, ErrStorageUnavailable, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}
