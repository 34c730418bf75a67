package service

import (
	"errors"
	"fmt"

	"chillgamer/reviews-service/internal/app/reviews/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = repository.ErrStorageUnavailable
)

// parseID проверяет формат идентификатора MongoDB (24 hex-символа)
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return oid, nil
}
