package service

import (
	"context"
	"fmt"

	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/repository"
)

// UserService только сохраняет профили, чтение не предусмотрено
type UserService struct {
	userRepo   repository.DocumentRepository
	collection string
}

func NewUserService(userRepo repository.DocumentRepository, collection string) *UserService {
	return &UserService{userRepo: userRepo, collection: collection}
}

func (s *UserService) CreateUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	id, err := s.userRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.DocumentsCreated.WithLabelValues(s.collection).Inc()
	return &entity.InsertResult{Acknowledged: true, InsertedID: id}, nil
}
