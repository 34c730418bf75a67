package service

import (
	"context"
	"fmt"

	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/repository"
)

// WishlistService - список игр, которые пользователь хочет отслеживать
type WishlistService struct {
	wishlistRepo repository.DocumentRepository
	ownerField   string
	collection   string
}

func NewWishlistService(wishlistRepo repository.DocumentRepository, ownerField, collection string) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		ownerField:   ownerField,
		collection:   collection,
	}
}

func (s *WishlistService) ListWishlist(ctx context.Context) ([]entity.Document, error) {
	docs, err := s.wishlistRepo.Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	return docs, nil
}

func (s *WishlistService) ListWishlistByOwner(ctx context.Context, owner string) ([]entity.Document, error) {
	docs, err := s.wishlistRepo.Find(ctx, repository.OwnerFilter(s.ownerField, owner))
	if err != nil {
		return nil, fmt.Errorf("failed to list owner wishlist: %w", err)
	}
	return docs, nil
}

func (s *WishlistService) CreateWishlistEntry(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	id, err := s.wishlistRepo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist entry: %w", err)
	}

	metrics.DocumentsCreated.WithLabelValues(s.collection).Inc()
	return &entity.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *WishlistService) DeleteWishlistEntry(ctx context.Context, id string) (*entity.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.wishlistRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete wishlist entry: %w", err)
	}

	return &entity.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
