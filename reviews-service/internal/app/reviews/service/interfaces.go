package service

import (
	"context"

	"chillgamer/reviews-service/internal/app/reviews/entity"
)

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context) ([]entity.Review, error)
	ListTopReviews(ctx context.Context) ([]entity.Review, error)
	ListReviewsByCriteria(ctx context.Context, criteria entity.ListCriteria) ([]entity.Review, error)
	ListReviewsBySubmitter(ctx context.Context, email string) ([]entity.Review, error)
	GetReview(ctx context.Context, id string) (*entity.Review, error)
	CreateReview(ctx context.Context, review *entity.Review) (*entity.InsertResult, error)
	ReplaceReview(ctx context.Context, id string, fields entity.ReviewFields) (*entity.UpdateResult, error)
	DeleteReview(ctx context.Context, id string) (*entity.DeleteResult, error)
}

type WishlistServiceInterface interface {
	ListWishlist(ctx context.Context) ([]entity.Document, error)
	ListWishlistByOwner(ctx context.Context, owner string) ([]entity.Document, error)
	CreateWishlistEntry(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	DeleteWishlistEntry(ctx context.Context, id string) (*entity.DeleteResult, error)
}

type UserServiceInterface interface {
	CreateUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
}

// TopReviewsRefresher используется планировщиком прогрева кеша
type TopReviewsRefresher interface {
	RefreshTopReviews(ctx context.Context) error
}

var (
	_ ReviewServiceInterface   = (*ReviewService)(nil)
	_ TopReviewsRefresher      = (*ReviewService)(nil)
	_ WishlistServiceInterface = (*WishlistService)(nil)
	_ UserServiceInterface     = (*UserService)(nil)
)
