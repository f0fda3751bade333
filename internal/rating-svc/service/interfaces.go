package service

import (
	"context"

	"quickbite/internal/rating-svc/domain"
)

type RatingServiceInterface interface {
	Submit(ctx context.Context, rating *domain.Rating) error
	CanRate(ctx context.Context, userID, orderID int) (bool, error)
	List(ctx context.Context, targetType domain.TargetType, targetID int) ([]domain.Rating, error)
}

type RatingRepository interface {
	OrderSummary(orderID int) (*domain.OrderSummary, error)
	HasRating(userID, orderID int) (bool, error)
	InsertRating(rating *domain.Rating) error
	ListRatings(targetType domain.TargetType, targetID int) ([]domain.Rating, error)
}

type RatingCache interface {
	RatedMarkerKey(userID, orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type RatingPublisher interface {
	PublishEvent(ctx context.Context, event domain.Event) error
}

var _ RatingServiceInterface = (*RatingService)(nil)
