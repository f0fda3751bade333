package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"quickbite/internal/rating-svc/domain"
	"quickbite/internal/rating-svc/storage"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOrderOwner     = errors.New("order belongs to another user")
	ErrOrderNotDelivered = errors.New("order is not delivered yet")
	ErrAlreadyRated      = errors.New("order already rated by this user")
	ErrInvalidScore      = errors.New("score must be between 1 and 5")
	ErrInvalidTarget     = errors.New("rating target does not match the order")
)

type RatingService struct {
	repo      RatingRepository
	cache     RatingCache
	publisher RatingPublisher
}

func NewRatingService(repo RatingRepository, cache RatingCache, publisher RatingPublisher) *RatingService {
	return &RatingService{repo: repo, cache: cache, publisher: publisher}
}

func (s *RatingService) degraded(d domain.Degradation) {
	if d.Err != nil {
		log.Printf("Warning: degraded %s: %v", d.Op, d.Err)
	}
}

// Submit accepts one rating per (user, order). The Redis marker is a
// fast-path guard; the DB unique constraint is the source of truth.
func (s *RatingService) Submit(ctx context.Context, rating *domain.Rating) error {
	if rating.Score < 1 || rating.Score > 5 {
		return ErrInvalidScore
	}
	if !domain.ValidTargetType(rating.TargetType) {
		return ErrInvalidTarget
	}

	order, err := s.eligibleOrder(rating.UserID, rating.OrderID)
	if err != nil {
		return err
	}
	if err := matchTarget(order, rating); err != nil {
		return err
	}

	markerKey := s.cache.RatedMarkerKey(rating.UserID, rating.OrderID)
	if exists, _ := s.cache.Exists(ctx, markerKey); exists {
		return ErrAlreadyRated
	}

	if err := s.repo.InsertRating(rating); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrAlreadyRated
		}
		return err
	}

	s.degraded(domain.Degradation{Op: "set rated marker",
		Err: s.cache.SetMarker(ctx, markerKey)})

	if s.publisher != nil {
		s.degraded(domain.Degradation{Op: "publish rating_submitted",
			Err: s.publisher.PublishEvent(ctx, domain.Event{
				EventID:    uuid.NewString(),
				Type:       "rating_submitted",
				UserID:     rating.UserID,
				OrderID:    rating.OrderID,
				TargetType: rating.TargetType,
				TargetID:   rating.TargetID,
				Score:      rating.Score,
				Timestamp:  time.Now(),
			})})
	}

	return nil
}

func (s *RatingService) CanRate(ctx context.Context, userID, orderID int) (bool, error) {
	if _, err := s.eligibleOrder(userID, orderID); err != nil {
		return false, err
	}
	rated, err := s.repo.HasRating(userID, orderID)
	if err != nil {
		return false, err
	}
	return !rated, nil
}

func (s *RatingService) List(ctx context.Context, targetType domain.TargetType, targetID int) ([]domain.Rating, error) {
	if !domain.ValidTargetType(targetType) {
		return nil, ErrInvalidTarget
	}
	return s.repo.ListRatings(targetType, targetID)
}

// eligibleOrder enforces the rating gate: the order exists, belongs to
// the caller, and has been delivered.
func (s *RatingService) eligibleOrder(userID, orderID int) (*domain.OrderSummary, error) {
	order, err := s.repo.OrderSummary(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.Status != "delivered" {
		return nil, ErrOrderNotDelivered
	}
	return order, nil
}

func matchTarget(order *domain.OrderSummary, rating *domain.Rating) error {
	switch rating.TargetType {
	case domain.TargetRestaurant:
		if rating.TargetID != order.RestaurantID {
			return ErrInvalidTarget
		}
	case domain.TargetAgent:
		if order.AgentID == nil || rating.TargetID != *order.AgentID {
			return ErrInvalidTarget
		}
	}
	return nil
}
