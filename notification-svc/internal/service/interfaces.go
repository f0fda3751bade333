package service

import (
	"context"

	"quickbite/notification-svc/internal/domain"
	"quickbite/notification-svc/internal/storage"
)

type StoreInterface interface {
	RecalculateRating(targetType string, targetID int) error
	BumpOrderVolume(restaurantID int) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(event domain.Event)
}

var _ StoreInterface = (*storage.Store)(nil)
