package service

import (
	"context"
	"time"

	"quickbite/internal/order-svc/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	ListForUser(userID int) ([]domain.Order, error)
	ListForRestaurant(restaurantID int) ([]domain.Order, error)
	Pending(ctx context.Context, restaurantID int) ([]domain.Order, error)
	Transition(ctx context.Context, orderID, restaurantID int, target domain.Status) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, userID int) (*domain.Order, error)
	QRCode(ctx context.Context, orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type OrderRepository interface {
	RestaurantOnline(restaurantID int) (bool, error)
	MenuSnapshot(restaurantID int, menuItemIDs []int) (map[int]domain.OrderItem, error)
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrdersByUser(userID int) ([]domain.Order, error)
	ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error)
	ListPendingOrders(restaurantID int) ([]domain.Order, error)
	UpdateStatus(orderID int, from, to domain.Status) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type OrderCache interface {
	DetailKey(orderID int) string
	PendingKey(restaurantID int) string
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type OrderPublisher interface {
	PublishEvent(ctx context.Context, event domain.Event) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
