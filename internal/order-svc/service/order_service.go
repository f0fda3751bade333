package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"quickbite/internal/order-svc/domain"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrRestaurantOffline  = errors.New("restaurant is not accepting orders")
	ErrItemUnavailable    = errors.New("one or more menu items are unavailable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNotOrderOwner      = errors.New("order belongs to another user")
	ErrNotRestaurantOrder = errors.New("order belongs to another restaurant")
	ErrTransitionLost     = errors.New("order was modified concurrently, retry")
)

const (
	detailTTL  = 2 * time.Minute
	pendingTTL = 30 * time.Second
)

type OrderService struct {
	repo      OrderRepository
	cache     OrderCache
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, cache OrderCache, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, cache: cache, publisher: publisher, qrEncoder: qr}
}

// degraded logs a best-effort side path failure without touching the
// outcome of the triggering request.
func (s *OrderService) degraded(d domain.Degradation) {
	if d.Err != nil {
		log.Printf("Warning: degraded %s: %v", d.Op, d.Err)
	}
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if order.RestaurantID <= 0 || len(order.Items) == 0 {
		return ErrEmptyOrder
	}

	online, err := s.repo.RestaurantOnline(order.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to check restaurant: %w", err)
	}
	if !online {
		return ErrRestaurantOffline
	}

	ids := make([]int, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return ErrEmptyOrder
		}
		ids = append(ids, item.MenuItemID)
	}

	snapshot, err := s.repo.MenuSnapshot(order.RestaurantID, ids)
	if err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}

	order.TotalAmount = 0
	for i := range order.Items {
		snap, ok := snapshot[order.Items[i].MenuItemID]
		if !ok {
			return ErrItemUnavailable
		}
		order.Items[i].ItemName = snap.ItemName
		order.Items[i].UnitPrice = snap.UnitPrice
		order.TotalAmount += snap.UnitPrice * float64(order.Items[i].Quantity)
	}

	order.OrderNumber = uuid.NewString()
	order.Status = domain.StatusPending

	if err := s.repo.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID, order.OrderNumber); err == nil {
			s.degraded(domain.Degradation{Op: "qr save", Err: s.repo.SaveQRCode(order.ID, qr)})
		}
	}

	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.PendingKey(order.RestaurantID))})

	if s.publisher != nil {
		s.degraded(domain.Degradation{Op: "publish order_placed", Err: s.publisher.PublishEvent(ctx, domain.Event{
			EventID:      uuid.NewString(),
			Type:         "order_placed",
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Status:       string(order.Status),
			Timestamp:    time.Now(),
		})})
	}

	return nil
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	key := s.cache.DetailKey(orderID)
	var cached domain.Order
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache order detail",
		Err: s.cache.SetJSON(ctx, key, order, detailTTL)})
	return order, nil
}

func (s *OrderService) ListForUser(userID int) ([]domain.Order, error) {
	return s.repo.ListOrdersByUser(userID)
}

func (s *OrderService) ListForRestaurant(restaurantID int) ([]domain.Order, error) {
	return s.repo.ListOrdersByRestaurant(restaurantID)
}

func (s *OrderService) Pending(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	key := s.cache.PendingKey(restaurantID)
	var cached []domain.Order
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	orders, err := s.repo.ListPendingOrders(restaurantID)
	if err != nil {
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache pending orders",
		Err: s.cache.SetJSON(ctx, key, orders, pendingTTL)})
	return orders, nil
}

// Transition moves the order to target on behalf of restaurantID, which
// must be the restaurant the order was placed with. The persisted write
// is conditional on the status the caller read, so a lost race surfaces
// as ErrTransitionLost instead of a silent overwrite.
func (s *OrderService) Transition(ctx context.Context, orderID, restaurantID int, target domain.Status) (*domain.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, ErrNotRestaurantOrder
	}
	return s.transition(ctx, order, target)
}

func (s *OrderService) Cancel(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return s.transition(ctx, order, domain.StatusCancelled)
}

func (s *OrderService) transition(ctx context.Context, order *domain.Order, target domain.Status) (*domain.Order, error) {
	if !domain.ValidStatus(target) {
		return nil, &domain.InvalidTransitionError{From: "", To: target}
	}

	if err := domain.CanTransition(order.Status, target); err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateStatus(order.ID, order.Status, target)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrTransitionLost
	}

	s.invalidate(ctx, order)

	if s.publisher != nil {
		s.degraded(domain.Degradation{Op: "publish order_status_updated", Err: s.publisher.PublishEvent(ctx, domain.Event{
			EventID:      uuid.NewString(),
			Type:         "order_status_updated",
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Status:       string(target),
			Timestamp:    time.Now(),
		})})
	}

	return s.repo.GetOrder(order.ID)
}

func (s *OrderService) loadOrder(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		order, err := s.repo.GetOrder(orderID)
		if err != nil {
			return nil, err
		}
		if regenerated, err := s.qrEncoder.Generate(orderID, order.OrderNumber); err == nil {
			s.degraded(domain.Degradation{Op: "qr save", Err: s.repo.SaveQRCode(orderID, regenerated)})
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

// invalidate drops the order's direct key and the pending listing before
// readers can pick up the pre-write rows again.
func (s *OrderService) invalidate(ctx context.Context, order *domain.Order) {
	s.degraded(domain.Degradation{Op: "cache invalidate", Err: s.cache.Delete(ctx,
		s.cache.DetailKey(order.ID), s.cache.PendingKey(order.RestaurantID))})
}
