package storage

import (
	"database/sql"
	"sync"
	"time"

	"quickbite/internal/order-svc/domain"
)

// MemoryRepository is an in-process stand-in for the Postgres repository.
// It exists as a test double only; production storage is always the
// database-backed repository.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  int
	orders  map[int]*domain.Order
	menus   map[int]domain.OrderItem
	online  map[int]bool
	agents  map[int]bool // agent id -> is_on_delivery
	qrcodes map[int][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:  1,
		orders:  make(map[int]*domain.Order),
		menus:   make(map[int]domain.OrderItem),
		online:  make(map[int]bool),
		agents:  make(map[int]bool),
		qrcodes: make(map[int][]byte),
	}
}

func (r *MemoryRepository) SeedRestaurant(id int, online bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.online[id] = online
}

func (r *MemoryRepository) SeedMenuItem(item domain.OrderItem, available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if available {
		r.menus[item.MenuItemID] = item
	}
}

func (r *MemoryRepository) SeedAgent(id int, onDelivery bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[id] = onDelivery
}

func (r *MemoryRepository) AgentOnDelivery(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.agents[id]
}

func (r *MemoryRepository) AssignAgent(orderID, agentID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order, ok := r.orders[orderID]; ok {
		id := agentID
		order.AgentID = &id
		r.agents[agentID] = true
	}
}

func (r *MemoryRepository) RestaurantOnline(restaurantID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	online, ok := r.online[restaurantID]
	if !ok {
		return false, sql.ErrNoRows
	}
	return online, nil
}

func (r *MemoryRepository) MenuSnapshot(restaurantID int, menuItemIDs []int) (map[int]domain.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make(map[int]domain.OrderItem, len(menuItemIDs))
	for _, id := range menuItemIDs {
		if item, ok := r.menus[id]; ok {
			snapshot[id] = item
		}
	}
	return snapshot, nil
}

func (r *MemoryRepository) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetOrder(orderID int) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (r *MemoryRepository) list(match func(*domain.Order) bool) []domain.Order {
	var orders []domain.Order
	for _, order := range r.orders {
		if match(order) {
			orders = append(orders, *order)
		}
	}
	return orders
}

func (r *MemoryRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(o *domain.Order) bool { return o.UserID == userID }), nil
}

func (r *MemoryRepository) ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(o *domain.Order) bool { return o.RestaurantID == restaurantID }), nil
}

func (r *MemoryRepository) ListPendingOrders(restaurantID int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(o *domain.Order) bool {
		return o.RestaurantID == restaurantID && o.Status == domain.StatusPending
	}), nil
}

func (r *MemoryRepository) UpdateStatus(orderID int, from, to domain.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok || order.Status != from {
		return 0, nil
	}
	order.Status = to
	now := time.Now()
	switch to {
	case domain.StatusConfirmed:
		order.ConfirmedAt = &now
	case domain.StatusReadyForPickup:
		order.PreparedAt = &now
	case domain.StatusOutForDelivery:
		order.PickedUpAt = &now
	case domain.StatusDelivered:
		order.DeliveredAt = &now
		if order.AgentID != nil {
			r.agents[*order.AgentID] = false
		}
	case domain.StatusCancelled:
		order.CancelledAt = &now
	}
	return 1, nil
}

func (r *MemoryRepository) SaveQRCode(orderID int, qr []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qrcodes[orderID] = qr
	return nil
}

func (r *MemoryRepository) GetQRCode(orderID int) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[orderID]; !ok {
		return nil, sql.ErrNoRows
	}
	return r.qrcodes[orderID], nil
}
