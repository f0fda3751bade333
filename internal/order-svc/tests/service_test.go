package tests

import (
	"context"
	"testing"
	"time"

	"quickbite/internal/order-svc/domain"
	"quickbite/internal/order-svc/mocks"
	"quickbite/internal/order-svc/service"
	"quickbite/internal/order-svc/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// nopCache and nopPublisher stand in for the best-effort side paths in
// lifecycle tests that exercise the in-memory repository double.
type nopCache struct{}

func (nopCache) DetailKey(orderID int) string       { return "order:detail:test" }
func (nopCache) PendingKey(restaurantID int) string { return "order:pending:test" }
func (nopCache) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	return false, nil
}
func (nopCache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	return nil
}
func (nopCache) Delete(ctx context.Context, keys ...string) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishEvent(ctx context.Context, event domain.Event) error { return nil }

func newLifecycleService(repo *storage.MemoryRepository) *service.OrderService {
	return service.NewOrderService(repo, nopCache{}, nopPublisher{}, nil)
}

func seedOrder(t *testing.T, repo *storage.MemoryRepository, svc *service.OrderService) *domain.Order {
	t.Helper()
	repo.SeedRestaurant(10, true)
	repo.SeedMenuItem(domain.OrderItem{MenuItemID: 1, ItemName: "Margherita", UnitPrice: 9.5}, true)
	repo.SeedMenuItem(domain.OrderItem{MenuItemID: 2, ItemName: "Cola", UnitPrice: 2.0}, true)

	order := &domain.Order{
		UserID:          42,
		RestaurantID:    10,
		DeliveryAddress: "1 Main St",
		Items: []domain.OrderItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	}
	assert.NoError(t, svc.Create(context.Background(), order))
	return order
}

func TestOrderService_CreateSnapshotsPrices(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newLifecycleService(repo)

	order := seedOrder(t, repo, svc)

	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 21.0, order.TotalAmount)
	assert.Equal(t, "Margherita", order.Items[0].ItemName)
	assert.Equal(t, 9.5, order.Items[0].UnitPrice)

	// A later menu price change must not alter the stored snapshot.
	repo.SeedMenuItem(domain.OrderItem{MenuItemID: 1, ItemName: "Margherita", UnitPrice: 12.0}, true)
	stored, err := repo.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, 21.0, stored.TotalAmount)
}

func TestOrderService_CreateValidation(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newLifecycleService(repo)
	ctx := context.Background()

	repo.SeedRestaurant(10, true)
	repo.SeedRestaurant(11, false)
	repo.SeedMenuItem(domain.OrderItem{MenuItemID: 1, ItemName: "Soup", UnitPrice: 4.0}, true)

	tests := []struct {
		name          string
		order         *domain.Order
		expectedError error
	}{
		{
			name:          "empty_items",
			order:         &domain.Order{UserID: 1, RestaurantID: 10},
			expectedError: service.ErrEmptyOrder,
		},
		{
			name: "offline_restaurant",
			order: &domain.Order{UserID: 1, RestaurantID: 11,
				Items: []domain.OrderItem{{MenuItemID: 1, Quantity: 1}}},
			expectedError: service.ErrRestaurantOffline,
		},
		{
			name: "unavailable_item",
			order: &domain.Order{UserID: 1, RestaurantID: 10,
				Items: []domain.OrderItem{{MenuItemID: 99, Quantity: 1}}},
			expectedError: service.ErrItemUnavailable,
		},
		{
			name: "zero_quantity",
			order: &domain.Order{UserID: 1, RestaurantID: 10,
				Items: []domain.OrderItem{{MenuItemID: 1, Quantity: 0}}},
			expectedError: service.ErrEmptyOrder,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Create(ctx, testCase.order), testCase.expectedError)
		})
	}
}

func TestOrderService_TransitionScenario(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newLifecycleService(repo)
	ctx := context.Background()

	order := seedOrder(t, repo, svc)

	confirmed, err := svc.Transition(ctx, order.ID, order.RestaurantID, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	// Walking backwards is rejected by the adjacency table.
	_, err = svc.Transition(ctx, order.ID, order.RestaurantID, domain.StatusPending)
	var invalid *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusConfirmed, invalid.From)
	assert.Equal(t, domain.StatusPending, invalid.To)
}

func TestOrderService_DeliveredClearsAgentFlag(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newLifecycleService(repo)
	ctx := context.Background()

	order := seedOrder(t, repo, svc)

	for _, status := range []domain.Status{
		domain.StatusConfirmed, domain.StatusPreparing, domain.StatusReadyForPickup,
	} {
		_, err := svc.Transition(ctx, order.ID, order.RestaurantID, status)
		assert.NoError(t, err)
	}

	repo.AssignAgent(order.ID, 7)
	assert.True(t, repo.AgentOnDelivery(7))

	_, err := svc.Transition(ctx, order.ID, order.RestaurantID, domain.StatusOutForDelivery)
	assert.NoError(t, err)

	delivered, err := svc.Transition(ctx, order.ID, order.RestaurantID, domain.StatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)
	assert.False(t, repo.AgentOnDelivery(7))

	// Terminal: no further transitions.
	_, err = svc.Transition(ctx, order.ID, order.RestaurantID, domain.StatusCancelled)
	assert.Error(t, err)
}

func TestOrderService_TransitionRestaurantOwnership(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newLifecycleService(repo)
	ctx := context.Background()

	order := seedOrder(t, repo, svc)

	_, err := svc.Transition(ctx, order.ID, 999, domain.StatusConfirmed)
	assert.ErrorIs(t, err, service.ErrNotRestaurantOrder)

	confirmed, err := svc.Transition(ctx, order.ID, order.RestaurantID, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
}

func TestOrderService_CancelOwnership(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newLifecycleService(repo)
	ctx := context.Background()

	order := seedOrder(t, repo, svc)

	_, err := svc.Cancel(ctx, order.ID, 999)
	assert.ErrorIs(t, err, service.ErrNotOrderOwner)

	cancelled, err := svc.Cancel(ctx, order.ID, order.UserID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestOrderService_TransitionLostRace(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repo, nopCache{}, nopPublisher{}, nil)
	ctx := context.Background()

	repo.On("GetOrder", 5).Return(&domain.Order{ID: 5, RestaurantID: 10, Status: domain.StatusPending}, nil).Once()
	repo.On("UpdateStatus", 5, domain.StatusPending, domain.StatusConfirmed).Return(int64(0), nil).Once()

	_, err := svc.Transition(ctx, 5, 10, domain.StatusConfirmed)
	assert.ErrorIs(t, err, service.ErrTransitionLost)
}

func TestOrderService_GetReadThroughCache(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	cache := mocks.NewOrderCache(t)
	svc := service.NewOrderService(repo, cache, nopPublisher{}, nil)
	ctx := context.Background()

	order := &domain.Order{ID: 5, Status: domain.StatusPending, UserID: 1, RestaurantID: 10}

	cache.On("DetailKey", 5).Return("order:detail:5").Once()
	cache.On("GetJSON", ctx, "order:detail:5", mock.Anything).Return(false, nil).Once()
	repo.On("GetOrder", 5).Return(order, nil).Once()
	cache.On("SetJSON", ctx, "order:detail:5", order, 2*time.Minute).Return(nil).Once()

	got, err := svc.Get(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_PendingUsesShortTTL(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	cache := mocks.NewOrderCache(t)
	svc := service.NewOrderService(repo, cache, nopPublisher{}, nil)
	ctx := context.Background()

	pending := []domain.Order{{ID: 1, Status: domain.StatusPending, RestaurantID: 10}}

	cache.On("PendingKey", 10).Return("order:pending:10").Once()
	cache.On("GetJSON", ctx, "order:pending:10", mock.Anything).Return(false, nil).Once()
	repo.On("ListPendingOrders", 10).Return(pending, nil).Once()
	cache.On("SetJSON", ctx, "order:pending:10", pending, 30*time.Second).Return(nil).Once()

	got, err := svc.Pending(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
