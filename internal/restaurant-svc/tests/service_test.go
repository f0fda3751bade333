package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"quickbite/internal/restaurant-svc/domain"
	"quickbite/internal/restaurant-svc/mocks"
	"quickbite/internal/restaurant-svc/service"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_MenuReadThrough(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	items := []domain.MenuItem{
		{ID: 1, RestaurantID: 10, Name: "Margherita", Category: "pizza", Price: 9.50, IsAvailable: true},
	}
	repo.On("ListMenu", 10, "pizza").Return(items, nil).Once()

	cache := mocks.NewCatalogCache(t)
	cache.On("MenuKey", 10, "pizza").Return("restaurant:menu:10:pizza").Once()
	cache.On("GetJSON", mock.Anything, "restaurant:menu:10:pizza", mock.Anything).
		Return(false, nil).Once()
	cache.On("SetJSON", mock.Anything, "restaurant:menu:10:pizza", items, 5*time.Minute).
		Return(nil).Once()

	svc := service.NewCatalogService(repo, cache)

	got, err := svc.Menu(context.Background(), 10, "pizza")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Margherita", got[0].Name)
}

func TestCatalogService_CategoriesUseLongTTL(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	repo.On("ListCategories", 10).Return([]string{"pizza", "salad"}, nil).Once()

	cache := mocks.NewCatalogCache(t)
	cache.On("CategoriesKey", 10).Return("restaurant:categories:10").Once()
	cache.On("GetJSON", mock.Anything, "restaurant:categories:10", mock.Anything).
		Return(false, nil).Once()
	cache.On("SetJSON", mock.Anything, "restaurant:categories:10", []string{"pizza", "salad"}, 30*time.Minute).
		Return(nil).Once()

	svc := service.NewCatalogService(repo, cache)

	categories, err := svc.Categories(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, []string{"pizza", "salad"}, categories)
}

func TestCatalogService_MenuCacheHitSkipsRepo(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)

	cache := mocks.NewCatalogCache(t)
	cache.On("MenuKey", 10, "").Return("restaurant:menu:10:").Once()
	cache.On("GetJSON", mock.Anything, "restaurant:menu:10:", mock.Anything).
		Run(func(args mock.Arguments) {
			cached := args.Get(2).(*[]domain.MenuItem)
			*cached = []domain.MenuItem{{ID: 3, Name: "Cached Soup"}}
		}).Return(true, nil).Once()

	svc := service.NewCatalogService(repo, cache)

	got, err := svc.Menu(context.Background(), 10, "")
	assert.NoError(t, err)
	assert.Equal(t, "Cached Soup", got[0].Name)
	repo.AssertNotCalled(t, "ListMenu", 10, "")
}

func TestCatalogService_AddMenuItem(t *testing.T) {
	tests := []struct {
		name         string
		item         domain.MenuItem
		prepareMocks func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache)
		expectedErr  error
	}{
		{
			name: "success_invalidate_menu_and_categories",
			item: domain.MenuItem{RestaurantID: 10, Name: "Tiramisu", Category: "dessert", Price: 6},
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache) {
				cache.On("ProfileKey", 10).Return("restaurant:profile:10").Once()
				cache.On("GetJSON", mock.Anything, "restaurant:profile:10", mock.Anything).
					Return(false, nil).Once()
				repo.On("GetRestaurant", 10).Return(&domain.Restaurant{ID: 10, Name: "Trattoria"}, nil).Once()
				cache.On("SetJSON", mock.Anything, "restaurant:profile:10", mock.Anything, 5*time.Minute).
					Return(nil).Once()
				repo.On("CreateMenuItem", mock.Anything).Return(nil).Once()
				cache.On("MenuPattern", 10).Return("restaurant:menu:10:*").Once()
				cache.On("DeleteByPattern", mock.Anything, "restaurant:menu:10:*").Return(nil).Once()
				cache.On("CategoriesKey", 10).Return("restaurant:categories:10").Once()
				cache.On("Delete", mock.Anything, "restaurant:categories:10").Return(nil).Once()
			},
		},
		{
			name:         "missing_name",
			item:         domain.MenuItem{RestaurantID: 10, Price: 6},
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache) {},
			expectedErr:  service.ErrInvalidMenuItem,
		},
		{
			name:         "non_positive_price",
			item:         domain.MenuItem{RestaurantID: 10, Name: "Tiramisu", Price: 0},
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache) {},
			expectedErr:  service.ErrInvalidMenuItem,
		},
		{
			name: "unknown_restaurant",
			item: domain.MenuItem{RestaurantID: 99, Name: "Tiramisu", Price: 6},
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache) {
				cache.On("ProfileKey", 99).Return("restaurant:profile:99").Once()
				cache.On("GetJSON", mock.Anything, "restaurant:profile:99", mock.Anything).
					Return(false, nil).Once()
				repo.On("GetRestaurant", 99).Return(nil, sql.ErrNoRows).Once()
			},
			expectedErr: service.ErrRestaurantNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			cache := mocks.NewCatalogCache(t)
			testCase.prepareMocks(repo, cache)

			svc := service.NewCatalogService(repo, cache)
			item := testCase.item
			err := svc.AddMenuItem(context.Background(), &item)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_SetOnline(t *testing.T) {
	t.Run("flips_flag_and_invalidates", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("SetOnline", 10, true).Return(int64(1), nil).Once()

		cache := mocks.NewCatalogCache(t)
		cache.On("ListKey").Return("restaurant:list").Once()
		cache.On("ProfileKey", 10).Return("restaurant:profile:10").Once()
		cache.On("Delete", mock.Anything, "restaurant:list", "restaurant:profile:10").
			Return(nil).Once()

		svc := service.NewCatalogService(repo, cache)
		assert.NoError(t, svc.SetOnline(context.Background(), 10, true))
	})

	t.Run("unknown_restaurant", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("SetOnline", 99, true).Return(int64(0), nil).Once()

		svc := service.NewCatalogService(repo, mocks.NewCatalogCache(t))
		err := svc.SetOnline(context.Background(), 99, true)
		assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
	})
}

func TestCatalogService_CreateRestaurant(t *testing.T) {
	t.Run("stored_under_the_owner_id", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("CreateRestaurant", mock.MatchedBy(func(rest *domain.Restaurant) bool {
			return rest.ID == 10 && rest.Name == "Trattoria"
		})).Return(nil).Once()

		cache := mocks.NewCatalogCache(t)
		cache.On("ListKey").Return("restaurant:list").Once()
		cache.On("Delete", mock.Anything, "restaurant:list").Return(nil).Once()

		svc := service.NewCatalogService(repo, cache)
		err := svc.CreateRestaurant(context.Background(), &domain.Restaurant{ID: 10, Name: "Trattoria"})
		assert.NoError(t, err)
	})

	t.Run("duplicate_owner", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("CreateRestaurant", mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		svc := service.NewCatalogService(repo, mocks.NewCatalogCache(t))
		err := svc.CreateRestaurant(context.Background(), &domain.Restaurant{ID: 10, Name: "Trattoria"})
		assert.ErrorIs(t, err, service.ErrRestaurantExists)
	})

	t.Run("blank_name", func(t *testing.T) {
		svc := service.NewCatalogService(mocks.NewCatalogRepository(t), mocks.NewCatalogCache(t))
		err := svc.CreateRestaurant(context.Background(), &domain.Restaurant{ID: 10, Name: "   "})
		assert.ErrorIs(t, err, service.ErrInvalidRestaurant)
	})

	t.Run("missing_id", func(t *testing.T) {
		svc := service.NewCatalogService(mocks.NewCatalogRepository(t), mocks.NewCatalogCache(t))
		err := svc.CreateRestaurant(context.Background(), &domain.Restaurant{Name: "Trattoria"})
		assert.ErrorIs(t, err, service.ErrInvalidRestaurant)
	})
}
