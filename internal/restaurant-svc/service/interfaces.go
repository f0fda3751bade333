package service

import (
	"context"
	"time"

	"quickbite/internal/restaurant-svc/domain"
)

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	SetOnline(ctx context.Context, id int, online bool) error
	AddMenuItem(ctx context.Context, item *domain.MenuItem) error
	Menu(ctx context.Context, restaurantID int, category string) ([]domain.MenuItem, error)
	Categories(ctx context.Context, restaurantID int) ([]string, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type CatalogRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) (int64, error)
	SetOnline(id int, online bool) (int64, error)
	CreateMenuItem(item *domain.MenuItem) error
	ListMenu(restaurantID int, category string) ([]domain.MenuItem, error)
	ListCategories(restaurantID int) ([]string, error)
	UpdateMenuItem(item *domain.MenuItem) (int64, error)
}

type CatalogCache interface {
	ListKey() string
	ProfileKey(restaurantID int) string
	MenuKey(restaurantID int, category string) string
	MenuPattern(restaurantID int) string
	CategoriesKey(restaurantID int) string
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
