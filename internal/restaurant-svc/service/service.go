package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"quickbite/internal/restaurant-svc/domain"
	"quickbite/internal/restaurant-svc/storage"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRestaurantExists   = errors.New("restaurant already registered for this owner")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidRestaurant  = errors.New("restaurant name is required")
	ErrInvalidMenuItem    = errors.New("menu item needs a name and a positive price")
)

const (
	listTTL       = 5 * time.Minute
	profileTTL    = 5 * time.Minute
	menuTTL       = 5 * time.Minute
	categoriesTTL = 30 * time.Minute
)

type CatalogService struct {
	repo  CatalogRepository
	cache CatalogCache
}

func NewCatalogService(repo CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) degraded(d domain.Degradation) {
	if d.Err != nil {
		log.Printf("Warning: degraded %s: %v", d.Op, d.Err)
	}
}

// CreateRestaurant stores the profile under the owner's user id; one
// restaurant per owner account.
func (s *CatalogService) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	if rest.ID <= 0 || strings.TrimSpace(rest.Name) == "" {
		return ErrInvalidRestaurant
	}
	if err := s.repo.CreateRestaurant(rest); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrRestaurantExists
		}
		return err
	}
	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.ListKey())})
	return nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	key := s.cache.ListKey()
	var cached []domain.Restaurant
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	restaurants, err := s.repo.ListRestaurants()
	if err != nil {
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache restaurant list",
		Err: s.cache.SetJSON(ctx, key, restaurants, listTTL)})
	return restaurants, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	key := s.cache.ProfileKey(id)
	var cached domain.Restaurant
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache restaurant profile",
		Err: s.cache.SetJSON(ctx, key, rest, profileTTL)})
	return rest, nil
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return ErrInvalidRestaurant
	}
	affected, err := s.repo.UpdateRestaurant(rest)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRestaurantNotFound
	}
	s.invalidateRestaurant(ctx, rest.ID)
	return nil
}

func (s *CatalogService) SetOnline(ctx context.Context, id int, online bool) error {
	affected, err := s.repo.SetOnline(id, online)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRestaurantNotFound
	}
	s.invalidateRestaurant(ctx, id)
	return nil
}

func (s *CatalogService) AddMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return ErrInvalidMenuItem
	}
	if _, err := s.GetRestaurant(ctx, item.RestaurantID); err != nil {
		return err
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		return err
	}
	s.invalidateMenu(ctx, item.RestaurantID)
	return nil
}

func (s *CatalogService) Menu(ctx context.Context, restaurantID int, category string) ([]domain.MenuItem, error) {
	key := s.cache.MenuKey(restaurantID, category)
	var cached []domain.MenuItem
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := s.repo.ListMenu(restaurantID, category)
	if err != nil {
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache menu",
		Err: s.cache.SetJSON(ctx, key, items, menuTTL)})
	return items, nil
}

func (s *CatalogService) Categories(ctx context.Context, restaurantID int) ([]string, error) {
	key := s.cache.CategoriesKey(restaurantID)
	var cached []string
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(restaurantID)
	if err != nil {
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache categories",
		Err: s.cache.SetJSON(ctx, key, categories, categoriesTTL)})
	return categories, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return ErrInvalidMenuItem
	}
	affected, err := s.repo.UpdateMenuItem(item)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	s.invalidateMenu(ctx, item.RestaurantID)
	return nil
}

func (s *CatalogService) invalidateRestaurant(ctx context.Context, id int) {
	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.ListKey(), s.cache.ProfileKey(id))})
}

func (s *CatalogService) invalidateMenu(ctx context.Context, restaurantID int) {
	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.DeleteByPattern(ctx, s.cache.MenuPattern(restaurantID))})
	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.CategoriesKey(restaurantID))})
}
