package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"quickbite/internal/restaurant-svc/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// IsUniqueViolation reports whether err is the restaurants' primary key
// constraint firing, meaning the owner already registered one.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// CreateRestaurant inserts the row under the owner's user id, so the
// ownership check on writes is a straight comparison with the token
// subject.
func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (id, name, address, opens_at, closes_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, rest.ID, rest.Name, rest.Address, rest.OpensAt, rest.ClosesAt).Scan(&rest.CreatedAt)
}

const restaurantColumns = `id, name, COALESCE(address, ''), is_online,
	COALESCE(opens_at, ''), COALESCE(closes_at, ''), rating, rating_count, created_at`

func scanRestaurant(row interface{ Scan(...interface{}) error }) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.IsOnline,
		&rest.OpensAt, &rest.ClosesAt, &rest.Rating, &rest.RatingCount, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT ` + restaurantColumns + `
		FROM restaurants
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRow(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id))
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE restaurants
		SET name = $1, address = $2, opens_at = $3, closes_at = $4
		WHERE id = $5
	`, rest.Name, rest.Address, rest.OpensAt, rest.ClosesAt, rest.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetOnline(id int, online bool) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE restaurants SET is_online = $1 WHERE id = $2", online, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, category, price, is_available)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at
	`, item.RestaurantID, item.Name, item.Category, item.Price).
		Scan(&item.ID, &item.CreatedAt)
}

// ListMenu returns available items only; category empty means all
// categories.
func (r *PostgresRepository) ListMenu(restaurantID int, category string) ([]domain.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, COALESCE(category, ''), price, is_available, created_at
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE`
	args := []interface{}{restaurantID}
	if category != "" {
		query += " AND category = $2"
		args = append(args, category)
	}
	query += " ORDER BY category, name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Category,
			&item.Price, &item.IsAvailable, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) ListCategories(restaurantID int) ([]string, error) {
	rows, err := r.DB.Query(`
		SELECT DISTINCT category
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE AND category <> ''
		ORDER BY category
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, category = $2, price = $3, is_available = $4
		WHERE id = $5 AND restaurant_id = $6
	`, item.Name, item.Category, item.Price, item.IsAvailable, item.ID, item.RestaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id INT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			is_online BOOLEAN NOT NULL DEFAULT FALSE,
			opens_at TEXT,
			closes_at TEXT,
			rating NUMERIC(3,2) NOT NULL DEFAULT 0,
			rating_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			category TEXT,
			price NUMERIC(10,2) NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
