package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"quickbite/internal/rating-svc/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// IsUniqueViolation reports whether err is the ratings table's
// (user_id, order_id) constraint firing.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresRepository) OrderSummary(orderID int) (*domain.OrderSummary, error) {
	var summary domain.OrderSummary
	err := r.DB.QueryRow(`
		SELECT id, user_id, restaurant_id, agent_id, status
		FROM orders WHERE id = $1
	`, orderID).Scan(&summary.ID, &summary.UserID, &summary.RestaurantID,
		&summary.AgentID, &summary.Status)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *PostgresRepository) HasRating(userID, orderID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM ratings WHERE user_id = $1 AND order_id = $2)
	`, userID, orderID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertRating(rating *domain.Rating) error {
	return r.DB.QueryRow(`
		INSERT INTO ratings (user_id, order_id, target_type, target_id, score, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rating.UserID, rating.OrderID, rating.TargetType, rating.TargetID,
		rating.Score, rating.Comment).Scan(&rating.ID, &rating.CreatedAt)
}

func (r *PostgresRepository) ListRatings(targetType domain.TargetType, targetID int) ([]domain.Rating, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, order_id, target_type, target_id, score, COALESCE(comment, ''), created_at
		FROM ratings
		WHERE target_type = $1 AND target_id = $2
		ORDER BY created_at DESC
	`, targetType, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(&rating.ID, &rating.UserID, &rating.OrderID, &rating.TargetType,
			&rating.TargetID, &rating.Score, &rating.Comment, &rating.CreatedAt); err != nil {
			continue
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ratings (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			order_id INT NOT NULL,
			target_type TEXT NOT NULL,
			target_id INT NOT NULL,
			score INT NOT NULL CHECK (score BETWEEN 1 AND 5),
			comment TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, order_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
