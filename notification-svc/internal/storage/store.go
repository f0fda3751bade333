package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func targetTable(targetType string) (string, error) {
	switch targetType {
	case "restaurant":
		return "restaurants", nil
	case "agent":
		return "delivery_agents", nil
	}
	return "", fmt.Errorf("unknown rating target type %q", targetType)
}

// RecalculateRating recomputes the aggregate rating of a restaurant or
// delivery agent from the ratings table and mirrors the snapshot in Redis.
func (s *Store) RecalculateRating(targetType string, targetID int) error {
	table, err := targetTable(targetType)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf(`
		UPDATE %s
		SET rating = (
			SELECT COALESCE(ROUND(AVG(score::numeric), 2), 0)
			FROM ratings
			WHERE target_type = $1 AND target_id = $2
		),
		rating_count = (
			SELECT COUNT(*)
			FROM ratings
			WHERE target_type = $1 AND target_id = $2
		)
		WHERE id = $2
	`, table), targetType, targetID)
	if err != nil {
		return err
	}

	var rating float64
	var ratingCount int
	if err := s.db.QueryRow(fmt.Sprintf(`
		SELECT COALESCE(rating, 0), COALESCE(rating_count, 0)
		FROM %s
		WHERE id = $1
	`, table), targetID).Scan(&rating, &ratingCount); err != nil {
		return err
	}

	key := fmt.Sprintf("rating:%s:%d", targetType, targetID)
	s.rdb.HSet(s.ctx, key, map[string]interface{}{
		"rating":       rating,
		"rating_count": ratingCount,
		"last_updated": time.Now().Unix(),
	})
	s.rdb.Expire(s.ctx, key, 24*time.Hour)

	leaderboardKey := fmt.Sprintf("leaderboard:%s", targetType)
	s.rdb.ZAdd(s.ctx, leaderboardKey, redis.Z{
		Score:  rating,
		Member: strconv.Itoa(targetID),
	})
	return nil
}

// BumpOrderVolume increments the restaurant's order counter for today.
// Daily counters live a week.
func (s *Store) BumpOrderVolume(restaurantID int) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("analytics:daily:%s:orders", today)
	s.rdb.ZIncrBy(s.ctx, dailyKey, 1, strconv.Itoa(restaurantID))
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)
	return nil
}
