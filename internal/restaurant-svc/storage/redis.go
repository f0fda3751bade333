package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

func (c *RedisCache) ListKey() string {
	return "restaurant:list"
}

func (c *RedisCache) ProfileKey(restaurantID int) string {
	return "restaurant:profile:" + strconv.Itoa(restaurantID)
}

// MenuKey is parameterized by the category filter so each filtered view
// caches independently.
func (c *RedisCache) MenuKey(restaurantID int, category string) string {
	return "restaurant:menu:" + strconv.Itoa(restaurantID) + ":" + category
}

func (c *RedisCache) MenuPattern(restaurantID int) string {
	return "restaurant:menu:" + strconv.Itoa(restaurantID) + ":*"
}

func (c *RedisCache) CategoriesKey(restaurantID int) string {
	return "restaurant:categories:" + strconv.Itoa(restaurantID)
}

// GetJSON reports whether the key was present and, if so, decodes into v.
func (c *RedisCache) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, v)
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

func (c *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	keys, err := c.Client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
