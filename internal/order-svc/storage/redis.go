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

func (c *RedisCache) DetailKey(orderID int) string {
	return "order:detail:" + strconv.Itoa(orderID)
}

func (c *RedisCache) PendingKey(restaurantID int) string {
	return "order:pending:" + strconv.Itoa(restaurantID)
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
