package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"miniCalc/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Хранит сериализованный ответ /history
// под одним ключом; Delete вызывается после каждой успешной вставки.
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает значение по ключу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, key string) (value string, found bool, err error) {
	s, err := c.cli.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return "", false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return "", false, err
	}
	return s, true, nil
}

// Set сохраняет значение по ключу с TTL.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.cli.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет ключ. Отсутствие ключа ошибкой не считается.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.cli.Client.Del(ctx, key).Err(); err != nil {
		c.log.Debug("cache delete failed", "key", key, "error", err)
		return err
	}
	return nil
}
