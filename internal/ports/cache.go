package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"
)

// ICache — контракт кэша ответа /history. Значение — сериализованный JSON списка операций.
// Delete вызывается после каждой успешной вставки, чтобы свежая запись сразу попала в историю.
type ICache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
