package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniCalc/internal/infrastructure/redis"
	"miniCalc/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Addr:     redisContainer.Addr(),
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, newTestLogger())
}

func TestRedisCache_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "history:v1", `[{"id":1}]`, 30*time.Second)
	require.NoError(t, err, "Set должен успешно сохранить")

	value, found, err := cache.Get(ctx, "history:v1")
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)

	value, found, err := cache.Get(context.Background(), "нет_такого_ключа")

	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.Empty(t, value)
}

func TestRedisCache_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "history:v1", "[]", 30*time.Second))

	// инвалидация после вставки
	require.NoError(t, cache.Delete(ctx, "history:v1"))

	_, found, err := cache.Get(ctx, "history:v1")
	require.NoError(t, err)
	assert.False(t, found, "после Delete ключа быть не должно")

	// повторное удаление отсутствующего ключа — не ошибка
	assert.NoError(t, cache.Delete(ctx, "history:v1"))
}

func TestRedisCache_TTLExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "history:v1", "[]", time.Second))

	time.Sleep(1500 * time.Millisecond)

	_, found, err := cache.Get(ctx, "history:v1")
	require.NoError(t, err)
	assert.False(t, found, "ключ должен истечь по TTL")
}
