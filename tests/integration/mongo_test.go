package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"miniCalc/internal/domain"
	"miniCalc/internal/infrastructure/mongo"
	"miniCalc/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var mongoContainer *testutil.MongoContainer

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *mongo.OperationRepo {
	t.Helper()

	client, err := mongo.New(context.Background(), &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "minicalc_test",
		Collection: "calculations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	_, err = client.Coll().DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err, "не удалось очистить коллекцию")

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return mongo.NewOperationRepo(client, newTestLogger())
}

func TestMongoRepo_SaveOperation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	saved, err := repo.SaveOperation(ctx, domain.Operation{A: 2, B: 3, Op: domain.OpSub, Result: -1})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, 2.0, saved.A)
	assert.Equal(t, 3.0, saved.B)
	assert.Equal(t, domain.OpSub, saved.Op)
	assert.Equal(t, -1.0, saved.Result)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestMongoRepo_GetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.SaveOperation(ctx, domain.Operation{
			A: float64(i), B: 1, Op: domain.OpAdd, Result: float64(i) + 1,
		})
		require.NoError(t, err)
	}

	list, err := repo.GetHistory(ctx, 3)
	require.NoError(t, err)

	// лимит и порядок: новые сначала
	require.Len(t, list, 3)
	assert.Equal(t, 4.0, list[0].A, "первой должна быть последняя вставленная операция")
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].CreatedAt, list[i].CreatedAt)
	}
}

func TestMongoRepo_GetHistory_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)

	list, err := repo.GetHistory(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}
