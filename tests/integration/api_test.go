package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calccontroller "miniCalc/internal/api/http/controllers/calculator"
	"miniCalc/internal/infrastructure/noop"
	"miniCalc/internal/infrastructure/pg"
	"miniCalc/internal/ports"
	calcusecase "miniCalc/internal/usecase/calculator"
)

// newAPIRouter собирает полный HTTP-стек поверх заданного репозитория
// (контроллер -> use case -> репозиторий), без кэша и брокера.
func newAPIRouter(repo ports.IOperationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := calcusecase.New(repo, nil, nil, nil, newTestLogger())
	r := gin.New()
	calccontroller.New(uc, newTestLogger()).RegisterRoutes(r)
	return r
}

func postCalc(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getHistory(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Полный флоу с PostgreSQL: вычислили, сохранили, увидели в истории первой записью.
func TestAPI_CalcThenHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	r := newAPIRouter(pg.NewOperationRepo(db, newTestLogger()))

	w := postCalc(t, r, `{"a":2,"b":3,"op":"add"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var calcResp struct {
		Result    float64 `json:"result"`
		Operation *struct {
			ID     int64   `json:"id"`
			A      float64 `json:"a"`
			B      float64 `json:"b"`
			Op     string  `json:"op"`
			Result float64 `json:"result"`
		} `json:"operation"`
		Warning string `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &calcResp))
	assert.Equal(t, 5.0, calcResp.Result)
	assert.Empty(t, calcResp.Warning)
	require.NotNil(t, calcResp.Operation, "при настроенном хранилище в ответе должна быть сохранённая запись")
	assert.Greater(t, calcResp.Operation.ID, int64(0))
	assert.Equal(t, 5.0, calcResp.Operation.Result)

	// вторая операция становится первой в истории
	w = postCalc(t, r, `{"a":10,"b":4,"op":"sub"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = getHistory(t, r)
	require.Equal(t, http.StatusOK, w.Code)

	var history []struct {
		A      float64 `json:"a"`
		B      float64 `json:"b"`
		Op     string  `json:"op"`
		Result float64 `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "sub", history[0].Op)
	assert.Equal(t, 6.0, history[0].Result)
	assert.Equal(t, "add", history[1].Op)
}

// Ошибки валидации не создают записей в хранилище.
func TestAPI_ValidationDoesNotPersist(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	r := newAPIRouter(pg.NewOperationRepo(db, newTestLogger()))

	w := postCalc(t, r, `{"a":"x","b":3,"op":"add"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postCalc(t, r, `{"a":1,"b":3,"op":"mul"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM calculations").Scan(&count))
	assert.Equal(t, 0, count, "невалидные запросы не должны порождать записей")
}

// Режим без персистентности: результат без operation, история пустая.
// Контейнеры не нужны, но флоу тот же end-to-end.
func TestAPI_PersistenceDisabled(t *testing.T) {
	r := newAPIRouter(noop.NewOperationRepo())

	w := postCalc(t, r, `{"a":1,"b":1,"op":"add"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":2}`, w.Body.String())

	w = getHistory(t, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
