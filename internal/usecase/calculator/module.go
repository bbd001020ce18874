package calculator

import (
	"log/slog"
	"strconv"
	"time"

	"miniCalc/internal/ports"
)

// historyLimit — сколько последних операций отдаёт /history.
const historyLimit = 100

// historyCacheKey — единственный ключ кэша ответа /history.
const historyCacheKey = "history:v1"

// historyCacheTTL — время жизни закэшированной истории. Кэш короткий и
// инвалидируется после каждой вставки, так что свежая запись видна сразу.
const historyCacheTTL = 30 * time.Second

// eventKey формирует ключ Kafka-сообщения по id сохранённой операции, например "op-42".
func eventKey(id int64) string {
	return "op-" + strconv.FormatInt(id, 10)
}

var _ ports.ICalculatorUseCase = (*UseCase)(nil)

// UseCase — бизнес-логика калькулятора. Кэш, брокер и аналитика опциональны (nil — выключено).
type UseCase struct {
	repo      ports.IOperationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IOperationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс калькулятора.
func New(repo ports.IOperationRepository, cache ports.ICache, broker ports.IProducer, analytics ports.IOperationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, broker: broker, analytics: analytics, log: log}
}
