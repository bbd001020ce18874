package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "miniCalc/internal/api/http"
	"miniCalc/internal/api/http/controllers/calculator"
	"miniCalc/internal/api/http/controllers/system"
	"miniCalc/internal/infrastructure/click"
	"miniCalc/internal/infrastructure/kafka"
	"miniCalc/internal/infrastructure/mongo"
	"miniCalc/internal/infrastructure/noop"
	"miniCalc/internal/infrastructure/pg"
	"miniCalc/internal/infrastructure/redis"
	"miniCalc/internal/pkg/logger"
	"miniCalc/internal/ports"
	calcUsecase "miniCalc/internal/usecase/calculator"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run собирает зависимости и запускает HTTP-сервер (блокирующий вызов).
// Недоступная инфраструктура не роняет процесс: сервис стартует в урезанном
// режиме (без персистентности, кэша или аналитики) — это осознанный риск дизайна.
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo := a.buildRepository(log)
	defer closeRepo()

	var cache ports.ICache
	if a.cfg.Redis.Enabled() {
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, history cache disabled", "error", err)
		} else {
			defer rdb.Close()
			cache = redis.NewCache(rdb, log)
		}
	}

	var producer ports.IProducer
	if a.cfg.Kafka.Enabled() {
		p := kafka.NewProducer(&a.cfg.Kafka)
		defer p.Close()
		producer = p
	}

	var analytics ports.IOperationAnalytics
	if a.cfg.Kafka.Enabled() && a.cfg.ClickHouse.Enabled() {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			log.Warn("clickhouse unavailable, analytics disabled", "error", err)
		} else {
			defer ch.Close()
			writer := click.NewOperationWriter(ch)
			if err := writer.EnsureTable(ctx); err != nil {
				log.Warn("analytics table bootstrap failed", "error", err)
			}
			analytics = writer
		}
	}

	uc := calcUsecase.New(repo, cache, producer, analytics, log)

	if analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		calculator.New(uc, log))

	log.Info("application started", "http", a.cfg.Server.Host+":"+a.cfg.Server.Port)
	return srv.Start(ctx)
}

// buildRepository выбирает хранилище: PostgreSQL по CALC_DB_URL, иначе MongoDB
// по CALC_MONGO_URI, иначе заглушка (режим без персистентности). Любая ошибка
// подключения или бутстрапа логируется, процесс продолжает работать.
func (a *App) buildRepository(log *slog.Logger) (ports.IOperationRepository, func()) {
	noClose := func() {}

	if a.cfg.DB.Enabled() {
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			log.Error("postgres unavailable, running without persistence", "error", err)
			return noop.NewOperationRepo(), noClose
		}
		if err := pg.Migrate(context.Background(), db, log); err != nil {
			// Пул оставляем: схема может быть частично настроена, вставки дадут
			// warning клиенту, а не ошибку.
			log.Error("schema bootstrap failed", "error", err)
		}
		return pg.NewOperationRepo(db, log), func() { _ = db.Close() }
	}

	if a.cfg.Mongo.Enabled() {
		cli, err := mongo.New(context.Background(), &a.cfg.Mongo)
		if err != nil {
			log.Error("mongo unavailable, running without persistence", "error", err)
			return noop.NewOperationRepo(), noClose
		}
		return mongo.NewOperationRepo(cli, log), func() { _ = cli.Disconnect(context.Background()) }
	}

	log.Warn("no store configured, running without persistence")
	return noop.NewOperationRepo(), noClose
}
