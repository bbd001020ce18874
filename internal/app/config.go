package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"miniCalc/internal/api/http"
	"miniCalc/internal/infrastructure/click"
	"miniCalc/internal/infrastructure/kafka"
	"miniCalc/internal/infrastructure/mongo"
	"miniCalc/internal/infrastructure/pg"
	"miniCalc/internal/infrastructure/redis"
)

// AppName — префикс переменных окружения: CALC_SERVER_PORT, CALC_DB_URL и т.д.
const AppName = "CALC"

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALC.
// Хранилища и инфраструктура опциональны: пустой адрес выключает компонент.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
