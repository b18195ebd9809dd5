package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CONFIG_PATH"

// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	RoomCatalog RoomCatalogConfig `toml:"room_catalog"`
	Redis       RedisConfig       `toml:"redis"`
	Pricing     PricingConfig     `toml:"pricing"`
	Grid        GridConfig        `toml:"grid"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN формирует строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RoomCatalogConfig настройки клиента каталога номеров
type RoomCatalogConfig struct {
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"` // секунды
	RetryCount int    `toml:"retry_count"`
}

// RedisConfig настройки кеша каталога номеров
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	RoomsTTL int    `toml:"rooms_ttl"` // секунды
}

// PricingConfig настройки калькулятора цены
type PricingConfig struct {
	OverflowRatePerPerson int64 `toml:"overflow_rate_per_person"`
}

// GridConfig ограничения сетки доступности
type GridConfig struct {
	MaxWindowDays int `toml:"max_window_days"`
}

// Load читает конфигурацию из TOML файла
// Если задана переменная CONFIG_PATH, используется она
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "room_assignment_service",
		},
		RoomCatalog: RoomCatalogConfig{
			Timeout:    5,
			RetryCount: 2,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			RoomsTTL: 300,
		},
		Pricing: PricingConfig{
			OverflowRatePerPerson: domain.DefaultOverflowRatePerPerson,
		},
		Grid: GridConfig{
			MaxWindowDays: domain.DefaultMaxWindowDays,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.dbname and database.user are required", ErrInvalidConfig)
	}
	if c.RoomCatalog.URL == "" {
		return fmt.Errorf("%w: room_catalog.url is required", ErrInvalidConfig)
	}
	if c.RoomCatalog.Timeout <= 0 {
		return fmt.Errorf("%w: room_catalog.timeout must be positive", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Pricing.OverflowRatePerPerson < 0 {
		return fmt.Errorf("%w: pricing.overflow_rate_per_person must not be negative", ErrInvalidConfig)
	}
	if c.Grid.MaxWindowDays <= 0 {
		return fmt.Errorf("%w: grid.max_window_days must be positive", ErrInvalidConfig)
	}
	return nil
}
