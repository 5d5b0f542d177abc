package config

import (
	"time"

	"github.com/maxviazov/cricket-records-service/internal/logger"
)

// Backends the records service can read from.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	SQLite   SQLiteConfig        `mapstructure:"sqlite"`
	Records  RecordsConfig       `mapstructure:"records"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	Backend         string        `mapstructure:"backend" validate:"oneof=postgres sqlite"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// PostgresConfig holds connection and pool tuning. Lifetimes are in seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"gte=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"gte=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"gte=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"gte=0"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RecordsConfig bounds records queries.
type RecordsConfig struct {
	DefaultPageSize int           `mapstructure:"default_page_size" validate:"gte=1"`
	MaxPageSize     int           `mapstructure:"max_page_size" validate:"gtefield=DefaultPageSize"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout" validate:"gt=0"`
}
