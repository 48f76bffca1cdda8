package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBPassword = "PORTAL_DB_PASSWORD"
	EnvDBHost     = "PORTAL_DB_HOST"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Portal   PortalConfig   `toml:"portal"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к PostgreSQL
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PortalConfig параметры предметной области
type PortalConfig struct {
	Timezone string `toml:"timezone"`  // в этой зоне разбираются даты командировок
	LoanDays int    `toml:"loan_days"` // срок выдачи книги
	QRSize   int    `toml:"qr_size"`   // сторона PNG этикетки в пикселях
}

// Location загружает часовой пояс портала
func (p PortalConfig) Location() (*time.Location, error) {
	return time.LoadLocation(p.Timezone)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
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
			ServiceName: "smc-staffportal",
		},
		Portal: PortalConfig{
			Timezone: "Asia/Kuala_Lumpur",
			LoanDays: 14,
			QRSize:   256,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(EnvDBHost); v != "" {
		cfg.Database.Host = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is empty")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is empty")
	}
	if !isKnownLevel(c.Logs.Level) {
		problems = append(problems, fmt.Sprintf("logs.level %q is unknown", c.Logs.Level))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if _, err := c.Portal.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("portal.timezone %q: %v", c.Portal.Timezone, err))
	}
	if c.Portal.LoanDays <= 0 {
		problems = append(problems, "portal.loan_days must be positive")
	}
	if c.Portal.QRSize <= 0 {
		problems = append(problems, "portal.qr_size must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func isKnownLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
