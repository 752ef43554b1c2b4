// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig holds the HTTP server settings. Timeouts are seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig holds the logger settings. An empty file means stdout.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds the Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig holds the JWT verification settings.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// BookingConfig holds the operating-hours window for viewings.
type BookingConfig struct {
	OpenHour  int `toml:"open_hour"`
	CloseHour int `toml:"close_hour"`
}

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// OperatingHours converts the booking section into the domain window.
func (c BookingConfig) OperatingHours() domain.OperatingHours {
	return domain.OperatingHours{OpenHour: c.OpenHour, CloseHour: c.CloseHour}
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
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
			ServiceName: "office-plus-booking",
		},
		Booking: BookingConfig{
			OpenHour:  domain.DefaultOpenHour,
			CloseHour: domain.DefaultCloseHour,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535], got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Booking.OpenHour < 0 || c.Booking.CloseHour > 24 || c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("booking hours must satisfy 0 <= open_hour < close_hour <= 24, got %d and %d",
			c.Booking.OpenHour, c.Booking.CloseHour)
	}
	return nil
}
