package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	APIKey    string          `json:"api_key,omitempty"`
	Traccar   TraccarConfig   `json:"traccar"`
	Alerts    AlertsConfig    `json:"alerts"`
	Reconcile ReconcileConfig `json:"reconcile"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// TraccarConfig points at the external GPS provider. WebhookToken, when set,
// is required as a ?token= query parameter on inbound webhook calls.
type TraccarConfig struct {
	URL          string        `json:"url"`
	User         string        `json:"user"`
	Password     string        `json:"password,omitempty"`
	WebhookToken string        `json:"webhook_token,omitempty"`
	Timeout      time.Duration `json:"timeout"`
}

type AlertsConfig struct {
	StopSpeedKmh          float64       `json:"stop_speed_kmh"`
	MinStopDuration       time.Duration `json:"min_stop_duration"`
	DefaultStopMinutes    int           `json:"default_stop_minutes"`
	DefaultOfflineMinutes int           `json:"default_offline_minutes"`
	OfflineAfter          time.Duration `json:"offline_after"`
}

type ReconcileConfig struct {
	Interval time.Duration `json:"interval"`
	Disabled bool          `json:"disabled"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "cookie_tms"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Traccar: TraccarConfig{
			URL:          getEnv("TRACCAR_URL", "http://traccar-local:8082"),
			User:         getEnv("TRACCAR_USER", "admin"),
			Password:     getEnv("TRACCAR_PASSWORD", "admin"),
			WebhookToken: getEnv("TRACCAR_WEBHOOK_TOKEN", ""),
			Timeout:      getEnvDuration("TRACCAR_TIMEOUT", 5*time.Second),
		},
		Alerts: AlertsConfig{
			StopSpeedKmh:          getEnvFloat("ALERT_STOP_SPEED_KMH", 5.0),
			MinStopDuration:       getEnvDuration("ALERT_MIN_STOP_DURATION", time.Minute),
			DefaultStopMinutes:    getEnvInt("ALERT_DEFAULT_STOP_MINUTES", 5),
			DefaultOfflineMinutes: getEnvInt("ALERT_DEFAULT_OFFLINE_MINUTES", 10),
			OfflineAfter:          getEnvDuration("ALERT_OFFLINE_AFTER", 10*time.Minute),
		},
		Reconcile: ReconcileConfig{
			Interval: getEnvDuration("RECONCILE_INTERVAL", 15*time.Minute),
			Disabled: getEnvBool("RECONCILE_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("traccar_url", cfg.Traccar.URL))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Traccar.URL == "" {
		return errors.New("TRACCAR_URL required")
	}

	if c.Alerts.StopSpeedKmh <= 0 {
		return errors.New("ALERT_STOP_SPEED_KMH must be positive")
	}

	if c.Reconcile.Interval < time.Minute {
		return errors.New("RECONCILE_INTERVAL must be at least 1m")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
