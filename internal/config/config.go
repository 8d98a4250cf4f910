package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFirebase = "firebase"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Store    StoreConfig    `json:"store"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Admin    AdminConfig    `json:"admin"`
	Map      MapConfig      `json:"map"`
	Session  SessionConfig  `json:"session"`
	Webhook  WebhookConfig  `json:"webhook"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// StoreConfig points at the remote JSON database.
type StoreConfig struct {
	Driver    string        `json:"driver"`
	URL       string        `json:"url"`
	AuthToken string        `json:"auth_token,omitempty"`
	Timeout   time.Duration `json:"timeout"`
}

type PostgresConfig struct {
	Disabled bool   `json:"disabled"`
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
	Addr         string        `json:"addr"`
	Password     string        `json:"password,omitempty"`
	DB           int           `json:"db"`
	ZoneCacheTTL time.Duration `json:"zone_cache_ttl"`
	// WarmInterval of zero disables the background refresh.
	WarmInterval time.Duration `json:"warm_interval"`
}

type AdminConfig struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	SecretKey    string `json:"-"`
}

type MapConfig struct {
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
}

type SessionConfig struct {
	TTL time.Duration `json:"ttl"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

func Load(ctx context.Context) (*Config, error) {

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
		Store: StoreConfig{
			Driver:    strings.ToLower(getEnv("STORE_DRIVER", StoreDriverFirebase)),
			URL:       getEnv("FIREBASE_URL", ""),
			AuthToken: getEnv("FIREBASE_AUTH", ""),
			Timeout:   getEnvDuration("STORE_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Disabled:        getEnvBool("AUDIT_DISABLED", false),
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "volunteers_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", "redis-local:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			ZoneCacheTTL: getEnvDuration("ZONE_CACHE_TTL", 60*time.Second),
			WarmInterval: getEnvDuration("ZONE_CACHE_WARM_INTERVAL", 45*time.Second),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			SecretKey:    getEnv("ADMIN_SECRET_KEY", ""),
		},
		Map: MapConfig{
			CenterLat: getEnvFloat("MAP_CENTER_LAT", 39.424540),
			CenterLon: getEnvFloat("MAP_CENTER_LON", -0.442743),
		},
		Session: SessionConfig{
			TTL: getEnvDuration("SESSION_TTL", 12*time.Hour),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("store_driver", cfg.Store.Driver),
		slog.Bool("audit_disabled", cfg.Postgres.Disabled),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("webhook_disabled", cfg.Webhook.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Store.Driver {
	case StoreDriverFirebase:
		if c.Store.URL == "" {
			return errors.New("FIREBASE_URL required when STORE_DRIVER=firebase")
		}
	case StoreDriverMemory:
	default:
		return errors.New("STORE_DRIVER must be firebase or memory")
	}

	if !c.Postgres.Disabled && c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Admin.PasswordHash == "" || c.Admin.SecretKey == "" {
		return errors.New("ADMIN_PASSWORD_HASH and ADMIN_SECRET_KEY required")
	}

	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 || c.Map.CenterLon < -180 || c.Map.CenterLon > 180 {
		return errors.New("MAP_CENTER_LAT/MAP_CENTER_LON out of range")
	}

	if c.Redis.WarmInterval < 0 || (c.Redis.WarmInterval > 0 && c.Redis.WarmInterval >= c.Redis.ZoneCacheTTL) {
		return errors.New("ZONE_CACHE_WARM_INTERVAL must be shorter than ZONE_CACHE_TTL")
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		return errors.New("WEBHOOK_URL required unless WEBHOOK_DISABLED=true")
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
