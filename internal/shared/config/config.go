package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	Name     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	SSLMode  string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type Config struct {
	AppEnv      string `validate:"required,oneof=development staging production test"`
	Port        string `validate:"required,numeric"`
	DB          DatabaseConfig
	RedisAddr   string `validate:"required,hostname_port"`
	KafkaBroker string
	JWTSecret   string        `validate:"required,min=16"`
	TokenTTL    time.Duration `validate:"gt=0"`
	Timezone    string        `validate:"required,timezone"`
	CORSOrigins []string

	location *time.Location
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Location is the zone used for "today" and daily report boundaries.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Load reads .env (when present) and the process environment into a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, which keeps tests off the real environment.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		AppEnv: get("APP_ENV", "development"),
		Port:   get("PORT", "9007"),
		DB: DatabaseConfig{
			Host:     get("DB_HOST", "localhost"),
			User:     get("DB_USER", "postgres"),
			Password: get("DB_PASSWORD", ""),
			Name:     get("DB_NAME", "fieldtrack"),
			Port:     get("DB_PORT", "5432"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		RedisAddr:   get("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: get("KAFKA_BROKER", ""),
		JWTSecret:   get("JWT_SECRET", ""),
		TokenTTL:    ttl,
		Timezone:    get("APP_TIMEZONE", "UTC"),
		CORSOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	cfg.location = loc

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
