package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string
	Timezone *time.Location

	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	DBStatementTimeout time.Duration
	DBAutoMigrate      bool
	DBSeed             bool

	JWTSecret          string
	JWTTTL             time.Duration
	BlacklistRetention time.Duration

	SentryDSN          string
	CorsOrigins        []string
	RateLimitPerMinute int
	TrustedProxies     []string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env (when present) into the process env. Values already
// set in the environment win.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "schoolhub")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_STATEMENT_TIMEOUT_MS", 3000)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("DB_SEED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("TOKEN_BLACKLIST_TTL_DAYS", 7)
	v.SetDefault("SENTRY_DSN", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.AutomaticEnv()
	return v
}

// Load reads the whole configuration. JWT_SECRET is mandatory.
func Load() (*Config, error) {
	LoadEnv()
	v := newViper()

	tz := strings.TrimSpace(v.GetString("APP_TIMEZONE"))
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	cfg := &Config{
		Env:      strings.ToLower(v.GetString("APP_ENV")),
		Port:     v.GetString("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Timezone: loc,

		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSLMODE"),
		DBStatementTimeout: time.Duration(v.GetInt("DB_STATEMENT_TIMEOUT_MS")) * time.Millisecond,
		DBAutoMigrate:      v.GetBool("DB_AUTO_MIGRATE"),
		DBSeed:             v.GetBool("DB_SEED"),

		JWTSecret:          strings.TrimSpace(v.GetString("JWT_SECRET")),
		JWTTTL:             v.GetDuration("JWT_TTL"),
		BlacklistRetention: time.Duration(v.GetInt("TOKEN_BLACKLIST_TTL_DAYS")) * 24 * time.Hour,

		SentryDSN:          v.GetString("SENTRY_DSN"),
		CorsOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		TrustedProxies:     splitList(v.GetString("TRUSTED_PROXIES")),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is not set")
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = 24 * time.Hour
	}
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 100
	}
	return cfg, nil
}

// DSN builds the postgres URL with a per-session statement_timeout.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolhub&options=-c%%20statement_timeout=%d",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
		c.DBStatementTimeout.Milliseconds(),
	)
}

func (c *Config) IsProd() bool { return c.Env == "prod" || c.Env == "production" }

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
