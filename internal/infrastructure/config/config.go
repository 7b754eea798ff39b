package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, default=your-secret-key"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`
	BodyLimit string        `env:"BODY_LIMIT, default=10K"`

	// CORSOrigins is comma-separated; "*" allows every origin (development).
	CORSOrigins []string `env:"CORS_ORIGIN, default=*"`

	Admin     AdminConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// AdminConfig seeds the built-in administrator account at startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// RedisConfig is optional: an empty Addr disables the rate limiter.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the service runs in development mode, which
// enables pretty logging and diagnostic detail in error responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
