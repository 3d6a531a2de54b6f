package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ProductionEnv is the APP_ENV value that turns on secure cross-site cookies.
const ProductionEnv = "production"

// DefaultCORSOrigin is the local storefront dev server. Credentialed
// requests need a concrete origin; browsers reject "*" with cookies.
const DefaultCORSOrigin = "http://localhost:5173"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	AppEnv          string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	StripeSecretKey string
	PaymentCurrency string
	CORSOrigins     []string
	CacheTTL        time.Duration
	CartRetention   time.Duration
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	return &Config{
		ServerPort:      getEnv("PORT", "5000"),
		AppEnv:          getEnv("APP_ENV", "development"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "HealthShop"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "change-me"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		PaymentCurrency: strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", DefaultCORSOrigin)),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		CartRetention:   time.Duration(getEnvInt("CART_RETENTION_DAYS", 0)) * 24 * time.Hour,
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

// IsProduction reports whether cookies must be issued for cross-site HTTPS use.
func (c *Config) IsProduction() bool {
	return c.AppEnv == ProductionEnv
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
