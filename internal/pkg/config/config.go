package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional: Datastore endpoint/credential; absence degrades to "not configured" instead of failing startup
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Datastore DatastoreConfig
	CORS      CORSConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DatastoreConfig struct {
	URL          string        `envconfig:"DATASTORE_URL"`
	Key          string        `envconfig:"DATASTORE_KEY"`
	MaxConns     int32         `envconfig:"DATASTORE_MAX_CONNS" default:"10"`
	QueryTimeout time.Duration `envconfig:"DATASTORE_QUERY_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// BookingConfig controls the optional reserve-if-available path. With
// EnforceAvailability off, bookings are inserted without any availability
// check or lock.
type BookingConfig struct {
	EnforceAvailability bool          `envconfig:"BOOKING_ENFORCE_AVAILABILITY" default:"false"`
	LockRedisAddr       string        `envconfig:"BOOKING_LOCK_REDIS_ADDR"`
	LockRedisPassword   string        `envconfig:"BOOKING_LOCK_REDIS_PASSWORD"`
	LockRedisDB         int           `envconfig:"BOOKING_LOCK_REDIS_DB" default:"0"`
	LockTTL             time.Duration `envconfig:"BOOKING_LOCK_TTL" default:"10s"`
	SideWriteTimeout    time.Duration `envconfig:"SIDE_WRITE_TIMEOUT" default:"3s"`
}

// IsConfigured reports whether both datastore variables are present.
func (c DatastoreConfig) IsConfigured() bool {
	return strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.Key) != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Datastore: DatastoreConfig{
			URL:          "postgres://test@localhost:15433/test_db?sslmode=disable",
			Key:          "test",
			MaxConns:     4,
			QueryTimeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		RateLimit: RateLimitConfig{
			PerMinute: 6000,
			Burst:     1000,
		},
		Booking: BookingConfig{
			LockTTL:          5 * time.Second,
			SideWriteTimeout: time.Second,
		},
	}
}
