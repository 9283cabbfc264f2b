// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Booking knobs (seat
// limits, occupancy bounds, simulated failure rates) live here so the
// whole flow is tunable without code changes.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	SessionSecret string // secret used to sign session tokens

	StoreBackend string // booking store backend: memory, redis or mysql
	DBUser       string // database username (mysql backend)
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name

	MaxSeatsPerBooking int // per-booking seat limit
	TakenMin           int // minimum nominal occupied seats per showtime
	TakenMax           int // maximum nominal occupied seats per showtime

	NetworkDelay       time.Duration // simulated round-trip latency
	SeatFailureRate    float64       // probability CreateBooking is rejected
	PaymentFailureRate float64       // probability ConfirmPayment fails
	SeatHoldTTL        time.Duration // seat hold duration; 0 disables holds

	CatalogBaseURL string // movie catalog base URL
	CatalogAPIKey  string // optional catalog bearer token
	ScheduleDays   int    // how many days of showtimes to offer
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// Everything else falls back to a sensible default.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		SessionSecret: must("SESSION_SECRET"),

		StoreBackend: getenv("BOOKING_STORE", "memory"),
		DBUser:       os.Getenv("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       os.Getenv("DB_NAME"),

		MaxSeatsPerBooking: envInt("MAX_SEATS_PER_BOOKING", 8),
		TakenMin:           envInt("TAKEN_MIN", 5),
		TakenMax:           envInt("TAKEN_MAX", 25),

		NetworkDelay:       envDur("NETWORK_DELAY", 400*time.Millisecond),
		SeatFailureRate:    envFloat("SEAT_FAILURE_RATE", 0.07),
		PaymentFailureRate: envFloat("PAYMENT_FAILURE_RATE", 0.07),
		SeatHoldTTL:        envDur("SEAT_HOLD_TTL", 0),

		CatalogBaseURL: getenv("CATALOG_BASE_URL", "https://api.themoviedb.org/3"),
		CatalogAPIKey:  os.Getenv("CATALOG_API_KEY"),
		ScheduleDays:   envInt("SCHEDULE_DAYS", 7),
	}
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or the given default.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}
