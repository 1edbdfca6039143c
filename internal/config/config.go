package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	Environment string
	DBPath      string
	JWTSecret   string
	RedisAddr   string // empty disables the redis check-in store

	// Timezone is the reference timezone used to derive the local weekday
	// and hour when sampling "now" for resolution and aggregation.
	Timezone *time.Location

	// LiveWindow is the trailing window in which a check-in counts as a
	// live signal.
	LiveWindow time.Duration

	// HeatmapReplication is the point multiplier offered to density-only
	// renderers via the replicate query flag.
	HeatmapReplication int
}

// Load reads configuration from environment variables, applying defaults
// for anything unset. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/venues.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = "America/Sao_Paulo"
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, falling back to UTC", tzName)
		tz = time.UTC
	}

	liveWindow := 5 * time.Minute
	if v := os.Getenv("LIVE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			liveWindow = time.Duration(n) * time.Second
		}
	}

	replication := 10
	if v := os.Getenv("HEATMAP_REPLICATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			replication = n
		}
	}

	return &Config{
		Port:               port,
		Environment:        os.Getenv("ENVIRONMENT"),
		DBPath:             dbPath,
		JWTSecret:          jwtSecret,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		Timezone:           tz,
		LiveWindow:         liveWindow,
		HeatmapReplication: replication,
	}
}
