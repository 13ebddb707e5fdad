package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/pipeline"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	TripsCSV  string // Raw trip records
	ZonesCSV  string // Zone lookup table
	ExportDir string
	DefaultK  int // Default top-K capacity for zone rankings

	Cleaning pipeline.Thresholds
}

// Load reads configuration from the environment, with a .env file as an
// optional local override. Every value has a working default.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[Config] loaded .env overrides")
	}

	cfg := &Config{
		Port:      envString("PORT", ":8080"),
		DBPath:    envString("DB_PATH", "./data/mobility.db"),
		TripsCSV:  envString("TRIPS_CSV", "./data/yellow_tripdata.csv"),
		ZonesCSV:  envString("ZONES_CSV", "./data/taxi_zone_lookup.csv"),
		ExportDir: envString("EXPORT_DIR", "./data/exports"),
		DefaultK:  envInt("TOP_ZONES_K", 20),
		Cleaning:  pipeline.DefaultThresholds,
	}

	// Cleaning bounds are overridable without code changes
	cfg.Cleaning.MaxDistanceMiles = envFloat("CLEAN_MAX_DISTANCE_MILES", cfg.Cleaning.MaxDistanceMiles)
	cfg.Cleaning.MaxFareAmount = envFloat("CLEAN_MAX_FARE", cfg.Cleaning.MaxFareAmount)
	cfg.Cleaning.MaxPassengers = envInt("CLEAN_MAX_PASSENGERS", cfg.Cleaning.MaxPassengers)
	cfg.Cleaning.MinDurationMinutes = envFloat("CLEAN_MIN_DURATION_MIN", cfg.Cleaning.MinDurationMinutes)
	cfg.Cleaning.MaxDurationMinutes = envFloat("CLEAN_MAX_DURATION_MIN", cfg.Cleaning.MaxDurationMinutes)
	cfg.Cleaning.MaxSpeedMPH = envFloat("CLEAN_MAX_SPEED_MPH", cfg.Cleaning.MaxSpeedMPH)

	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] ignoring invalid %s=%q", key, v)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[Config] ignoring invalid %s=%q", key, v)
		return fallback
	}
	return f
}
