package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/dashboard-backend/internal/weather"
	"github.com/i474232898/dashboard-backend/internal/weather/providers"
)

// DefaultAllowedOrigins are the local front-end dev server origins.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

type AppConfig struct {
	Host string
	Port string

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string

	// Upstream forecast provider.
	OpenMeteoURL       string
	UpstreamTimeout    time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration

	// ProbeLocations are checked every ProbeInterval; empty disables probing.
	ProbeLocations  []weather.Coordinates
	ProbeInterval   time.Duration
	ProbeMaxHistory int
}

// Addr returns the listen address.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Host = getenvDefault("HOST", "0.0.0.0")
	cfg.Port = getenvDefault("PORT", "8000")
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg.AllowedOrigins = splitList(os.Getenv("CORS_ALLOW_ORIGINS"))
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultAllowedOrigins
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			return nil, fmt.Errorf("invalid CORS_ALLOW_ORIGINS: wildcard is not allowed with credentials")
		}
	}

	cfg.OpenMeteoURL = getenvDefault("OPEN_METEO_URL", providers.DefaultOpenMeteoURL)

	var err error
	if cfg.UpstreamTimeout, err = getenvDuration("UPSTREAM_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.BreakerOpenTimeout, err = getenvDuration("BREAKER_OPEN_TIMEOUT", "30s"); err != nil {
		return nil, err
	}
	maxFailures, err := getenvInt("BREAKER_MAX_FAILURES", 5)
	if err != nil {
		return nil, err
	}
	if maxFailures <= 0 {
		return nil, fmt.Errorf("invalid BREAKER_MAX_FAILURES: must be positive")
	}
	cfg.BreakerMaxFailures = uint32(maxFailures)

	// Probe: default every 10 minutes, matching the dashboard's own refresh period.
	if cfg.ProbeInterval, err = getenvDuration("PROBE_INTERVAL", "10m"); err != nil {
		return nil, err
	}
	if cfg.ProbeMaxHistory, err = getenvInt("PROBE_MAX_HISTORY", 20); err != nil {
		return nil, err
	}

	locs, err := loadProbeLocations()
	if err != nil {
		return nil, err
	}
	cfg.ProbeLocations = locs

	return cfg, nil
}

// loadProbeLocations parses PROBE_LOCATION as "lat,lon[;lat,lon...]".
func loadProbeLocations() ([]weather.Coordinates, error) {
	raw := strings.TrimSpace(os.Getenv("PROBE_LOCATION"))
	if raw == "" {
		return nil, nil
	}

	var locs []weather.Coordinates
	for _, pair := range strings.Split(raw, ";") {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid PROBE_LOCATION %q: expected lat,lon", pair)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PROBE_LOCATION latitude: %w", err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PROBE_LOCATION longitude: %w", err)
		}
		locs = append(locs, weather.Coordinates{Lat: lat, Lon: lon})
	}

	return locs, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
