package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/i474232898/dashboard-backend/internal/weather"
	"github.com/i474232898/dashboard-backend/internal/weather/providers"
)

var configKeys = []string{
	"HOST", "PORT", "CORS_ALLOW_ORIGINS", "OPEN_METEO_URL", "UPSTREAM_TIMEOUT",
	"BREAKER_MAX_FAILURES", "BREAKER_OPEN_TIMEOUT", "PROBE_LOCATION", "PROBE_INTERVAL", "PROBE_MAX_HISTORY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:3000", "http://127.0.0.1:3000"}) {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.OpenMeteoURL != providers.DefaultOpenMeteoURL {
		t.Fatalf("unexpected upstream url %q", cfg.OpenMeteoURL)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.UpstreamTimeout)
	}
	if cfg.BreakerMaxFailures != 5 || cfg.BreakerOpenTimeout != 30*time.Second {
		t.Fatalf("unexpected breaker settings %d/%v", cfg.BreakerMaxFailures, cfg.BreakerOpenTimeout)
	}
	if len(cfg.ProbeLocations) != 0 {
		t.Fatalf("expected probing disabled, got %v", cfg.ProbeLocations)
	}
	if cfg.ProbeInterval != 10*time.Minute || cfg.ProbeMaxHistory != 20 {
		t.Fatalf("unexpected probe settings %v/%d", cfg.ProbeInterval, cfg.ProbeMaxHistory)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://dash.example , http://localhost:5173 ")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("PROBE_LOCATION", "55.75,37.61; -33.87,151.21")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://dash.example", "http://localhost:5173"}) {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.UpstreamTimeout)
	}
	want := []weather.Coordinates{{Lat: 55.75, Lon: 37.61}, {Lat: -33.87, Lon: 151.21}}
	if !reflect.DeepEqual(cfg.ProbeLocations, want) {
		t.Fatalf("unexpected probe locations %v", cfg.ProbeLocations)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"PORT":                 "http",
		"UPSTREAM_TIMEOUT":     "soon",
		"BREAKER_MAX_FAILURES": "0",
		"PROBE_INTERVAL":       "10",
		"PROBE_MAX_HISTORY":    "many",
		"PROBE_LOCATION":       "55.75",
		"CORS_ALLOW_ORIGINS":   "*",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
