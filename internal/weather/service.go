package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Service fetches forecasts from the provider and shapes them for the dashboard.
type Service struct {
	provider ForecastProvider
	probes   ProbeStore
}

// NewService creates a new Service. probes may be nil when probing is disabled.
func NewService(provider ForecastProvider, probes ProbeStore) *Service {
	return &Service{
		provider: provider,
		probes:   probes,
	}
}

// GetWeather performs one upstream fetch for loc and builds the response.
// Any failure aborts the whole request; nothing partial is returned.
func (s *Service) GetWeather(ctx context.Context, loc Coordinates) (WeatherResponse, error) {
	if s.provider == nil {
		return WeatherResponse{}, fmt.Errorf("no forecast provider configured")
	}

	log.Printf("DEBUG: GetWeather called for %.4f,%.4f via %s", loc.Lat, loc.Lon, s.provider.Name())

	forecast, err := s.provider.FetchForecast(ctx, loc)
	if err != nil {
		return WeatherResponse{}, err
	}

	return BuildResponse(forecast)
}

// Probe runs a full weather fetch for loc and records the outcome.
func (s *Service) Probe(ctx context.Context, loc Coordinates) ProbeResult {
	start := time.Now()
	_, err := s.GetWeather(ctx, loc)

	result := ProbeResult{
		Location:  loc,
		Timestamp: start.UTC(),
		OK:        err == nil,
		LatencyMS: time.Since(start).Milliseconds(),
	}
	if s.provider != nil {
		result.Provider = s.provider.Name()
	}
	if err != nil {
		result.Error = err.Error()
	}

	if s.probes != nil {
		s.probes.SaveProbe(result)
	}
	return result
}

// LatestProbe delegates to the underlying probe store.
func (s *Service) LatestProbe() (ProbeResult, error) {
	if s.probes == nil {
		return ProbeResult{}, fmt.Errorf("probing is disabled")
	}
	return s.probes.GetLatest()
}
