package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"

	"github.com/i474232898/dashboard-backend/internal/weather"
)

// DefaultOpenMeteoURL is the public Open-Meteo forecast endpoint.
const DefaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

const openMeteoDailyFields = "weathercode,temperature_2m_max,temperature_2m_min"

var validate = validator.New()

// OpenMeteoProvider implements the weather.ForecastProvider interface for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider against baseURL (DefaultOpenMeteoURL when empty).
func NewOpenMeteoProvider(client *http.Client, baseURL string, breaker BreakerConfig) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Breaker: breaker,
		},
		circuit: newCircuitBreaker("openmeteo", breaker),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// openMeteoPayload mirrors the subset of the forecast response we read.
// Pointers distinguish a missing field from a zero value.
type openMeteoPayload struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature" validate:"required"`
		WeatherCode *int     `json:"weathercode" validate:"required"`
	} `json:"current_weather" validate:"required"`
	Daily *struct {
		TemperatureMin []float64 `json:"temperature_2m_min" validate:"required,min=6"`
		TemperatureMax []float64 `json:"temperature_2m_max" validate:"required,min=6"`
		WeatherCode    []int     `json:"weathercode" validate:"required,min=6"`
	} `json:"daily" validate:"required"`
}

func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, loc weather.Coordinates) (weather.UpstreamForecast, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
		values.Set("current_weather", "true")
		values.Set("daily", openMeteoDailyFields)
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.UpstreamForecast{}, err
	}
	defer resp.Body.Close()

	var payload openMeteoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.UpstreamForecast{}, fmt.Errorf("%w: decode forecast: %v", weather.ErrUpstream, err)
	}
	if err := validate.Struct(payload); err != nil {
		return weather.UpstreamForecast{}, fmt.Errorf("%w: invalid forecast payload: %v", weather.ErrUpstream, err)
	}

	return weather.UpstreamForecast{
		CurrentTemperature: *payload.CurrentWeather.Temperature,
		CurrentCode:        *payload.CurrentWeather.WeatherCode,
		DailyMin:           payload.Daily.TemperatureMin,
		DailyMax:           payload.Daily.TemperatureMax,
		DailyCodes:         payload.Daily.WeatherCode,
	}, nil
}
