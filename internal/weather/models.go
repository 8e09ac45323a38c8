package weather

import (
	"errors"
	"fmt"
	"time"
)

// WeekDays is the number of calendar days, starting today, reported in a WeatherResponse.
const WeekDays = 6

var (
	// ErrUpstream marks any failure of the forecast provider: network, status, or payload shape.
	ErrUpstream = errors.New("upstream forecast unavailable")

	// ErrInsufficientDays is returned when the provider sent fewer than WeekDays daily entries.
	ErrInsufficientDays = fmt.Errorf("%w: fewer than %d daily entries", ErrUpstream, WeekDays)
)

// Category is the display label a weather code is mapped onto.
type Category string

const (
	CategorySun      Category = "sun"
	CategoryCloudSun Category = "cloud-sun"
	CategoryCloud    Category = "cloud"
	CategoryFog      Category = "fog"
	CategoryRain     Category = "rain"
	CategorySnow     Category = "snow"
	// CategoryLighting is a wire-format label consumed by the dashboard front-end; keep the spelling.
	CategoryLighting Category = "lighting"
)

// Coordinates identifies the point a forecast is requested for.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UpstreamForecast is the provider's forecast decoded into plain values.
// Daily slices are indexed by day, 0 = today.
type UpstreamForecast struct {
	CurrentTemperature float64
	CurrentCode        int

	DailyMin   []float64
	DailyMax   []float64
	DailyCodes []int
}

// PeriodSummary is a single temperature reading with its category.
type PeriodSummary struct {
	Temperature float64  `json:"temp"`
	State       Category `json:"state"`
}

// DaySummary is one calendar day of the weekly view.
type DaySummary struct {
	Min   float64  `json:"min"`
	Max   float64  `json:"max"`
	State Category `json:"state"`
}

// DayPeriods is the simplified morning/midday/evening view of today.
type DayPeriods struct {
	Morning PeriodSummary `json:"morning"`
	Day     PeriodSummary `json:"day"`
	Evening PeriodSummary `json:"evening"`
}

// Week is keyed day_1..day_6.
type Week map[string]DaySummary

// WeatherResponse is the body served by GET /weather.
type WeatherResponse struct {
	Main PeriodSummary `json:"main"`
	Day  DayPeriods    `json:"day"`
	Week Week          `json:"week"`
}

// ProbeResult records the outcome of one scheduled upstream reachability check.
type ProbeResult struct {
	Location  Coordinates `json:"location"`
	Provider  string      `json:"provider"`
	Timestamp time.Time   `json:"timestamp"` // always UTC
	OK        bool        `json:"ok"`
	LatencyMS int64       `json:"latency_ms"`
	Error     string      `json:"error,omitempty"`
}
