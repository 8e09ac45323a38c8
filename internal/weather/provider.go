package weather

import (
	"context"
)

// ForecastProvider abstracts the upstream forecast source (Open-Meteo).
type ForecastProvider interface {
	Name() string
	FetchForecast(ctx context.Context, loc Coordinates) (UpstreamForecast, error)
}

// ProbeStore is the contract the in-memory probe history must satisfy.
type ProbeStore interface {
	SaveProbe(result ProbeResult)
	GetLatest() (ProbeResult, error)
}
