package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/i474232898/dashboard-backend/internal/weather"
)

type recordingProber struct {
	mu    sync.Mutex
	calls []weather.Coordinates
	done  chan struct{}
}

func (p *recordingProber) Probe(ctx context.Context, loc weather.Coordinates) weather.ProbeResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, loc)
	if len(p.calls) == 2 {
		close(p.done)
	}
	return weather.ProbeResult{Location: loc, OK: true}
}

func TestStartWithoutLocations(t *testing.T) {
	s := New(nil, time.Minute, time.Second, &recordingProber{})
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}

func TestStartProbesEveryLocationImmediately(t *testing.T) {
	locs := []weather.Coordinates{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}
	p := &recordingProber{done: make(chan struct{})}

	s := New(locs, time.Hour, time.Second, p)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	select {
	case <-p.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the first probe run")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.calls) != 2 {
		t.Fatalf("expected 2 probes, got %d", len(p.calls))
	}
}
