package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/dashboard-backend/internal/weather"
)

const defaultInterval = 10 * time.Minute

// Prober is the part of weather.Service the scheduler drives.
type Prober interface {
	Probe(ctx context.Context, loc weather.Coordinates) weather.ProbeResult
}

// Scheduler periodically probes the upstream forecast provider for configured locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	prober    Prober
	locations []weather.Coordinates
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. timeout bounds each individual probe.
func New(locations []weather.Coordinates, interval, timeout time.Duration, prober Prober) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		prober:    prober,
		locations: locations,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no probe locations configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = defaultInterval
	}

	_, err := s.scheduler.Every(interval).SingletonMode().Do(s.runProbes)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) runProbes() {
	log.Println("scheduler: running upstream probe job")

	var wg sync.WaitGroup
	for _, loc := range s.locations {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx := context.Background()
			if s.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, s.timeout)
				defer cancel()
			}

			res := s.prober.Probe(ctx, loc)
			if !res.OK {
				log.Printf("scheduler: probe failed for %.4f,%.4f: %s", loc.Lat, loc.Lon, res.Error)
			}
		}()
	}
	wg.Wait()
	log.Println("scheduler: completed upstream probe job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
