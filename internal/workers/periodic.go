package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/logger"
)

// DefaultInterval is used when a job is configured without an interval.
const DefaultInterval = 5 * time.Minute

// PeriodicJob calls fn on every tick of its interval.
type PeriodicJob struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicJob creates an idle job. A zero or negative interval falls back
// to [DefaultInterval].
func NewPeriodicJob(name string, interval time.Duration, fn func(ctx context.Context) error, logger *logger.Logger) *PeriodicJob {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &PeriodicJob{name: name, interval: interval, fn: fn, logger: logger}
}

// Run implements [Worker]. A running job is stopped first.
func (j *PeriodicJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.fn(jobCtx); err != nil {
					j.logger.Err(err).
						Str("func", "PeriodicJob.Run").
						Str("job", j.name).
						Msg("periodic job failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. Safe to call when the job is not running.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
