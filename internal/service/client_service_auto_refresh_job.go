package service

import (
	"context"
	"sync"
	"time"
)

// DefaultAutoRefreshInterval is used when no positive interval is given.
const DefaultAutoRefreshInterval = time.Minute

type autoRefreshJob struct {
	refresher backgroundRefresher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoRefreshJob creates an autoRefreshJob driving refresher. The job is
// idle until Start is called.
func NewAutoRefreshJob(refresher backgroundRefresher) AutoRefreshJob {
	return &autoRefreshJob{refresher: refresher}
}

// Start implements AutoRefreshJob. It stops any previously running job, then
// launches a goroutine that waits the full interval before every tick. On a
// tick it re-checks the auto-refresh flag, exits when it is off and launches a
// background refresh otherwise. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *autoRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultAutoRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.refresher.AutoRefreshEnabled().Get() {
					return
				}
				j.refresher.refreshInBackground()
			}
		}
	}()
}

// Stop implements AutoRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *autoRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
