// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/anime-verse/internal/logger"
)

const defaultRefreshInterval = 15 * time.Minute

type refreshWorker struct {
	session  Refresher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a Worker that calls session.Refresh every
// interval while the session is authenticated. If interval is zero or
// negative it defaults to 15 minutes. The worker is idle until Run is called.
func NewRefreshWorker(session Refresher, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &refreshWorker{session: session, interval: interval, logger: logger}
}

// Run implements Worker. It stops any previously running loop, then launches
// a background goroutine that refreshes the session on every tick. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *refreshWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited.
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *refreshWorker) refresh(ctx context.Context) {
	if !w.session.IsAuthenticated() {
		return
	}
	if err := w.session.Refresh(ctx); err != nil {
		w.logger.Warn().Err(err).Str("func", "refreshWorker.refresh").Msg("session refresh failed")
	}
}
