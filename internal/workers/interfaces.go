// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution in the background and returns at once;
// the work ends when ctx is cancelled or Stop is called. Stop blocks until
// the worker has fully exited and is a no-op when the worker is idle.
//
// Example implementation:
//
//	type MyWorker struct{ stop context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.stop = context.WithCancel(ctx)
//	    go process(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Refresher is the session the refresh worker keeps up to date.
type Refresher interface {
	IsAuthenticated() bool
	Refresh(ctx context.Context) error
}
