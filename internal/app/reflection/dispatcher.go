package reflection

import (
	"context"
	"sync"

	"github.com/IgorKammerGrahl/MoodTrack/internal/observability"
)

// Dispatcher is the concurrency boundary for fire-and-forget work.
// Dispatch returns immediately; the task runs on its own goroutine
// with a background context, since it outlives the HTTP request that
// scheduled it. This is the only place allowed to drop a failure, and
// it does so with a structured log line, never silently.
type Dispatcher struct {
	wg sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Dispatch schedules fn and returns without waiting for it. Panics are
// recovered and errors logged; neither reaches the caller.
func (d *Dispatcher) Dispatch(task string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				observability.Logger().Error("async task panicked", "task", task, "panic", r)
			}
		}()

		if err := fn(context.Background()); err != nil {
			observability.Logger().Error("async task failed", "task", task, "error", err)
		}
	}()
}

// Wait blocks until every dispatched task has finished. Used on
// shutdown and by tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
