package dispatch

import (
	"context"
	"sync"
	"time"
)

// DefaultGap keeps aggregate throughput at or below 3 upstream calls/second.
const DefaultGap = 334 * time.Millisecond

// Dispatcher releases one grant per gap across all callers, in strict
// arrival order. The wait list and draining flag are the only mutable
// shared state; at most one drain loop runs at a time.
type Dispatcher struct {
	gap time.Duration

	mu       sync.Mutex
	queue    []chan struct{}
	draining bool
}

// New creates a Dispatcher with the given minimum gap between grants.
// Non-positive gaps fall back to DefaultGap.
func New(gap time.Duration) *Dispatcher {
	if gap <= 0 {
		gap = DefaultGap
	}
	return &Dispatcher{gap: gap}
}

// Acquire blocks until it is this caller's turn to issue an upstream call.
// Grants are first-asked, first-served. Cancelling ctx abandons the wait;
// a grant already scheduled for an abandoned waiter still spends its gap,
// so cancellation never lets later callers jump the pace.
func (d *Dispatcher) Acquire(ctx context.Context) error {
	grant := make(chan struct{})

	d.mu.Lock()
	d.queue = append(d.queue, grant)
	if !d.draining {
		d.draining = true
		go d.drain()
	}
	d.mu.Unlock()

	select {
	case <-grant:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// drain pops the queue head, grants it, waits the gap, and repeats until the
// queue is empty. The draining flag is cleared under the same lock that
// observes the empty queue, so a concurrent enqueue either sees the loop
// still running or starts a fresh one — never two.
func (d *Dispatcher) drain() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.draining = false
			d.mu.Unlock()
			return
		}
		grant := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		close(grant)
		time.Sleep(d.gap)
	}
}

// Pending returns the number of callers still waiting for a grant.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Gap returns the configured minimum gap between grants.
func (d *Dispatcher) Gap() time.Duration {
	return d.gap
}
