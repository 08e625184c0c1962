package search

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls per key: only the last call of a burst
// proceeds, after the key has been quiet for the configured delay.
type Debouncer struct {
	delay time.Duration

	mu   sync.Mutex
	gens map[string]uint64
}

// NewDebouncer creates a Debouncer. A non-positive delay disables debouncing.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay: delay,
		gens:  make(map[string]uint64),
	}
}

// Wait blocks for the quiet period and reports whether this call is still the
// latest one for key. A superseded call returns false without waiting for the
// rest of the burst. The context error is returned if ctx ends first.
func (d *Debouncer) Wait(ctx context.Context, key string) (bool, error) {
	if d.delay <= 0 {
		return true, nil
	}

	d.mu.Lock()
	d.gens[key]++
	gen := d.gens[key]
	d.mu.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		d.release(key, gen)
		return false, ctx.Err()
	case <-timer.C:
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gens[key] != gen {
		return false, nil
	}
	delete(d.gens, key)
	return true, nil
}

// release drops the key if gen is still the latest, so abandoned keys don't accumulate.
func (d *Debouncer) release(key string, gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gens[key] == gen {
		delete(d.gens, key)
	}
}

// Pending returns the number of keys with a call in flight.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.gens)
}
