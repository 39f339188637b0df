package server

import (
	"context"
	"sync"
	"time"
)

// Ticker is a Service that calls fn every interval until stopped. A failing fn
// ends the service with that error.
type Ticker struct {
	interval time.Duration
	fn       func(ctx context.Context) error
	stop     chan struct{}
	once     sync.Once
}

// NewTicker creates a Ticker.
//
// Precondition: interval must be > 0; fn must be non-nil.
func NewTicker(interval time.Duration, fn func(ctx context.Context) error) *Ticker {
	return &Ticker{
		interval: interval,
		fn:       fn,
		stop:     make(chan struct{}),
	}
}

// Start blocks, calling fn on every tick.
func (t *Ticker) Start(ctx context.Context) error {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.stop:
			return nil
		case <-tick.C:
			if err := t.fn(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

// Stop ends Start. It is safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
