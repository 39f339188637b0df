package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerCallsUntilStopped(t *testing.T) {
	var calls atomic.Int32
	tk := NewTicker(5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- tk.Start(context.Background()) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	tk.Stop()
	tk.Stop()
	assert.NoError(t, <-done)
}

func TestTickerReturnsFailure(t *testing.T) {
	boom := errors.New("ping failed")
	tk := NewTicker(5*time.Millisecond, func(context.Context) error { return boom })
	assert.ErrorIs(t, tk.Start(context.Background()), boom)
}

func TestTickerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tk := NewTicker(time.Hour, func(context.Context) error { return nil })
	assert.NoError(t, tk.Start(ctx))
}
