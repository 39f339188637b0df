package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/almanac/internal/config"
	"github.com/cory-johannsen/almanac/internal/server"
)

type failingHealth struct {
	calls atomic.Int32
}

func (f *failingHealth) Health(context.Context, time.Duration) error {
	f.calls.Add(1)
	return errors.New("ping timeout")
}

func TestHealthFailureKeepsPromptRunning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	a := &app{
		cfg:    config.Config{REPL: config.REPLConfig{HealthInterval: 5 * time.Millisecond}},
		logger: zap.New(core),
	}
	health := &failingHealth{}

	var promptStopped atomic.Bool
	quit := make(chan struct{})
	lc := server.NewLifecycle(zap.NewNop())
	lc.Add("prompt", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return nil
			}
		},
		StopFn: func() { promptStopped.Store(true) },
	})
	lc.Add("store-health", a.healthTicker(health))

	done := make(chan error, 1)
	go func() { done <- lc.Run(context.Background()) }()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("store health check failed").Len() >= 3
	}, 2*time.Second, 5*time.Millisecond)
	assert.False(t, promptStopped.Load(), "a failed health check must not stop the prompt")

	close(quit)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down after quit")
	}
	assert.GreaterOrEqual(t, health.calls.Load(), int32(3))
}
