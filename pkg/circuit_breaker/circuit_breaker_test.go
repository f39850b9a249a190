package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cb := newCircuitBreaker(10, 2*time.Second, 0.30, 2, clock)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, Closed, cb.State())

	// 2 of 10 failed: still below 30%
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, Closed, cb.State())

	// third failure reaches the percentile
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	// after the timeout one probe is let through and fails
	now = now.Add(3 * time.Second)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), ErrOpenCB)

	// recovers after enough half-open successes
	now = now.Add(3 * time.Second)
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(1, time.Hour, 1, 1)
	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "closed", Closed.String())
	require.Equal(t, "open", Open.String())
	require.Equal(t, "half-open", HalfOpen.String())
	require.Equal(t, "unknown", Status(0).String())
}
