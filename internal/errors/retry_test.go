package errors

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) *Policy {
	return &Policy{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		RetryIf:      IsRetryable,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		if calls < 3 {
			return Temporary(CodeTasteTimeout, "timeout")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		return Temporary(CodeTasteTimeout, "timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "max retries exceeded")
}

func TestDoStopsOnPermanentError(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastPolicy(3), func() error {
		calls++
		return Permanent(CodeLLMParseError, "bad payload")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := fastPolicy(5)
	policy.InitialDelay = time.Second
	policy.MaxDelay = time.Second

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- Do(ctx, policy, func() error {
			calls++
			return Temporary(CodeTasteTimeout, "timeout")
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDoWithResultReturnsValue(t *testing.T) {
	calls := 0

	got, err := DoWithResult(context.Background(), fastPolicy(3), func() (string, error) {
		calls++
		if calls == 1 {
			return "", Temporary(CodeTasteTimeout, "timeout")
		}
		return "value", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, 2, calls)
}

func TestDoWithResultZeroOnPermanent(t *testing.T) {
	got, err := DoWithResult(context.Background(), fastPolicy(3), func() (int, error) {
		return 42, Permanent(CodeLLMParseError, "bad")
	})

	require.Error(t, err)
	assert.Zero(t, got)
}

func TestDoHonorsRetryAfter(t *testing.T) {
	calls := 0
	start := time.Now()

	err := Do(context.Background(), fastPolicy(2), func() error {
		calls++
		if calls == 1 {
			return RateLimit(CodeLLMRateLimit, "slow down", 20*time.Millisecond)
		}
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNoRetryPolicy(t *testing.T) {
	calls := 0

	err := Do(context.Background(), NoRetry(), func() error {
		calls++
		return Temporary(CodeTasteTimeout, "timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

// ============================================================
// Circuit breaker
// ============================================================

func testBreaker(maxFailures int, reset time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("test", &CircuitBreakerConfig{
		MaxFailures:      maxFailures,
		ResetTimeout:     reset,
		HalfOpenAttempts: 1,
	})
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	cb := testBreaker(2, time.Minute)
	fail := func() error { return Temporary(CodeTasteUnavailable, "down") }

	require.Error(t, cb.Execute(fail))
	assert.Equal(t, StateClosed, cb.State())

	require.Error(t, cb.Execute(fail))
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(func() error {
		t.Fatal("should not be called while open")
		return nil
	})
	require.Error(t, err)

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, CodeCircuitOpen, appErr.Code)
}

func TestCircuitBreakerRecoversViaHalfOpen(t *testing.T) {
	cb := testBreaker(1, 10*time.Millisecond)

	require.Error(t, cb.Execute(func() error { return Temporary(CodeTasteUnavailable, "down") }))
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(15 * time.Millisecond)

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreakerReset(t *testing.T) {
	cb := testBreaker(1, time.Minute)

	cb.Execute(func() error { return Temporary(CodeTasteUnavailable, "down") })
	require.Equal(t, StateOpen, cb.State())

	cb.Reset()
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.Execute(func() error { return nil }))
}

func TestExecuteCircuitBreakerWithResult(t *testing.T) {
	cb := testBreaker(1, time.Minute)

	got, err := ExecuteCircuitBreakerWithResult(cb, func() (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	_, err = ExecuteCircuitBreakerWithResult(cb, func() (string, error) {
		return "", Temporary(CodeTasteUnavailable, "down")
	})
	require.Error(t, err)

	_, err = ExecuteCircuitBreakerWithResult(cb, func() (string, error) {
		t.Fatal("should not be called while open")
		return "", nil
	})
	require.Error(t, err)
}

func TestFallback(t *testing.T) {
	err := Fallback(
		func() error { return Temporary(CodeTasteUnavailable, "down") },
		func(err error) error { return nil },
	)
	assert.NoError(t, err)

	called := false
	err = Fallback(
		func() error { return nil },
		func(err error) error { called = true; return nil },
	)
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestFallbackWithResult(t *testing.T) {
	got, err := FallbackWithResult(
		func() ([]string, error) { return nil, Temporary(CodeTasteUnavailable, "down") },
		func(err error) ([]string, error) { return []string{"sample"}, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"sample"}, got)
}
