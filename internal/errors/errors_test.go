package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CodeLLMUnavailable, "model unavailable", CategoryTemporary)

	assert.Equal(t, "[LLM_UNAVAILABLE] model unavailable", err.Error())
}

func TestWrapIncludesInner(t *testing.T) {
	inner := stderrors.New("connection refused")
	err := Wrap(inner, CodeTasteUnavailable, "taste graph call failed", CategoryTemporary)

	assert.Contains(t, err.Error(), "taste graph call failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeTasteUnavailable, "x", CategoryTemporary))
}

func TestConstructorsSetRetryable(t *testing.T) {
	assert.True(t, Temporary(CodeTasteTimeout, "x").Retryable)
	assert.True(t, RateLimit(CodeLLMRateLimit, "x", time.Second).Retryable)
	assert.False(t, Permanent(CodeLLMParseError, "x").Retryable)
	assert.False(t, User(CodeConfigInvalid, "x").Retryable)
	assert.False(t, System(CodeHistoryStoreFailed, "x").Retryable)
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryPermanent, GetCategory(Permanent(CodeLLMParseError, "x")))
	assert.Equal(t, CategoryUser, GetCategory(User(CodeConfigInvalid, "x")))

	// wrapped AppErrors are still found
	wrapped := fmt.Errorf("outer: %w", System(CodeHistoryStoreFailed, "x"))
	assert.Equal(t, CategorySystem, GetCategory(wrapped))

	// unknown errors default to temporary
	assert.Equal(t, CategoryTemporary, GetCategory(stderrors.New("plain")))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(Temporary(CodeTasteTimeout, "x")))
	assert.False(t, IsRetryable(Permanent(CodeLLMParseError, "x")))
	assert.True(t, IsRetryable(stderrors.New("unknown")))
}

func TestGetRetryAfter(t *testing.T) {
	err := RateLimit(CodeLLMRateLimit, "slow down", 3*time.Second)

	assert.Equal(t, 3*time.Second, GetRetryAfter(err))
	assert.Equal(t, time.Duration(0), GetRetryAfter(stderrors.New("plain")))
	assert.Equal(t, time.Duration(0), GetRetryAfter(nil))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "temporary", CategoryTemporary.String())
	assert.Equal(t, "rate_limit", CategoryRateLimit.String())
	assert.Equal(t, "unknown", Category(99).String())
}

func TestErrorsAsFindsAppError(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("wrapped: %w", Temporary(CodeTasteTimeout, "timeout"))

	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, CodeTasteTimeout, appErr.Code)
}
