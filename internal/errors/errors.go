// Package errors provides error classification and recovery utilities
// for TrendSeer.
//
// Failures from the two external collaborators (taste graph, LLM) are
// classified here so callers can decide between retry and the
// deterministic fallback path. None of these errors should ever reach
// the chat surface; only CodeConfigInvalid is allowed to halt startup.
package errors

import (
	"errors"
	"strings"
	"time"
)

// ============================================================
// Error Categories
// ============================================================

// Category defines the type of error for handling decisions.
type Category int

const (
	// CategoryTemporary errors are retryable (network timeouts, 5xx)
	CategoryTemporary Category = iota

	// CategoryPermanent errors are not retryable (4xx, malformed payloads)
	CategoryPermanent

	// CategoryUser errors are due to user input
	CategoryUser

	// CategorySystem errors are system-level (disk, permissions)
	CategorySystem

	// CategoryRateLimit errors are due to API rate limiting
	CategoryRateLimit
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryTemporary:
		return "temporary"
	case CategoryPermanent:
		return "permanent"
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryRateLimit:
		return "rate_limit"
	default:
		return "unknown"
	}
}

// ============================================================
// AppError - Main Error Type
// ============================================================

// AppError is the main error type for all TrendSeer errors.
type AppError struct {
	// Code is a unique error code for programmatic handling
	Code string

	// Message is a user-friendly error message
	Message string

	// Category determines how the error should be handled
	Category Category

	// Inner is the underlying error
	Inner error

	// Retryable indicates if the operation can be retried
	Retryable bool

	// RetryAfter is the suggested delay before retry
	RetryAfter time.Duration
}

// Error returns the error message.
func (e *AppError) Error() string {
	var sb strings.Builder

	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(e.Code)
		sb.WriteString("] ")
	}

	sb.WriteString(e.Message)

	if e.Inner != nil {
		innerMsg := e.Inner.Error()
		if innerMsg != "" && innerMsg != e.Message {
			sb.WriteString(": ")
			sb.WriteString(innerMsg)
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Inner
}

// ============================================================
// Error Constructors
// ============================================================

// New creates a new AppError.
func New(code, message string, category Category) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Category:  category,
		Retryable: category == CategoryTemporary || category == CategoryRateLimit,
	}
}

// Wrap wraps an existing error with a code and category.
func Wrap(err error, code, message string, category Category) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:      code,
		Message:   message,
		Category:  category,
		Inner:     err,
		Retryable: category == CategoryTemporary || category == CategoryRateLimit,
	}
}

// Temporary creates a retryable temporary error.
func Temporary(code, message string) *AppError {
	return New(code, message, CategoryTemporary)
}

// Permanent creates a non-retryable permanent error.
func Permanent(code, message string) *AppError {
	return New(code, message, CategoryPermanent)
}

// User creates a user input error.
func User(code, message string) *AppError {
	return New(code, message, CategoryUser)
}

// System creates a system-level error.
func System(code, message string) *AppError {
	return New(code, message, CategorySystem)
}

// RateLimit creates a rate limit error with a retry delay.
func RateLimit(code, message string, retryAfter time.Duration) *AppError {
	e := New(code, message, CategoryRateLimit)
	e.RetryAfter = retryAfter
	return e
}

// ============================================================
// Error Codes
// ============================================================

const (
	// Taste-graph errors
	CodeTasteUnavailable = "TASTE_UNAVAILABLE"
	CodeTasteTimeout     = "TASTE_TIMEOUT"
	CodeTasteBadRequest  = "TASTE_BAD_REQUEST"

	// LLM errors
	CodeLLMUnavailable = "LLM_UNAVAILABLE"
	CodeLLMTimeout     = "LLM_TIMEOUT"
	CodeLLMParseError  = "LLM_PARSE_ERROR"
	CodeLLMRateLimit   = "LLM_RATE_LIMIT"

	// Profile errors
	CodeEmptyProfile = "EMPTY_PROFILE"

	// Storage errors
	CodeHistoryStoreFailed = "HISTORY_STORE_FAILED"

	// Config errors
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeConfigNotFound = "CONFIG_NOT_FOUND"

	// Circuit breaker rejection
	CodeCircuitOpen = "CIRCUIT_OPEN"
)

// ============================================================
// Helpers
// ============================================================

// GetCategory extracts the category from an error.
// Returns CategoryTemporary for non-AppError errors (the safe default
// for external calls).
func GetCategory(err error) Category {
	if err == nil {
		return CategoryTemporary
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category
	}

	return CategoryTemporary
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}

	// Default to retryable for unknown errors
	return true
}

// GetRetryAfter returns the suggested retry duration.
func GetRetryAfter(err error) time.Duration {
	if err == nil {
		return 0
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.RetryAfter
	}

	return 0
}
