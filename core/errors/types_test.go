package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "subreddits", Message: "cannot be empty"}

	expected := "validation error on field 'subreddits': cannot be empty"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "lookback_days", Message: "must be positive"}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(stderrors.New("plain error")) {
		t.Error("IsValidation should return false for plain errors")
	}
}

func TestIsValidation_Wrapped(t *testing.T) {
	err := fmt.Errorf("rejecting request: %w", &ValidationError{Field: "keywords", Message: "required"})

	if !IsValidation(err) {
		t.Error("IsValidation should unwrap wrapped errors")
	}
}

func TestUpstreamError_Error(t *testing.T) {
	withStatus := &UpstreamError{Source: "stackoverflow", StatusCode: 503, Message: "backend unavailable"}
	if withStatus.Error() != "upstream error from stackoverflow: 503 - backend unavailable" {
		t.Errorf("unexpected message: %q", withStatus.Error())
	}

	withoutStatus := &UpstreamError{Source: "reddit", Message: "connection refused"}
	if withoutStatus.Error() != "upstream error from reddit: connection refused" {
		t.Errorf("unexpected message: %q", withoutStatus.Error())
	}
}

func TestIsUpstream(t *testing.T) {
	err := &UpstreamError{Source: "github", Message: "timeout"}

	if !IsUpstream(err) {
		t.Error("IsUpstream should return true for UpstreamError")
	}
	if IsUpstream(&ValidationError{Field: "x"}) {
		t.Error("IsUpstream should return false for other error types")
	}
}

func TestCacheError_Unwrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := &CacheError{Op: "set", Key: "trends:2025-10-21", Err: inner}

	if !stderrors.Is(err, inner) {
		t.Error("CacheError should unwrap to the backend error")
	}
	if !IsCache(err) {
		t.Error("IsCache should return true for CacheError")
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "report", ID: "abc"}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if err.Error() != "report not found: abc" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	inner := stderrors.New("boom")
	wrapped := WrapError(inner, "fetching tags")
	if wrapped.Error() != "fetching tags: boom" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !stderrors.Is(wrapped, inner) {
		t.Error("wrapped error should match the inner error")
	}
}
