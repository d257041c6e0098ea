package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Error() != "INTERNAL_ERROR: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAppError_InvalidConfig(t *testing.T) {
	err := InvalidConfig("logging.level", "loud", "must be one of [debug info]")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", err.Code)
	}
	if err.Details["field"] != "logging.level" {
		t.Errorf("expected field detail, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Error(), "got: loud") {
		t.Errorf("expected value in message, got %q", err.Error())
	}
}

func TestAppError_ConfigLoadUnwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ConfigLoad("/etc/ergolog.yml", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "cause: permission denied") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Validation("bad").WithDetail("fields", 2)
	if err.Details["fields"] != 2 {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Internal(nil))
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeInternal {
		t.Fatalf("expected wrapped AppError, got %v %v", appErr, ok)
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError should see through wrapping")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error is not an AppError")
	}
	if !HasCode(wrapped, ErrCodeInternal) || HasCode(wrapped, ErrCodeConfigLoad) {
		t.Error("HasCode mismatch")
	}
}
