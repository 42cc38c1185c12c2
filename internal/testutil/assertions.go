package testutil

import (
	"errors"
	"testing"

	apperrors "finmate/internal/errors"
)

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAppError fails the test unless err is an AppError with the given code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", code)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError with code %q, got %T: %v", code, err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected AppError code %q, got %q (%v)", code, appErr.Code, appErr)
	}
}
