package testutil

import (
	"errors"
	"testing"

	apperrors "splitledger/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertErrorKind checks that err is classified as the expected kind.
func AssertErrorKind(t *testing.T, err error, expected apperrors.Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", expected)
	}
	if kind := apperrors.KindOf(err); kind != expected {
		t.Errorf("expected %s error, got %s: %v", expected, kind, err)
	}
}
