package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidPhone,
		ErrMissingUTR,
		ErrInvalidPaymentMode,
		ErrCartEmpty,
		ErrInvalidPrice,
		ErrDuplicateMenuItem,
		ErrMenuItemName,
		ErrInvalidCredentials,
		ErrOTPInvalid,
		ErrOTPNotFound,
		ErrOTPMaxAttempts,
		ErrOTPResendLimit,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
		ErrSessionNotFound,
		ErrSessionExpired,
		ErrUnauthorized,
		ErrShopClosed,
		ErrItemNotFound,
		ErrItemUnavailable,
	}

	for i, a := range sentinels {
		if a.Error() == "" {
			t.Errorf("sentinel %d has empty message", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %q should not match %q", a, b)
			}
		}
	}
}

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("placing order: %w", ErrMissingUTR)

	if !errors.Is(wrapped, ErrMissingUTR) {
		t.Error("expected wrapped error to match ErrMissingUTR")
	}
	if errors.Is(wrapped, ErrCartEmpty) {
		t.Error("wrapped error should not match an unrelated sentinel")
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{ErrMissingUTR, "missing transaction reference"},
		{ErrInvalidPhone, "phone number must be exactly 10 digits"},
		{ErrShopClosed, "the canteen is currently closed"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expected {
			t.Errorf("expected message %q, got %q", tt.expected, tt.err.Error())
		}
	}
}
