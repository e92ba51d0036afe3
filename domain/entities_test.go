package domain

import "testing"

func TestParsePaymentMode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    PaymentMode
		expectError bool
	}{
		{name: "UPI mode", input: "UPI", expected: PaymentUPI},
		{name: "Cash mode", input: "Cash", expected: PaymentCash},
		{name: "unknown mode", input: "Card", expectError: true},
		{name: "empty mode", input: "", expectError: true},
		{name: "lowercase is rejected", input: "upi", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParsePaymentMode(tt.input)
			if tt.expectError {
				if err != ErrInvalidPaymentMode {
					t.Errorf("expected ErrInvalidPaymentMode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("expected mode %s, got %s", tt.expected, mode)
			}
		})
	}
}

func TestCartLineIsValueSnapshot(t *testing.T) {
	item := MenuItem{Name: "Samosa", Price: 15, Available: true}

	line := CartLine{Name: item.Name, Price: item.Price}

	// Mutating the source item must not reach the snapshot
	item.Price = 99

	if line.Price != 15 {
		t.Errorf("expected snapshot price 15, got %v", line.Price)
	}
}
