package domain

import "time"

// Role identifies the class of an authenticated actor. An actor without a
// live session is anonymous and holds no role.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Session represents an authenticated actor. Exactly one of Phone or
// Username is set, depending on the role.
type Session struct {
	ID        string
	Role      Role
	Phone     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	Session     *Session
	AccessToken string
	ExpiresIn   int64
}

// OTPChallenge represents a live one-time code issued for a phone number.
// At most one challenge is live per phone; issuing a new one replaces it.
type OTPChallenge struct {
	Phone     string
	Code      string
	ExpiresAt time.Time
	Attempts  int
}

// MenuItem is a single orderable catalog entry. Name is the unique key
// within the registry.
type MenuItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// CartLine is an immutable snapshot of a menu item captured at add time.
// Later edits to the menu never change an existing line.
type CartLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Bill is derived from a cart, never stored. The student fee is a fixed
// per-order surcharge and the commission is a flat platform figure shown to
// the student, independent of order size.
type Bill struct {
	Subtotal   float64 `json:"subtotal"`
	StudentFee float64 `json:"student_fee"`
	Total      float64 `json:"total"`
	Commission float64 `json:"commission"`
}

// PaymentMode selects how a placed order is settled
type PaymentMode string

const (
	PaymentUPI  PaymentMode = "UPI"
	PaymentCash PaymentMode = "Cash"
)

// ParsePaymentMode maps a wire value to a PaymentMode
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch PaymentMode(s) {
	case PaymentUPI, PaymentCash:
		return PaymentMode(s), nil
	default:
		return "", ErrInvalidPaymentMode
	}
}

// OrderConfirmation is the receipt returned to the student once an order is
// accepted. Orders are not persisted; the confirmation is the only record.
type OrderConfirmation struct {
	ID          string      `json:"id"`
	Lines       []CartLine  `json:"lines"`
	Bill        Bill        `json:"bill"`
	PaymentMode PaymentMode `json:"payment_mode"`
	UTR         string      `json:"utr,omitempty"`
	PlacedAt    time.Time   `json:"placed_at"`
}
