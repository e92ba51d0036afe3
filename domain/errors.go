package domain

import "errors"

// Validation errors
var (
	ErrInvalidPhone       = errors.New("phone number must be exactly 10 digits")
	ErrMissingUTR         = errors.New("missing transaction reference")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInvalidPrice       = errors.New("menu item price must be non-negative")
	ErrDuplicateMenuItem  = errors.New("duplicate menu item name")
	ErrMenuItemName       = errors.New("menu item name is required")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OTP errors
var (
	ErrOTPInvalid     = errors.New("invalid otp code")
	ErrOTPNotFound    = errors.New("otp not found")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
	ErrOTPResendLimit = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrShopClosed   = errors.New("the canteen is currently closed")
)

// Menu and ordering errors
var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemUnavailable = errors.New("menu item is not available")
)
