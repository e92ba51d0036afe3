package domain

import "context"

// CredentialStore verifies pre-provisioned canteen admin credentials
type CredentialStore interface {
	VerifyAdmin(username, password string) bool
}

// OTPService defines OTP issue and verification operations
type OTPService interface {
	Issue(ctx context.Context, phone string) (*OTPChallenge, error)
	Verify(ctx context.Context, phone, code string) (bool, error)
	CanResend(ctx context.Context, phone string) (bool, int64, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// CartRepository stores per-session cart lines in add order
type CartRepository interface {
	Append(ctx context.Context, sessionID string, line CartLine) error
	Lines(ctx context.Context, sessionID string) ([]CartLine, error)
	Clear(ctx context.Context, sessionID string) error
}

// MenuRepository is the shared menu registry. List returns items in
// insertion order; ReplaceAll swaps the whole catalog atomically.
type MenuRepository interface {
	List(ctx context.Context) ([]MenuItem, error)
	FindByName(ctx context.Context, name string) (*MenuItem, error)
	ReplaceAll(ctx context.Context, items []MenuItem) error
}

// ShopStatusRepository holds the process-wide shop open flag. All sessions
// observe the latest admin write.
type ShopStatusRepository interface {
	IsOpen(ctx context.Context) (bool, error)
	SetOpen(ctx context.Context, open bool) error
}

// AuthService defines the session state machine: anonymous actors become
// authenticated students or admins, and logout returns them to anonymous.
type AuthService interface {
	LoginStudent(ctx context.Context, phone, code string) (*AuthResult, error)
	LoginAdmin(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// MenuService defines menu registry business logic
type MenuService interface {
	Menu(ctx context.Context) ([]MenuItem, error)
	AvailableMenu(ctx context.Context) ([]MenuItem, error)
	ReplaceMenu(ctx context.Context, items []MenuItem) error
}

// CartService defines cart accumulation and billing
type CartService interface {
	AddItem(ctx context.Context, sessionID, itemName string) (*CartLine, error)
	ViewCart(ctx context.Context, sessionID string) ([]CartLine, Bill, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderService finalizes an order: validates payment proof, clears the cart
type OrderService interface {
	PlaceOrder(ctx context.Context, sessionID string, mode PaymentMode, utr string) (*OrderConfirmation, error)
}

// TokenService defines access token operations
type TokenService interface {
	GenerateAccessToken(sessionID string, role Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// NotificationService defines the OTP side channel (SMS gateway)
type NotificationService interface {
	SendSMS(to, message string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}

// TokenClaims represents access token claims
type TokenClaims struct {
	SessionID string `json:"session_id"`
	Role      Role   `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
