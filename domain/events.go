package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Student authentication events
	OTPIssuedEvent        AuditEventType = "OTP_ISSUED"
	OTPVerifyFailedEvent  AuditEventType = "OTP_VERIFY_FAILED"
	StudentLoginEvent     AuditEventType = "STUDENT_LOGIN"

	// Admin authentication events
	AdminLoginEvent       AuditEventType = "ADMIN_LOGIN"
	AdminLoginFailedEvent AuditEventType = "ADMIN_LOGIN_FAILED"

	// Shared session events
	LogoutEvent AuditEventType = "LOGOUT"

	// Shop and menu events
	ShopStatusChangedEvent AuditEventType = "SHOP_STATUS_CHANGED"
	MenuReplacedEvent      AuditEventType = "MENU_REPLACED"

	// Ordering events
	ItemAddedEvent     AuditEventType = "CART_ITEM_ADDED"
	OrderPlacedEvent   AuditEventType = "ORDER_PLACED"
	OrderRejectedEvent AuditEventType = "ORDER_REJECTED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	SessionID string         `json:"session_id,omitempty"`
	Role      Role           `json:"role,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Username  string         `json:"username,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}
