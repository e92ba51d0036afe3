package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginStudentFunc func(ctx context.Context, phone, code string) (*domain.AuthResult, error)
	LoginAdminFunc   func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	LogoutFunc       func(ctx context.Context, sessionID string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// LoginStudent logs in a student via OTP
func (m *MockAuthService) LoginStudent(ctx context.Context, phone, code string) (*domain.AuthResult, error) {
	if m.LoginStudentFunc != nil {
		return m.LoginStudentFunc(ctx, phone, code)
	}
	return nil, domain.ErrOTPInvalid
}

// LoginAdmin logs in an admin via credentials
func (m *MockAuthService) LoginAdmin(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.LoginAdminFunc != nil {
		return m.LoginAdminFunc(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout ends a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
