package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc     func(ctx context.Context, phone string) (*domain.OTPChallenge, error)
	VerifyFunc    func(ctx context.Context, phone, code string) (bool, error)
	CanResendFunc func(ctx context.Context, phone string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues a new OTP challenge
func (m *MockOTPService) Issue(ctx context.Context, phone string) (*domain.OTPChallenge, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, phone)
	}
	return &domain.OTPChallenge{Phone: phone, Code: "1234"}, nil
}

// Verify verifies a submitted OTP code
func (m *MockOTPService) Verify(ctx context.Context, phone, code string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, phone, code)
	}
	// Default behavior: invalid
	return false, domain.ErrOTPInvalid
}

// CanResend reports whether a new OTP may be issued
func (m *MockOTPService) CanResend(ctx context.Context, phone string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, phone)
	}
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
