package services

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// AuthServiceImpl implements domain.AuthService. It is the session state
// machine: anonymous -> student on OTP verification, anonymous -> admin on
// credential verification, and back to anonymous on logout.
type AuthServiceImpl struct {
	sessionRepo domain.SessionRepository
	cartRepo    domain.CartRepository
	credStore   domain.CredentialStore
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	sessionTTL  time.Duration
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	sessionRepo domain.SessionRepository,
	cartRepo domain.CartRepository,
	credStore domain.CredentialStore,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	sessionTTL time.Duration,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		credStore:   credStore,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		sessionTTL:  sessionTTL,
		accessTTL:   accessTTL,
	}
}

// LoginStudent implements domain.AuthService. A valid OTP for the phone
// creates a student session; any OTP failure is surfaced unchanged.
func (s *AuthServiceImpl) LoginStudent(ctx context.Context, phone, code string) (*domain.AuthResult, error) {
	valid, err := s.otpSvc.Verify(ctx, phone, code)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, domain.ErrOTPInvalid
	}

	session := &domain.Session{
		ID:        newSessionID(domain.RoleStudent),
		Role:      domain.RoleStudent,
		Phone:     phone,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	return s.openSession(ctx, session)
}

// LoginAdmin implements domain.AuthService
func (s *AuthServiceImpl) LoginAdmin(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if !s.credStore.VerifyAdmin(username, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        newSessionID(domain.RoleAdmin),
		Role:      domain.RoleAdmin,
		Username:  username,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	return s.openSession(ctx, session)
}

// Logout implements domain.AuthService. The session's cart is cleared with
// the session so a later login starts from an empty cart.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.cartRepo.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *AuthServiceImpl) openSession(ctx context.Context, session *domain.Session) (*domain.AuthResult, error) {
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(session.ID, session.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		Session:     session,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

func newSessionID(role domain.Role) string {
	return fmt.Sprintf("sess_%s_%d", role, time.Now().UnixNano())
}
