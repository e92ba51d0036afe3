package mocks

import "github.com/abdulkashif464-oss/smart-canteen/domain"

// MockCredentialStore implements domain.CredentialStore interface for testing
type MockCredentialStore struct {
	VerifyAdminFunc func(username, password string) bool
}

// NewMockCredentialStore creates a new MockCredentialStore with default behaviors
func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{}
}

// VerifyAdmin verifies admin credentials
func (m *MockCredentialStore) VerifyAdmin(username, password string) bool {
	if m.VerifyAdminFunc != nil {
		return m.VerifyAdminFunc(username, password)
	}
	// Default behavior: denied
	return false
}

// Compile-time interface compliance verification
var _ domain.CredentialStore = (*MockCredentialStore)(nil)
