package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// CredentialStoreImpl implements domain.CredentialStore over a fixed map of
// admin identities loaded from configuration. No lockout, no rate limit:
// the contract is plain equality-based authorization.
type CredentialStoreImpl struct {
	admins map[string]string
}

// NewCredentialStore creates a credential store from a username -> secret map
func NewCredentialStore(admins map[string]string) domain.CredentialStore {
	copied := make(map[string]string, len(admins))
	for k, v := range admins {
		copied[k] = v
	}
	return &CredentialStoreImpl{admins: copied}
}

// VerifyAdmin implements domain.CredentialStore. Lookup is exact-match on
// username. Secrets configured as bcrypt hashes are verified with bcrypt;
// anything else is compared in constant time.
func (s *CredentialStoreImpl) VerifyAdmin(username, password string) bool {
	secret, ok := s.admins[username]
	if !ok {
		return false
	}

	if isBcryptHash(secret) {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
