package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentialStoreImpl_VerifyAdmin(t *testing.T) {
	store := NewCredentialStore(map[string]string{
		"krupanidhi_admin":  "password123",
		"bengaluru_canteen": "admin2025",
	})

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid first admin", "krupanidhi_admin", "password123", true},
		{"valid second admin", "bengaluru_canteen", "admin2025", true},
		{"wrong password", "krupanidhi_admin", "password124", false},
		{"password of other admin", "krupanidhi_admin", "admin2025", false},
		{"unknown username", "intruder", "password123", false},
		{"empty password", "krupanidhi_admin", "", false},
		{"empty username", "", "password123", false},
		{"case sensitive username", "Krupanidhi_Admin", "password123", false},
		{"case sensitive password", "krupanidhi_admin", "PASSWORD123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.VerifyAdmin(tt.username, tt.password); got != tt.want {
				t.Errorf("VerifyAdmin(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestCredentialStoreImpl_BcryptSecrets(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	store := NewCredentialStore(map[string]string{
		"hashed_admin": string(hash),
	})

	if !store.VerifyAdmin("hashed_admin", "s3cret") {
		t.Error("expected bcrypt secret to verify")
	}
	if store.VerifyAdmin("hashed_admin", "wrong") {
		t.Error("expected wrong password to fail against bcrypt secret")
	}
	// The raw hash string must not act as the password.
	if store.VerifyAdmin("hashed_admin", string(hash)) {
		t.Error("expected the literal hash to fail as a password")
	}
}

func TestCredentialStoreImpl_CopiesConfig(t *testing.T) {
	admins := map[string]string{"a": "pw"}
	store := NewCredentialStore(admins)

	// Mutating the source map after construction must not affect the store.
	admins["a"] = "changed"
	admins["b"] = "new"

	if !store.VerifyAdmin("a", "pw") {
		t.Error("expected original secret to remain valid")
	}
	if store.VerifyAdmin("b", "new") {
		t.Error("expected late-added admin to be unknown")
	}
}
