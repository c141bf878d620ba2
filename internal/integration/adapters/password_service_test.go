// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strings"
	"testing"
)

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "SecurePass123!" {
			t.Fatal("expected the hash to differ from the password")
		}
		if !strings.HasPrefix(hash, "$2") {
			t.Errorf("expected a bcrypt hash, got %q", hash)
		}

		if err := service.VerifyPassword(hash, "SecurePass123!"); err != nil {
			t.Errorf("expected verification to pass, got %v", err)
		}
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("expected verification to fail")
		}
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected different hashes for the same password")
		}
	})

	t.Run("strength check enforces the minimum length", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected a short password to be rejected")
		}
		if err := service.ValidatePasswordStrength("long enough"); err != nil {
			t.Errorf("expected an 8+ character password to pass, got %v", err)
		}
	})

	t.Run("strength check rejects passwords beyond the bcrypt limit", func(t *testing.T) {
		if err := service.ValidatePasswordStrength(strings.Repeat("a", 73)); err == nil {
			t.Error("expected a 73-byte password to be rejected")
		}
		if err := service.ValidatePasswordStrength(strings.Repeat("a", 72)); err != nil {
			t.Errorf("expected a 72-byte password to pass, got %v", err)
		}
	})
}
