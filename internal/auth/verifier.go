// Package auth provides pluggable credential verification. The server
// stores bcrypt hashes; the offline demo fixtures carry plaintext
// credentials and are compared by equality, as the original demo mode did.
// Production deployments must use the bcrypt verifier.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a provided credential against its stored form.
type Verifier interface {
	Verify(stored, provided string) bool
}

// HashFunc prepares a credential for storage under the matching Verifier.
type HashFunc func(plain string) (string, error)

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, provided string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil
}

// BcryptHash pairs with BcryptVerifier.
func BcryptHash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PlaintextVerifier matches credentials by equality. Demo/offline mode only.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, provided string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}
