package bankbook

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the one-way credential capability used by accounts.
// It is pluggable so tests can use a cheap cost, and so the hashing
// primitive can be swapped without touching the account model.
type PasswordHasher interface {
	// Hash transforms a plaintext password into an irreversible hash.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A malformed
	// stored hash is a verification failure, never a fatal error.
	Verify(plaintext, hash string) bool
}

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	// Cost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// looksHashed reports whether s already has the shape of a bcrypt hash
// ("$2a$...", "$2b$...", long enough). Reloading a persisted account must
// store the hash verbatim instead of hashing it again.
func looksHashed(s string) bool {
	return strings.HasPrefix(s, "$2") && len(s) > 50
}
