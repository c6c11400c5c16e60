// Package hasher provides bcrypt-backed password hashing.
package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes and verifies passwords with golang.org/x/crypto/bcrypt.
// The zero value is not usable; construct with NewBcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher with the given cost. Costs outside
// bcrypt's valid range fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted bcrypt digest of the plaintext.
func (b *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether digest was produced from password. Malformed
// digests simply fail verification.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
