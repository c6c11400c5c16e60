package ports

// PasswordHasher abstracts one-way credential hashing so the core stays
// independent of the concrete algorithm.
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext. Two calls with the same
	// input yield different digests.
	Hash(password string) (string, error)
	// Verify reports whether digest was produced from password. Malformed or
	// empty digests verify as false, never panic.
	Verify(password, digest string) bool
}
