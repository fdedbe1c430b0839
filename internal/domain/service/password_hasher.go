// Package service holds domain contracts whose implementations live in infra.
package service

// PasswordHasher turns account passwords into stored hashes. Plaintext
// passwords never reach the repositories; only Hash output is persisted.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same input
	// yield different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches a hash produced by Hash.
	// Malformed hashes never match.
	Verify(password, hash string) bool
}
