// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// CredentialHasher defines password hashing and verification.
// This abstracts the underlying algorithm (bcrypt), keeping the domain pure.
type CredentialHasher interface {
	// Hash generates a freshly salted hash from a plaintext password.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an unreadable hash is an error wrapping ErrCredentialFormat.
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// PasswordGenerator produces random passwords for newly provisioned accounts.
type PasswordGenerator interface {
	Generate() (string, error)
}
