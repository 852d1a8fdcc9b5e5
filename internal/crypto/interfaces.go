// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against stored hashes. Plaintext never leaves the caller.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of plain.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. A mismatch is not an
	// error; a malformed hash is.
	Verify(hash, plain string) (bool, error)

	// Equalize performs a comparison against a fixed internal hash and
	// discards the result. Login calls it when no account matches so that
	// the response time does not reveal which emails exist.
	Equalize(plain string)
}
