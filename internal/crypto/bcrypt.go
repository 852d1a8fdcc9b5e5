// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinHashCost is the lowest work factor accepted by [NewBcryptHasher].
const MinHashCost = 10

// MaxPasswordBytes is the longest input bcrypt can hash.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for inputs over [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher builds a [PasswordHasher] backed by bcrypt. Costs below
// [MinHashCost] are raised to it.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < MinHashCost {
		cost = MinHashCost
	}
	if cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d exceeds maximum %d", cost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("catalog-admin-equalizer"), cost)
	if err != nil {
		return nil, fmt.Errorf("error preparing equalizer hash: %w", err)
	}

	return &bcryptHasher{cost: cost, dummyHash: dummy}, nil
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Verify(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password hash: %w", err)
	}
}

func (h *bcryptHasher) Equalize(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plain))
}
