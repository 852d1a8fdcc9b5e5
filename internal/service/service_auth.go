// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/crypto"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/store"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/MKhiriev/go-catalog-admin/internal/validators"
	"github.com/MKhiriev/go-catalog-admin/models"
)

// TokenDuration is the fixed lifetime of a session token.
const TokenDuration = 8 * time.Hour

// authService is the concrete implementation of AuthService.
// It verifies bcrypt hashes through a PasswordHasher and issues HS256 JWTs.
type authService struct {
	// userRepository looks up active users by email.
	userRepository store.UserRepository

	// hasher verifies presented secrets against stored hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters from
// cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates a user by email and password.
//
// Returns the session or:
//   - ErrMissingCredentials if the identifier or the secret is empty.
//   - ErrInvalidCredentials if no active user has the identifier, or the
//     secret does not match. Both cases look the same to the caller.
//   - ErrStorageUnavailable if the lookup failed.
//   - ErrTokenCreationFailed if signing failed.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if !validators.NotBlank(creds.Identifier) || creds.Secret == "" {
		return models.Session{}, ErrMissingCredentials
	}

	user, err := a.userRepository.FindActiveUserByEmail(ctx, creds.Identifier)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Equalize(creds.Secret)
		log.Info().Str("func", "*authService.Login").Msg("login rejected: no active user")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	match, err := a.hasher.Verify(user.PasswordHash, creds.Secret)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.UserID).Msg("stored password hash is unusable")
		return models.Session{}, ErrInvalidCredentials
	}
	if !match {
		log.Info().Str("func", "*authService.Login").Int64("id", user.UserID).Msg("login rejected: wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.UserID).Msg("error signing token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		Token: token.SignedString,
		User:  user.Sanitized(),
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
