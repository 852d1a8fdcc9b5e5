// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every session token.
//
// The standard "sub" claim holds the user ID; Email and Role are private
// claims describing the user at the moment the token was issued.
type Claims struct {
	// Email is the identifier the user signed in with.
	Email string `json:"email"`

	// Role is the user's role at issuance time.
	Role string `json:"role"`

	jwt.RegisteredClaims
}

// Token wraps a session token with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP responses and headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
