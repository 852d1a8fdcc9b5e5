// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of a login request.
type Credentials struct {
	// Identifier is the user's email address, matched as stored.
	Identifier string `json:"identifier"`

	// Secret is the plain-text password. It must never be logged.
	Secret string `json:"secret"`
}

// Session is returned by a successful login.
type Session struct {
	// Token is the compact signed session token.
	Token string `json:"token"`

	// User is the sanitized projection of the authenticated user.
	User User `json:"user"`
}
