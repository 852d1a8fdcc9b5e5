// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Roles a catalog user can hold. The creation rules accept all four; the
// update rules accept only [RoleClient] and [RoleAdmin].
const (
	RoleOperator = "operator"
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleClient   = "client"
)

// User represents an account able to sign in to the admin backend.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the primary key of the "users" row.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the login identifier. Stored trimmed and lowercased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role is one of the Role* constants.
	Role string `json:"role"`

	// Active reports whether the account may sign in.
	Active bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of u that is safe to return to API callers.
func (u User) Sanitized() User {
	return User{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
