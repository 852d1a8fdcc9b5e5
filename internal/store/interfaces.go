package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-admin/models"
)

// Gateway is the relational persistence boundary. Every statement is built
// with squirrel, so values always travel as bound parameters; identifiers
// come from code, never from requests.
type Gateway interface {
	// Builder returns a statement builder using the dialect's placeholders.
	Builder() sq.StatementBuilderType

	// Query runs a SELECT and returns every row keyed by column name.
	Query(ctx context.Context, query sq.Sqlizer) ([]Row, error)

	// Execute runs an UPDATE or DELETE and reports the affected row count.
	Execute(ctx context.Context, query sq.Sqlizer) (Result, error)

	// Insert runs an INSERT and reports the generated value of idColumn.
	Insert(ctx context.Context, query sq.InsertBuilder, idColumn string) (Result, error)
}

// UserRepository looks up credentials for the login flow.
type UserRepository interface {
	// FindActiveUserByEmail returns the active user whose stored email equals
	// email exactly, or [ErrNoUserWasFound].
	FindActiveUserByEmail(ctx context.Context, email string) (models.User, error)
}
