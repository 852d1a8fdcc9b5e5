// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the catalog admin REST API.
//
// The primary abstraction is [CatalogAdapter], which hides the transport from
// callers such as catalogctl. Error responses are mapped by mapHTTPError to
// an [*APIError] that wraps one of the sentinel values in errors.go, so
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401) and still read the offending field.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog-admin/models"
)

// Record is one catalog record as returned by the API. Numbers are kept as
// [encoding/json.Number].
type Record map[string]any

// CatalogAdapter defines communication with the catalog admin API.
// Collections are the route segments "categories", "products" and "users".
type CatalogAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login exchanges credentials for a session and stores its token.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// List returns every record of collection.
	List(ctx context.Context, collection string) ([]Record, error)

	// Get returns the record of collection with id.
	Get(ctx context.Context, collection string, id int64) (Record, error)

	// Create inserts payload into collection and returns the created record.
	Create(ctx context.Context, collection string, payload map[string]any) (Record, error)

	// Update writes the fields of payload to the record with id.
	Update(ctx context.Context, collection string, id int64, payload map[string]any) (Record, error)

	// Delete removes the record of collection with id.
	Delete(ctx context.Context, collection string, id int64) error
}
