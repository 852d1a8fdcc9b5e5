// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

//go:generate mockgen -source=interfaces.go -destination=../mock/mutator_mock.go -package=mock

import "context"

// Record is the public projection of a row, keyed by column name. Values
// are int64, float64, string or nil.
type Record map[string]any

// Mutator performs the catalog operations of one entity.
type Mutator interface {
	// Entity returns the singular entity name used in messages.
	Entity() string

	// Fields returns the names of the fields callers may write.
	Fields() []string

	// List returns every record ordered by primary key.
	List(ctx context.Context) ([]Record, error)

	// Get returns the record with id or [ErrNotFound].
	Get(ctx context.Context, id int64) (Record, error)

	// Create validates payload, inserts it and returns the new record.
	Create(ctx context.Context, payload map[string]any) (Record, error)

	// Update writes the supplied fields of payload to the record with id.
	Update(ctx context.Context, id int64, payload map[string]any) (Record, error)

	// Remove deletes the record with id.
	Remove(ctx context.Context, id int64) error
}
