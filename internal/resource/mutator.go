// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/store"
	"github.com/MKhiriev/go-catalog-admin/internal/validators"
)

// mutator is the [store.Gateway]-backed implementation of [Mutator].
type mutator struct {
	schema  Schema
	gateway store.Gateway
	logger  *logger.Logger
}

// change is a validated field value about to be written.
type change struct {
	field Field
	value any
}

type changes []change

// record returns the public projection of the written values.
func (cs changes) record() Record {
	rec := Record{}
	for _, c := range cs {
		if !c.field.Hidden {
			rec[c.field.Name] = c.value
		}
	}
	return rec
}

// NewMutator returns a [Mutator] for schema.
func NewMutator(schema Schema, gateway store.Gateway, logger *logger.Logger) Mutator {
	logger.Debug().Str("entity", schema.Entity).Msg("creating resource mutator")
	return &mutator{
		schema:  schema,
		gateway: gateway,
		logger:  logger,
	}
}

func (m *mutator) Entity() string {
	return m.schema.Entity
}

func (m *mutator) Fields() []string {
	writable := m.schema.writable()
	names := make([]string, 0, len(writable))
	for _, f := range writable {
		names = append(names, f.Name)
	}
	return names
}

func (m *mutator) List(ctx context.Context) ([]Record, error) {
	log := logger.FromContext(ctx)

	query := m.gateway.Builder().
		Select(m.schema.columns()...).
		From(m.schema.Table).
		OrderBy(m.schema.orderBy())

	rows, err := m.gateway.Query(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mutator.List").Str("entity", m.schema.Entity).Msg("error listing records")
		return nil, storageError("list "+m.schema.Table, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, m.schema.project(row))
	}
	return records, nil
}

func (m *mutator) Get(ctx context.Context, id int64) (Record, error) {
	log := logger.FromContext(ctx)

	query := m.gateway.Builder().
		Select(m.schema.columns()...).
		From(m.schema.Table).
		Where(sq.Eq{m.schema.PrimaryKey: id}).
		Limit(1)

	rows, err := m.gateway.Query(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mutator.Get").Str("entity", m.schema.Entity).Int64("id", id).Msg("error reading record")
		return nil, storageError("get "+m.schema.Table, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return m.schema.project(rows[0]), nil
}

// Create validates every required field and every supplied optional field,
// runs the pre-checks and inserts the normalized values together with the
// defaults of absent fields.
func (m *mutator) Create(ctx context.Context, payload map[string]any) (Record, error) {
	log := logger.FromContext(ctx)

	var cs changes
	for _, f := range m.schema.writable() {
		raw, supplied := payload[f.Name]
		if !supplied {
			if f.RequiredOnCreate {
				return nil, &ValidationError{Field: f.Name, Rule: f.typeMessage()}
			}
			switch {
			case f.Default != nil:
				cs = append(cs, change{field: f, value: f.Default})
			case f.Nullable || f.EmptyAsNull:
				cs = append(cs, change{field: f, value: nil})
			}
			continue
		}

		value, err := validate(f, raw, f.CreateRules)
		if err != nil {
			return nil, err
		}
		if value == nil && f.RequiredOnCreate {
			return nil, &ValidationError{Field: f.Name, Rule: f.typeMessage()}
		}
		cs = append(cs, change{field: f, value: value})
	}

	if err := m.checkUnique(ctx, cs, nil); err != nil {
		return nil, err
	}
	if err := m.checkReferences(ctx, cs); err != nil {
		return nil, err
	}

	columns, values, err := m.storedValues(cs)
	if err != nil {
		log.Err(err).Str("func", "*mutator.Create").Str("entity", m.schema.Entity).Msg("error preparing values")
		return nil, err
	}

	insert := m.gateway.Builder().
		Insert(m.schema.Table).
		Columns(columns...).
		Values(values...)

	res, err := m.gateway.Insert(ctx, insert, m.schema.PrimaryKey)
	if err != nil {
		log.Err(err).Str("func", "*mutator.Create").Str("entity", m.schema.Entity).Msg("error inserting record")
		return nil, m.writeError("create "+m.schema.Table, err, cs)
	}

	if m.schema.ReloadOnCreate {
		rec, err := m.Get(ctx, res.InsertID)
		if err == nil {
			return rec, nil
		}
		log.Warn().Err(err).Str("func", "*mutator.Create").Int64("id", res.InsertID).Msg("error reloading created record")
	}

	rec := cs.record()
	rec[m.schema.PrimaryKey] = res.InsertID
	return rec, nil
}

// Update writes only the supplied fields. Nothing reaches storage when no
// field is recognized, and existence is checked before validation.
func (m *mutator) Update(ctx context.Context, id int64, payload map[string]any) (Record, error) {
	log := logger.FromContext(ctx)

	var supplied []Field
	for _, f := range m.schema.writable() {
		if _, ok := payload[f.Name]; ok {
			supplied = append(supplied, f)
		}
	}
	if len(supplied) == 0 {
		return nil, ErrEmptyUpdate
	}

	found, err := m.exists(ctx, m.schema.Table, m.schema.PrimaryKey, id)
	if err != nil {
		log.Err(err).Str("func", "*mutator.Update").Str("entity", m.schema.Entity).Int64("id", id).Msg("error checking record")
		return nil, storageError("update "+m.schema.Table, err)
	}
	if !found {
		return nil, ErrNotFound
	}

	cs := make(changes, 0, len(supplied))
	for _, f := range supplied {
		value, err := validate(f, payload[f.Name], f.UpdateRules)
		if err != nil {
			return nil, err
		}
		if value == nil && f.RequiredOnCreate {
			return nil, &ValidationError{Field: f.Name, Rule: f.typeMessage()}
		}
		cs = append(cs, change{field: f, value: value})
	}

	if err := m.checkUnique(ctx, cs, &id); err != nil {
		return nil, err
	}
	if err := m.checkReferences(ctx, cs); err != nil {
		return nil, err
	}

	columns, values, err := m.storedValues(cs)
	if err != nil {
		log.Err(err).Str("func", "*mutator.Update").Str("entity", m.schema.Entity).Msg("error preparing values")
		return nil, err
	}

	update := m.gateway.Builder().
		Update(m.schema.Table).
		Where(sq.Eq{m.schema.PrimaryKey: id})
	for i, col := range columns {
		update = update.Set(col, values[i])
	}

	// MySQL reports zero affected rows when the values did not change, so
	// the count is not used to detect a vanished record.
	if _, err := m.gateway.Execute(ctx, update); err != nil {
		log.Err(err).Str("func", "*mutator.Update").Str("entity", m.schema.Entity).Int64("id", id).Msg("error updating record")
		return nil, m.writeError("update "+m.schema.Table, err, cs)
	}

	if m.schema.ReturnFullOnUpdate {
		return m.Get(ctx, id)
	}
	return cs.record(), nil
}

// Remove deletes the record. A delete blocked by a foreign key leaves the
// record in place and returns a [ConflictError].
func (m *mutator) Remove(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query := m.gateway.Builder().
		Delete(m.schema.Table).
		Where(sq.Eq{m.schema.PrimaryKey: id})

	res, err := m.gateway.Execute(ctx, query)
	if err != nil {
		if errors.Is(err, store.ErrForeignKeyViolation) {
			return &ConflictError{Entity: m.schema.Entity, Field: m.schema.PrimaryKey, Value: id, Kind: ConflictReferenced}
		}
		log.Err(err).Str("func", "*mutator.Remove").Str("entity", m.schema.Entity).Int64("id", id).Msg("error deleting record")
		return storageError("delete "+m.schema.Table, err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}

	return nil
}

// validate normalizes raw and applies rules unless the value is NULL.
func validate(f Field, raw any, rules validators.Rules) (any, error) {
	value, err := f.normalize(raw)
	if err != nil || value == nil {
		return value, err
	}

	if err := validators.Check(value, rules); err != nil {
		var ruleErr *validators.RuleError
		if errors.As(err, &ruleErr) {
			return nil, &ValidationError{Field: f.Name, Rule: ruleErr.Message}
		}
		return nil, err
	}

	return value, nil
}

// checkUnique looks for another record holding the same value of a unique
// field, ignoring case. excludeID skips the record being updated.
func (m *mutator) checkUnique(ctx context.Context, cs changes, excludeID *int64) error {
	for _, c := range cs {
		s, ok := c.value.(string)
		if !c.field.Unique || !ok {
			continue
		}

		query := m.gateway.Builder().
			Select(m.schema.PrimaryKey).
			From(m.schema.Table).
			Where(uniqueCondition(c.field, s)).
			Limit(1)
		if excludeID != nil {
			query = query.Where(sq.NotEq{m.schema.PrimaryKey: *excludeID})
		}

		rows, err := m.gateway.Query(ctx, query)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*mutator.checkUnique").Str("field", c.field.Name).Msg("error checking uniqueness")
			return storageError("check "+c.field.Name, err)
		}
		if len(rows) > 0 {
			return &ConflictError{Entity: m.schema.Entity, Field: c.field.Name, Value: s, Kind: ConflictDuplicate}
		}
	}
	return nil
}

// uniqueCondition matches rows whose value of f folds to the same key as s.
// Folding happens here rather than in SQL: LOWER() on SQLite only folds ASCII.
func uniqueCondition(f Field, s string) sq.Sqlizer {
	key := strings.ToLower(s)
	switch {
	case f.UniqueKey != "":
		return sq.Eq{f.UniqueKey: key}
	case f.Lower:
		return sq.Eq{f.Name: key}
	}
	return sq.Expr(fmt.Sprintf("LOWER(%s) = ?", f.Name), key)
}

// checkReferences verifies that referenced records exist.
func (m *mutator) checkReferences(ctx context.Context, cs changes) error {
	for _, c := range cs {
		ref := c.field.References
		if ref == nil || c.value == nil {
			continue
		}

		found, err := m.exists(ctx, ref.Table, ref.Column, c.value)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*mutator.checkReferences").Str("field", c.field.Name).Msg("error checking reference")
			return storageError("check "+c.field.Name, err)
		}
		if !found {
			return &ValidationError{Field: c.field.Name, Rule: ref.Message}
		}
	}
	return nil
}

func (m *mutator) exists(ctx context.Context, table, column string, value any) (bool, error) {
	query := m.gateway.Builder().
		Select(column).
		From(table).
		Where(sq.Eq{column: value}).
		Limit(1)

	rows, err := m.gateway.Query(ctx, query)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// storedValues returns the columns and values to write, after transforms.
func (m *mutator) storedValues(cs changes) ([]string, []any, error) {
	columns := make([]string, 0, len(cs))
	values := make([]any, 0, len(cs))
	for _, c := range cs {
		value := c.value
		if c.field.Transform != nil && value != nil {
			transformed, err := c.field.Transform(value)
			if err != nil {
				return nil, nil, fmt.Errorf("error transforming %s: %w", c.field.Name, err)
			}
			value = transformed
		}
		columns = append(columns, c.field.Name)
		values = append(values, value)

		if s, ok := c.value.(string); ok && c.field.UniqueKey != "" {
			columns = append(columns, c.field.UniqueKey)
			values = append(values, strings.ToLower(s))
		}
	}
	return columns, values, nil
}

// writeError maps constraint violations raised by a write that passed the
// pre-checks.
func (m *mutator) writeError(op string, err error, cs changes) error {
	switch {
	case errors.Is(err, store.ErrUniqueViolation):
		conflict := &ConflictError{Entity: m.schema.Entity, Kind: ConflictConstraint}
		for _, c := range cs {
			if c.field.Unique {
				conflict.Field, conflict.Value = c.field.Name, c.value
				break
			}
		}
		return conflict
	case errors.Is(err, store.ErrForeignKeyViolation):
		for _, c := range cs {
			if c.field.References != nil {
				return &ValidationError{Field: c.field.Name, Rule: c.field.References.Message}
			}
		}
	}
	return storageError(op, err)
}
