// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-catalog-admin/internal/store"
	"github.com/MKhiriev/go-catalog-admin/internal/validators"
)

// Kind is the Go type a field is coerced to before its rules run.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindNumber
	// KindTimestamp fields are set by storage and rendered as RFC 3339.
	KindTimestamp
)

// defaultMessage is reported when a value cannot be coerced and the field
// declares no message of its own.
func (k Kind) defaultMessage() string {
	switch k {
	case KindInt:
		return "must be an integer"
	case KindNumber:
		return validators.MsgNumber
	default:
		return validators.MsgString
	}
}

// coerce converts a decoded JSON value to the Go type of k. Numbers arrive
// as json.Number; numeric strings are accepted for numeric kinds.
func (k Kind) coerce(v any) (any, bool) {
	switch k {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindInt:
		return coerceInt(v)
	case KindNumber:
		return coerceNumber(v)
	}
	return nil, false
}

func coerceInt(v any) (any, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		return integralFloat(n.String())
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		return integralFloat(s)
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < math.MaxInt64 {
			return int64(n), true
		}
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return nil, false
}

func integralFloat(s string) (any, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func coerceNumber(v any) (any, bool) {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = strings.TrimSpace(n)
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return nil, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

// project converts a scanned column value to the type of k. NULL stays nil.
func (k Kind) project(v any) any {
	if v == nil {
		return nil
	}

	switch k {
	case KindInt:
		if i, err := store.ToInt64(v); err == nil {
			return i
		}
	case KindNumber:
		if f, err := store.ToFloat64(v); err == nil {
			return f
		}
	}

	return store.ToString(v)
}

// Reference points a field at the primary key of another table.
type Reference struct {
	Table   string
	Column  string
	Message string
}

// Field is the rule set of one column. Its Name is both the JSON key and
// the column name.
type Field struct {
	Name string
	Kind Kind

	// TypeMessage is reported when the value has the wrong type or a
	// required value is missing. Empty means the Kind default.
	TypeMessage string

	CreateRules validators.Rules
	UpdateRules validators.Rules

	RequiredOnCreate bool

	// Default is inserted when the field is absent on create.
	Default any

	Trim  bool
	Lower bool

	// EmptyAsNull stores "" as NULL.
	EmptyAsNull bool

	// Nullable accepts an explicit JSON null.
	Nullable bool

	// Unique fields are pre-checked case-insensitively against other rows.
	Unique bool

	// UniqueKey names a companion column written with the case-folded
	// value. It carries the unique index, so storage folds exactly like the
	// pre-check does.
	UniqueKey string

	References *Reference

	// Transform rewrites the validated value right before the write, e.g.
	// hashing a password. It never runs for NULL.
	Transform func(value any) (any, error)

	// Hidden fields are written but never projected.
	Hidden bool

	// ReadOnly fields are projected but never written by callers.
	ReadOnly bool
}

func (f Field) typeMessage() string {
	if f.TypeMessage != "" {
		return f.TypeMessage
	}
	return f.Kind.defaultMessage()
}

// normalize coerces raw and applies the field's string normalization.
// It returns nil for accepted NULLs.
func (f Field) normalize(raw any) (any, error) {
	if raw == nil {
		if f.Nullable || f.EmptyAsNull {
			return nil, nil
		}
		return nil, &ValidationError{Field: f.Name, Rule: f.typeMessage()}
	}

	value, ok := f.Kind.coerce(raw)
	if !ok {
		return nil, &ValidationError{Field: f.Name, Rule: f.typeMessage()}
	}

	if s, isString := value.(string); isString {
		if f.Trim {
			s = strings.TrimSpace(s)
		}
		if f.Lower {
			s = strings.ToLower(s)
		}
		if f.EmptyAsNull && s == "" {
			return nil, nil
		}
		value = s
	}

	return value, nil
}

// Schema describes one entity.
type Schema struct {
	// Entity is the singular name used in messages, e.g. "category".
	Entity     string
	Table      string
	PrimaryKey string
	Fields     []Field

	// ReturnFullOnUpdate makes Update re-read and return the whole record
	// instead of the supplied subset.
	ReturnFullOnUpdate bool

	// ReloadOnCreate makes Create re-read the record so that storage
	// defaults appear in the result.
	ReloadOnCreate bool

	// OrderBy is the ORDER BY clause of List. Empty means the primary key.
	OrderBy string
}

func (s Schema) orderBy() string {
	if s.OrderBy != "" {
		return s.OrderBy
	}
	return s.PrimaryKey
}

// columns returns the primary key and every projected column.
func (s Schema) columns() []string {
	cols := []string{s.PrimaryKey}
	for _, f := range s.Fields {
		if !f.Hidden {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// writable returns the fields callers may supply.
func (s Schema) writable() []Field {
	fields := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.ReadOnly {
			fields = append(fields, f)
		}
	}
	return fields
}

// project converts a scanned row to a Record.
func (s Schema) project(row store.Row) Record {
	rec := Record{}
	if id, err := row.Int64(s.PrimaryKey); err == nil {
		rec[s.PrimaryKey] = id
	}
	for _, f := range s.Fields {
		if !f.Hidden {
			rec[f.Name] = f.Kind.project(row[f.Name])
		}
	}
	return rec
}
