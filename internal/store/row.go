// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strconv"
	"time"
)

// Row is a single result row keyed by column name. Text columns returned by
// drivers as []byte are converted to string during scanning.
type Row map[string]any

// Result reports the outcome of a write.
type Result struct {
	// InsertID is the generated primary key of an INSERT.
	InsertID int64

	// AffectedRows is the number of rows changed by the statement.
	AffectedRows int64
}

// Int64 returns the column as an integer. Drivers disagree on how they
// surface integers and booleans, so every common representation is accepted.
func (r Row) Int64(column string) (int64, error) {
	return ToInt64(r[column])
}

// String returns the column as a string; NULL becomes "".
func (r Row) String(column string) string {
	return ToString(r[column])
}

// ToString converts a scanned driver value to string; NULL becomes "".
func ToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// ToInt64 converts a scanned driver value to int64.
func ToInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	}

	return 0, fmt.Errorf("cannot convert %T to int64", v)
}

// ToFloat64 converts a scanned driver value to float64.
func ToFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	case []byte:
		return strconv.ParseFloat(string(n), 64)
	}

	return 0, fmt.Errorf("cannot convert %T to float64", v)
}
