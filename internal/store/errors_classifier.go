// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells the gateway which storage sentinel
// a driver error stands for.
type ErrorClassification int

const (
	// Unclassified is the default for errors no constraint rule recognises.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks a write rejected by a unique index.
	UniqueViolation

	// ForeignKeyViolation marks a write or delete rejected by a foreign key.
	ForeignKeyViolation
)

// ErrorClassificator maps a driver-specific error onto an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation, // 23503
		pgerrcode.RestrictViolation: // 23001
		return ForeignKeyViolation
	}

	return Unclassified
}

// MySQL server error numbers.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	mysqlDuplicateEntry        = 1062
	mysqlRowIsReferenced       = 1217
	mysqlNoReferencedRow       = 1216
	mysqlRowIsReferencedFKName = 1451
	mysqlNoReferencedRowFKName = 1452
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return Unclassified
	}

	switch myErr.Number {
	case mysqlDuplicateEntry:
		return UniqueViolation
	case mysqlRowIsReferenced, mysqlNoReferencedRow,
		mysqlRowIsReferencedFKName, mysqlNoReferencedRowFKName:
		return ForeignKeyViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Unclassified
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	// ON DELETE RESTRICT is enforced through a trigger program and reports
	// SQLITE_CONSTRAINT_TRIGGER instead of SQLITE_CONSTRAINT_FOREIGNKEY.
	if liteErr.Code == sqlite3.ErrConstraint && strings.Contains(liteErr.Error(), "FOREIGN KEY") {
		return ForeignKeyViolation
	}

	return Unclassified
}
