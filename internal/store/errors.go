package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUniqueViolation is wrapped around driver errors raised by a unique
	// index.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrForeignKeyViolation is wrapped around driver errors raised by a
	// foreign key, either on insert/update of a dangling reference or on
	// delete of a referenced row.
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")

	// ErrUnsupportedDSN is returned by [ParseDSN] for DSNs whose scheme does
	// not name a supported database.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// gateway methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
