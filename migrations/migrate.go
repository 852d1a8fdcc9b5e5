// Package migrations embeds the schema of every supported database and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var embedMigrations embed.FS

var dialects = map[string]goose.Dialect{
	"postgres": goose.DialectPostgres,
	"mysql":    goose.DialectMySQL,
	"sqlite3":  goose.DialectSQLite3,
}

// Migrate applies all pending migrations for dialect ("postgres", "mysql"
// or "sqlite3") and returns the number of migrations applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	gooseDialect, ok := dialects[dialect]
	if !ok {
		return 0, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	dir, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return 0, fmt.Errorf("migration error opening %s migrations: %w", dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
