package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/migrations"
)

// DB is the [Gateway] implementation over a database/sql pool.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an already opened pool. It is used by tests with sqlmock and
// by [NewConnectDB].
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{DB: conn, dialect: dialect, logger: log}
}

// NewConnectDB opens the database named by cfg.DSN, sizes the pool and
// pings it. SQLite pools are limited to a single connection: the engine
// serializes writers anyway and an in-memory database lives only as long as
// its connection.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error parsing database DSN")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if dialect.Name() == DialectSQLite {
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxIdleTime(0)
		conn.SetConnMaxLifetime(0)
	} else if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectDB").Str("dialect", dialect.Name()).Msg("connected to database successfully")

	return NewDB(conn, dialect, log), nil
}

// Dialect reports the engine behind the pool.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies every pending migration of the pool's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect.Name())
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Int("applied", applied).Msg("database schema is up to date")
	return nil
}

func (db *DB) Builder() sq.StatementBuilderType {
	return db.dialect.Builder()
}

func (db *DB) Query(ctx context.Context, query sq.Sqlizer) ([]Row, error) {
	log := logger.FromContext(ctx)

	statement, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, statement, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.Query").Msg("error executing query")
		return nil, db.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			log.Err(err).Str("func", "*DB.Query").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*DB.Query").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (db *DB) Execute(ctx context.Context, query sq.Sqlizer) (Result, error) {
	statement, args, err := query.ToSql()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, statement, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*DB.Execute").Msg("error executing statement")
		return Result{}, db.classify(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return Result{AffectedRows: affected}, nil
}

// Insert reads the generated id with RETURNING where the dialect supports
// it and with LastInsertId otherwise.
func (db *DB) Insert(ctx context.Context, query sq.InsertBuilder, idColumn string) (Result, error) {
	log := logger.FromContext(ctx)

	if db.dialect.returning {
		statement, args, err := query.Suffix("RETURNING " + idColumn).ToSql()
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err := db.QueryRowContext(ctx, statement, args...).Scan(&id); err != nil {
			log.Err(err).Str("func", "*DB.Insert").Msg("error inserting row")
			return Result{}, db.classify(ErrExecutingStatement, err)
		}
		return Result{InsertID: id, AffectedRows: 1}, nil
	}

	statement, args, err := query.ToSql()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, statement, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.Insert").Msg("error inserting row")
		return Result{}, db.classify(ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return Result{InsertID: id, AffectedRows: affected}, nil
}

// classify wraps a driver error with the constraint sentinel it stands for,
// or with fallback when it stands for none.
func (db *DB) classify(fallback, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	if db.dialect.classifier == nil {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch db.dialect.classifier.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
