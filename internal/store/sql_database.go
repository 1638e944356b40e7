package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/migrations"
)

// maxTxAttempts bounds how often a transaction is replayed after a
// retryable driver error.
const maxTxAttempts = 3

// DB wraps a *sql.DB together with everything that differs between the
// supported dialects: the squirrel placeholder format, the migration set and
// the driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	clock              func() time.Time
}

// NewConnect opens the database named by cfg.DSN. PostgreSQL URLs are opened
// with pgx; a plain path or a file: DSN is treated as a SQLite database file.
// URLs with any other scheme are rejected with [ErrUnsupportedDSN].
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.Contains(cfg.DSN, "://") && !strings.HasPrefix(cfg.DSN, "file:"):
		scheme, _, _ := strings.Cut(cfg.DSN, "://")
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

func (db *DB) now() time.Time {
	if db.clock != nil {
		return db.clock()
	}
	return time.Now().UTC()
}

// Dialect returns the migration dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withTx runs fn inside a transaction and commits it. Retryable driver errors
// (serialization failures, deadlocks, busy database) replay the whole
// transaction up to maxTxAttempts times.
func (db *DB) withTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		log.Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("retryable database error, replaying transaction")
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// violationError translates a constraint violation into a domain sentinel.
// Other errors are wrapped with fallback.
func (db *DB) violationError(err error, fallback error, onViolation map[ConstraintViolation]error) error {
	if domainErr, ok := onViolation[db.errorClassificator.Violation(err)]; ok {
		return domainErr
	}
	if errors.Is(err, ErrBeginningTransaction) || errors.Is(err, ErrCommitingTransaction) {
		return err
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
