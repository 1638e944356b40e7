package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/migrations"
	"github.com/jackc/pgx/v5/pgconn"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, dialect, logger.Nop())
	db.clock = func() time.Time { return fixedNow }
	return db, mock
}

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newTestDB(t, migrations.DialectPostgres)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
