package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name      string
		err       error
		class     ErrorClassification
		violation ConstraintViolation
	}{
		{"nil", nil, NonRetryable, NoViolation},
		{"plain error", errors.New("x"), NonRetryable, NoViolation},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable, NoViolation},
		{"deadlock wrapped", fmt.Errorf("wrap: %w", pgError(pgerrcode.DeadlockDetected)), Retryable, NoViolation},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable, NoViolation},
		{"unique", pgError(pgerrcode.UniqueViolation), NonRetryable, UniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), NonRetryable, ForeignKeyViolation},
		{"syntax", pgError(pgerrcode.SyntaxError), NonRetryable, NoViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, c.Classify(tt.err))
			assert.Equal(t, tt.violation, c.Violation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name      string
		err       error
		class     ErrorClassification
		violation ConstraintViolation
	}{
		{"plain error", errors.New("x"), NonRetryable, NoViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable, NoViolation},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable, NoViolation},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, NonRetryable, UniqueViolation},
		{"foreign key", fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}), NonRetryable, ForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, c.Classify(tt.err))
			assert.Equal(t, tt.violation, c.Violation(tt.err))
		})
	}
}

func TestTimestampScan(t *testing.T) {
	var got time.Time
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	for _, src := range []any{
		want,
		"2026-03-14 09:26:53+00:00",
		"2026-03-14T09:26:53Z",
		[]byte("2026-03-14 09:26:53"),
	} {
		assert.NoError(t, timestamp{&got}.Scan(src))
		assert.True(t, want.Equal(got), "%v", src)
	}

	assert.NoError(t, timestamp{&got}.Scan(nil))
	assert.True(t, got.IsZero())

	assert.Error(t, timestamp{&got}.Scan("yesterday"))
	assert.Error(t, timestamp{&got}.Scan(42))
}
