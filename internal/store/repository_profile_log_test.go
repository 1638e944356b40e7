package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileLogRepository_FindByProfile(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileLogRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, profile_id, timestamp, text FROM profile_logs WHERE profile_id = \$1 ORDER BY timestamp DESC, id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(profileLogColumns).
			AddRow(2, 1, fixedNow, "flashed 1.20").
			AddRow(1, 1, fixedNow.Add(-time.Hour), "created"))

	entries, err := repo.FindByProfile(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "flashed 1.20", entries[0].Text)
}

func TestProfileLogRepository_Create_StampsTimestamp(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileLogRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bios_profiles SET last_modified_date`).
		WithArgs(fixedNow, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO profile_logs \(profile_id,timestamp,text\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs(int64(1), fixedNow, "cleared CMOS").
		WillReturnRows(sqlmock.NewRows(profileLogColumns).AddRow(3, 1, fixedNow, "cleared CMOS"))
	mock.ExpectCommit()

	entry, err := repo.Create(context.Background(), models.ProfileLog{ProfileID: 1, Text: "cleared CMOS"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.ID)
	assert.Equal(t, fixedNow, entry.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileLogRepository_Create_MissingProfile(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileLogRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bios_profiles`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.ProfileLog{ProfileID: 5, Text: "x"})
	assert.ErrorIs(t, err, ErrBiosProfileNotFound)
}

func TestProfileLogRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileLogRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bios_profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO profile_logs`).WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.ProfileLog{ProfileID: 5, Text: "x"})
	assert.ErrorIs(t, err, ErrBiosProfileNotFound)
}
