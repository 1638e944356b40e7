package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingRows() *sqlmock.Rows {
	return sqlmock.NewRows(profileSettingColumns)
}

func TestProfileSettingRepository_FindByProfile(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, profile_id, category, name, value, value_type FROM profile_settings WHERE profile_id = \$1 ORDER BY category, name`).
		WithArgs(int64(1)).
		WillReturnRows(settingRows().
			AddRow(1, 1, "CPU", "SMT", "Enabled", "enum").
			AddRow(2, 1, "Memory", "XMP", "Profile 1", "enum"))

	settings, err := repo.FindByProfile(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "SMT", settings[0].Name)
	assert.Equal(t, "Profile 1", settings[1].Value)
}

func TestProfileSettingRepository_Create(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	in := models.ProfileSetting{ProfileID: 1, Category: "CPU", Name: "SMT", Value: "Enabled", ValueType: "enum"}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bios_profiles SET last_modified_date = \$1 WHERE id = \$2`).
		WithArgs(fixedNow, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO profile_settings \(profile_id,category,name,value,value_type\)`).
		WithArgs(int64(1), "CPU", "SMT", "Enabled", "enum").
		WillReturnRows(settingRows().AddRow(10, 1, "CPU", "SMT", "Enabled", "enum"))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSettingRepository_Create_MissingProfile(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bios_profiles`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.ProfileSetting{ProfileID: 999, Category: "c", Name: "n"})
	assert.ErrorIs(t, err, ErrBiosProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSettingRepository_Create_Duplicate(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bios_profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO profile_settings`).WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.ProfileSetting{ProfileID: 1, Category: "c", Name: "n"})
	assert.ErrorIs(t, err, ErrProfileSettingAlreadyExists)
}

func TestProfileSettingRepository_Create_BeginError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), models.ProfileSetting{ProfileID: 1})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestProfileSettingRepository_UpdateValue(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE profile_settings SET value = \$1 WHERE id = \$2 AND profile_id = \$3 RETURNING`).
		WithArgs("Disabled", int64(10), int64(1)).
		WillReturnRows(settingRows().AddRow(10, 1, "CPU", "SMT", "Disabled", "enum"))
	mock.ExpectExec(`UPDATE bios_profiles SET last_modified_date`).
		WithArgs(fixedNow, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.UpdateValue(context.Background(), 1, 10, "Disabled")
	require.NoError(t, err)
	assert.Equal(t, "Disabled", updated.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSettingRepository_UpdateValue_NotFound(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE profile_settings`).WillReturnRows(settingRows())
	mock.ExpectRollback()

	_, err := repo.UpdateValue(context.Background(), 1, 77, "x")
	assert.ErrorIs(t, err, ErrProfileSettingNotFound)
}

func TestProfileSettingRepository_Delete(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM profile_settings WHERE id = \$1 AND profile_id = \$2`).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE bios_profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 1, 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSettingRepository_Delete_NotFound(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewProfileSettingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM profile_settings`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 10), ErrProfileSettingNotFound)
}
