package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

type profileSettingRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileSettingRepository constructs a [ProfileSettingRepository] over
// the "profile_settings" table.
func NewProfileSettingRepository(db *DB, logger *logger.Logger) ProfileSettingRepository {
	logger.Debug().Msg("creating profile setting repository")
	return &profileSettingRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProfileSetting(row rowScanner) (models.ProfileSetting, error) {
	var s models.ProfileSetting
	err := row.Scan(&s.ID, &s.ProfileID, &s.Category, &s.Name, &s.Value, &s.ValueType)
	return s, err
}

// FindByProfile lists the settings of a profile ordered by category and name.
func (r *profileSettingRepository) FindByProfile(ctx context.Context, profileID int64) ([]models.ProfileSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSettingsQuery(r.builder, profileID)
	if err != nil {
		log.Err(err).Str("func", "profileSettingRepository.FindByProfile").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "profileSettingRepository.FindByProfile").Int64("profile_id", profileID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make([]models.ProfileSetting, 0, 16)
	for rows.Next() {
		s, scanErr := scanProfileSetting(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "profileSettingRepository.FindByProfile").Msg("failed to scan setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		settings = append(settings, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "profileSettingRepository.FindByProfile").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return settings, nil
}

// Create stores a new setting and bumps the profile's last-modified date.
//
// Error handling:
//   - missing profile → [ErrBiosProfileNotFound].
//   - duplicate (profile, category, name) → [ErrProfileSettingAlreadyExists].
func (r *profileSettingRepository) Create(ctx context.Context, setting models.ProfileSetting) (models.ProfileSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSettingQuery(r.builder, setting)
	if err != nil {
		log.Err(err).Str("func", "profileSettingRepository.Create").Msg("failed to build query")
		return models.ProfileSetting{}, err
	}

	var created models.ProfileSetting
	err = r.withTx(ctx, "profileSettingRepository.Create", func(tx *sql.Tx) error {
		if touchErr := r.touchProfile(ctx, tx, setting.ProfileID); touchErr != nil {
			return touchErr
		}

		var scanErr error
		created, scanErr = scanProfileSetting(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileSettingRepository.Create").
			Int64("profile_id", setting.ProfileID).
			Str("category", setting.Category).
			Str("name", setting.Name).
			Msg("failed to create setting")

		if errors.Is(err, ErrBiosProfileNotFound) {
			return models.ProfileSetting{}, err
		}
		return models.ProfileSetting{}, r.violationError(err, ErrExecutingStatement, map[ConstraintViolation]error{
			UniqueViolation:     ErrProfileSettingAlreadyExists,
			ForeignKeyViolation: ErrBiosProfileNotFound,
		})
	}

	return created, nil
}

// UpdateValue replaces the value of one setting of the profile.
func (r *profileSettingRepository) UpdateValue(ctx context.Context, profileID, settingID int64, value string) (models.ProfileSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSettingValueQuery(r.builder, profileID, settingID, value)
	if err != nil {
		log.Err(err).Str("func", "profileSettingRepository.UpdateValue").Msg("failed to build query")
		return models.ProfileSetting{}, err
	}

	var updated models.ProfileSetting
	err = r.withTx(ctx, "profileSettingRepository.UpdateValue", func(tx *sql.Tx) error {
		var scanErr error
		updated, scanErr = scanProfileSetting(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrProfileSettingNotFound
		}
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		return r.touchProfile(ctx, tx, profileID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileSettingRepository.UpdateValue").
			Int64("profile_id", profileID).
			Int64("setting_id", settingID).
			Msg("failed to update setting value")
		return models.ProfileSetting{}, err
	}

	return updated, nil
}

// Delete removes one setting of the profile or returns
// [ErrProfileSettingNotFound].
func (r *profileSettingRepository) Delete(ctx context.Context, profileID, settingID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSettingQuery(r.builder, profileID, settingID)
	if err != nil {
		log.Err(err).Str("func", "profileSettingRepository.Delete").Msg("failed to build query")
		return err
	}

	err = r.withTx(ctx, "profileSettingRepository.Delete", func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrProfileSettingNotFound
		}

		return r.touchProfile(ctx, tx, profileID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileSettingRepository.Delete").
			Int64("profile_id", profileID).
			Int64("setting_id", settingID).
			Msg("failed to delete setting")
		return err
	}

	return nil
}
