package store

import (
	"context"

	"github.com/MKhiriev/system-sage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BiosProfileRepository persists [models.BiosProfile] records.
type BiosProfileRepository interface {
	// FindAll returns every profile, most recently modified first.
	FindAll(ctx context.Context) ([]models.BiosProfile, error)
	// FindByID returns [ErrBiosProfileNotFound] when no profile has the id.
	FindByID(ctx context.Context, id int64) (models.BiosProfile, error)
	// Save inserts a profile with a zero id and upserts one with a non-zero id.
	Save(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error)
	// DeleteByID removes the profile and its settings and logs. Deleting a
	// missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// ProfileSettingRepository persists settings that belong to a profile. Every
// mutation also bumps the owning profile's last-modified timestamp.
type ProfileSettingRepository interface {
	FindByProfile(ctx context.Context, profileID int64) ([]models.ProfileSetting, error)
	Create(ctx context.Context, setting models.ProfileSetting) (models.ProfileSetting, error)
	UpdateValue(ctx context.Context, profileID, settingID int64, value string) (models.ProfileSetting, error)
	Delete(ctx context.Context, profileID, settingID int64) error
}

// ProfileLogRepository persists free-text log entries of a profile.
type ProfileLogRepository interface {
	FindByProfile(ctx context.Context, profileID int64) ([]models.ProfileLog, error)
	Create(ctx context.Context, entry models.ProfileLog) (models.ProfileLog, error)
}

// ErrorClassificator maps driver-specific errors onto retry decisions and
// constraint violations.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Violation(err error) ConstraintViolation
}
