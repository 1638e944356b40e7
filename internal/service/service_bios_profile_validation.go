package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/system-sage/internal/validators"
	"github.com/MKhiriev/system-sage/models"
)

// BiosProfileValidationService validates settings and log entries before
// handing them to the wrapped service. Profiles are passed through as given.
type BiosProfileValidationService struct {
	inner     BiosProfileService
	validator validators.Validator
}

func NewBiosProfileValidationService() BiosProfileServiceWrapper {
	return &BiosProfileValidationService{
		validator: validators.NewBiosProfileValidator(),
	}
}

func (v *BiosProfileValidationService) Wrap(inner BiosProfileService) BiosProfileService {
	v.inner = inner
	return v
}

func (v *BiosProfileValidationService) GetAllProfiles(ctx context.Context) ([]models.BiosProfile, error) {
	return v.inner.GetAllProfiles(ctx)
}

func (v *BiosProfileValidationService) GetProfileByID(ctx context.Context, id int64) (*models.BiosProfile, error) {
	return v.inner.GetProfileByID(ctx, id)
}

func (v *BiosProfileValidationService) SaveProfile(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error) {
	return v.inner.SaveProfile(ctx, profile)
}

func (v *BiosProfileValidationService) UpdateProfile(ctx context.Context, id int64, profile models.BiosProfile) (models.BiosProfile, error) {
	return v.inner.UpdateProfile(ctx, id, profile)
}

func (v *BiosProfileValidationService) DeleteProfile(ctx context.Context, id int64) error {
	return v.inner.DeleteProfile(ctx, id)
}

func (v *BiosProfileValidationService) GetSettings(ctx context.Context, profileID int64) ([]models.ProfileSetting, error) {
	return v.inner.GetSettings(ctx, profileID)
}

func (v *BiosProfileValidationService) AddSetting(ctx context.Context, profileID int64, setting models.ProfileSetting) (models.ProfileSetting, error) {
	setting.ProfileID = profileID
	if err := v.validator.Validate(ctx, setting); err != nil {
		return models.ProfileSetting{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddSetting(ctx, profileID, setting)
}

func (v *BiosProfileValidationService) UpdateSettingValue(ctx context.Context, profileID, settingID int64, value string) (models.ProfileSetting, error) {
	setting := models.ProfileSetting{ID: settingID, ProfileID: profileID, Value: value}
	if err := v.validator.Validate(ctx, setting, validators.FieldProfileID); err != nil {
		return models.ProfileSetting{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateSettingValue(ctx, profileID, settingID, value)
}

func (v *BiosProfileValidationService) DeleteSetting(ctx context.Context, profileID, settingID int64) error {
	return v.inner.DeleteSetting(ctx, profileID, settingID)
}

func (v *BiosProfileValidationService) GetLogs(ctx context.Context, profileID int64) ([]models.ProfileLog, error) {
	return v.inner.GetLogs(ctx, profileID)
}

func (v *BiosProfileValidationService) AddLog(ctx context.Context, profileID int64, entry models.ProfileLog) (models.ProfileLog, error) {
	entry.ProfileID = profileID
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.ProfileLog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddLog(ctx, profileID, entry)
}
