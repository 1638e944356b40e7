package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/store"
	"github.com/MKhiriev/system-sage/internal/validators"
	"github.com/MKhiriev/system-sage/models"
)

type biosProfileService struct {
	profileRepository store.BiosProfileRepository
	settingRepository store.ProfileSettingRepository
	logRepository     store.ProfileLogRepository

	clock  func() time.Time
	logger *logger.Logger
}

func NewBiosProfileService(storages *store.Storages, logger *logger.Logger) BiosProfileService {
	return &biosProfileService{
		profileRepository: storages.BiosProfileRepository,
		settingRepository: storages.ProfileSettingRepository,
		logRepository:     storages.ProfileLogRepository,
		clock:             time.Now,
		logger:            logger,
	}
}

func (s *biosProfileService) now() time.Time {
	return s.clock().UTC()
}

func (s *biosProfileService) GetAllProfiles(ctx context.Context) ([]models.BiosProfile, error) {
	return s.profileRepository.FindAll(ctx)
}

func (s *biosProfileService) GetProfileByID(ctx context.Context, id int64) (*models.BiosProfile, error) {
	profile, err := s.profileRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrBiosProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile stamps LastModifiedDate, and CreatedAt when it is zero, then
// persists the profile. A zero id inserts, any other id upserts.
func (s *biosProfileService) SaveProfile(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error) {
	now := s.now()
	profile.LastModifiedDate = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	saved, err := s.profileRepository.Save(ctx, profile)
	if err != nil {
		return models.BiosProfile{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "biosProfileService.SaveProfile").
		Int64("profile_id", saved.ID).
		Msg("profile saved")

	return saved, nil
}

// UpdateProfile forces id onto the payload and saves it. A missing id is
// created.
func (s *biosProfileService) UpdateProfile(ctx context.Context, id int64, profile models.BiosProfile) (models.BiosProfile, error) {
	profile.ID = id
	return s.SaveProfile(ctx, profile)
}

func (s *biosProfileService) DeleteProfile(ctx context.Context, id int64) error {
	return s.profileRepository.DeleteByID(ctx, id)
}

// GetSettings returns store.ErrBiosProfileNotFound for an unknown profile
// instead of an empty list.
func (s *biosProfileService) GetSettings(ctx context.Context, profileID int64) ([]models.ProfileSetting, error) {
	if _, err := s.profileRepository.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.settingRepository.FindByProfile(ctx, profileID)
}

func (s *biosProfileService) AddSetting(ctx context.Context, profileID int64, setting models.ProfileSetting) (models.ProfileSetting, error) {
	setting.ID = 0
	setting.ProfileID = profileID
	if setting.ValueType == "" {
		setting.ValueType = validators.ValueTypeString
	}
	return s.settingRepository.Create(ctx, setting)
}

func (s *biosProfileService) UpdateSettingValue(ctx context.Context, profileID, settingID int64, value string) (models.ProfileSetting, error) {
	return s.settingRepository.UpdateValue(ctx, profileID, settingID, value)
}

func (s *biosProfileService) DeleteSetting(ctx context.Context, profileID, settingID int64) error {
	return s.settingRepository.Delete(ctx, profileID, settingID)
}

// GetLogs returns store.ErrBiosProfileNotFound for an unknown profile.
func (s *biosProfileService) GetLogs(ctx context.Context, profileID int64) ([]models.ProfileLog, error) {
	if _, err := s.profileRepository.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.logRepository.FindByProfile(ctx, profileID)
}

func (s *biosProfileService) AddLog(ctx context.Context, profileID int64, entry models.ProfileLog) (models.ProfileLog, error) {
	entry.ID = 0
	entry.ProfileID = profileID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	return s.logRepository.Create(ctx, entry)
}
