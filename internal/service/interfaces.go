package service

import (
	"context"

	"github.com/MKhiriev/system-sage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// BiosProfileService manages BIOS profiles and their settings and logs.
type BiosProfileService interface {
	GetAllProfiles(ctx context.Context) ([]models.BiosProfile, error)
	// GetProfileByID returns nil without error when the profile does not exist.
	GetProfileByID(ctx context.Context, id int64) (*models.BiosProfile, error)
	SaveProfile(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error)
	// UpdateProfile stores profile under id, creating it when missing.
	UpdateProfile(ctx context.Context, id int64, profile models.BiosProfile) (models.BiosProfile, error)
	DeleteProfile(ctx context.Context, id int64) error

	GetSettings(ctx context.Context, profileID int64) ([]models.ProfileSetting, error)
	AddSetting(ctx context.Context, profileID int64, setting models.ProfileSetting) (models.ProfileSetting, error)
	UpdateSettingValue(ctx context.Context, profileID, settingID int64, value string) (models.ProfileSetting, error)
	DeleteSetting(ctx context.Context, profileID, settingID int64) error

	GetLogs(ctx context.Context, profileID int64) ([]models.ProfileLog, error)
	AddLog(ctx context.Context, profileID int64, entry models.ProfileLog) (models.ProfileLog, error)
}

// BiosProfileServiceWrapper decorates a BiosProfileService, e.g. with input
// validation.
type BiosProfileServiceWrapper interface {
	Wrap(BiosProfileService) BiosProfileService
}

// SystemInventoryService describes the host: installed software, a short
// system summary and the firmware tables.
type SystemInventoryService interface {
	GetInstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error)
	GetHostSummary(ctx context.Context) (models.HostSummary, error)
	GetFirmwareSnapshot(ctx context.Context) (models.FirmwareSnapshot, error)
}

// DevEnvAuditService runs the developer environment audit. Every call scans
// the host again.
type DevEnvAuditService interface {
	GetDetectedComponents(ctx context.Context) ([]string, error)
	GetEnvironmentVariables(ctx context.Context) ([]string, error)
	GetIdentifiedIssues(ctx context.Context) ([]string, error)
	GetReport(ctx context.Context) (models.AuditReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
