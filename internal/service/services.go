package service

import (
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/devenv"
	"github.com/MKhiriev/system-sage/internal/inventory"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/metrics"
	"github.com/MKhiriev/system-sage/internal/store"
	"github.com/MKhiriev/system-sage/models"
)

type Services struct {
	BiosProfileService     BiosProfileService
	SystemInventoryService SystemInventoryService
	DevEnvAuditService     DevEnvAuditService
	AppInfoService         AppInfoService
}

// NewServices wires the services of the server from the storages and the
// host collectors configured in cfg.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	source, err := inventory.NewSource(cfg.Inventory, logger)
	if err != nil {
		return nil, err
	}

	auditor, err := devenv.NewScanner(cfg.Audit, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		BiosProfileService: NewBiosProfileValidationService().Wrap(NewBiosProfileService(storages, logger)),
		SystemInventoryService: NewSystemInventoryService(
			source,
			inventory.NewHostCollector(),
			inventory.NewFirmwareCollector(),
			m,
			logger,
		),
		DevEnvAuditService: NewDevEnvAuditService(auditor, m, logger),
		AppInfoService:     appInfoService,
	}, nil
}
