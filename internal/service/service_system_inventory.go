package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/system-sage/internal/inventory"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/metrics"
	"github.com/MKhiriev/system-sage/models"
)

type systemInventoryService struct {
	source   inventory.Source
	host     inventory.HostInfoCollector
	firmware inventory.FirmwareInfoCollector

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewSystemInventoryService(
	source inventory.Source,
	host inventory.HostInfoCollector,
	firmware inventory.FirmwareInfoCollector,
	m *metrics.Metrics,
	logger *logger.Logger,
) SystemInventoryService {
	return &systemInventoryService{
		source:   source,
		host:     host,
		firmware: firmware,
		metrics:  m,
		logger:   logger,
	}
}

// GetInstalledSoftware returns whatever the source collected. When the scan
// is cut short by ctx the partial list is returned without error.
// inventory.ErrUnsupportedPlatform is passed through unchanged.
func (s *systemInventoryService) GetInstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	software, err := s.source.InstalledSoftware(ctx)
	s.metrics.ObserveInventoryScan(time.Since(start), len(software), err)

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).
			Str("func", "systemInventoryService.GetInstalledSoftware").
			Int("collected", len(software)).
			Msg("software scan interrupted, returning partial result")
	case errors.Is(err, inventory.ErrUnsupportedPlatform):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %w", ErrScanningSoftware, err)
	}

	if software == nil {
		software = []models.SoftwareInfo{}
	}

	log.Info().
		Str("func", "systemInventoryService.GetInstalledSoftware").
		Int("count", len(software)).
		Dur("duration", time.Since(start)).
		Msg("installed software scanned")

	return software, nil
}

func (s *systemInventoryService) GetHostSummary(ctx context.Context) (models.HostSummary, error) {
	summary, err := s.host.Collect(ctx)
	if err != nil {
		return models.HostSummary{}, fmt.Errorf("%w: %w", ErrCollectingHostInfo, err)
	}
	return summary, nil
}

func (s *systemInventoryService) GetFirmwareSnapshot(ctx context.Context) (models.FirmwareSnapshot, error) {
	snapshot, err := s.firmware.Collect(ctx)
	if err != nil {
		return models.FirmwareSnapshot{}, fmt.Errorf("%w: %w", ErrCollectingFirmware, err)
	}
	return snapshot, nil
}
