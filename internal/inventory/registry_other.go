//go:build !windows

package inventory

import (
	"context"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

// RegistrySource reads the Windows registry natively. This build has no
// registry, so every call fails with [ErrUnsupportedPlatform].
type RegistrySource struct {
	logger *logger.Logger
}

// NewRegistrySource returns a source that always reports
// [ErrUnsupportedPlatform].
func NewRegistrySource(log *logger.Logger) *RegistrySource {
	return &RegistrySource{logger: log}
}

func (s *RegistrySource) InstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error) {
	return nil, ErrUnsupportedPlatform
}
