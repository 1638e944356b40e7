package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

//go:generate mockgen -source=source.go -destination=../mock/inventory_mock.go -package=mock

// ErrUnsupportedPlatform is returned by sources and collectors that cannot
// work on the running operating system.
var ErrUnsupportedPlatform = errors.New("not supported on this platform")

// UninstallRoots are the registry keys whose subkeys describe installed
// software, in scan order.
var UninstallRoots = []string{
	`HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`HKEY_LOCAL_MACHINE\SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	`HKEY_CURRENT_USER\SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// Source yields the installed software of the host. A record is only
// returned when its display name is known.
type Source interface {
	InstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error)
}

// NewSource builds the source selected by cfg.Source.
func NewSource(cfg config.Inventory, log *logger.Logger) (Source, error) {
	switch cfg.Source {
	case config.InventorySourceRegQuery, "":
		return NewRegQuerySource(NewExecRunner(cfg.CommandTimeout), cfg.RegCommand, log), nil
	case config.InventorySourceRegistry:
		return NewRegistrySource(log), nil
	}
	return nil, fmt.Errorf("unknown inventory source %q", cfg.Source)
}

// HostInfoCollector describes the machine the service runs on.
type HostInfoCollector interface {
	Collect(ctx context.Context) (models.HostSummary, error)
}

// FirmwareInfoCollector reads the DMI tables of the machine.
type FirmwareInfoCollector interface {
	Collect(ctx context.Context) (models.FirmwareSnapshot, error)
}

var (
	_ HostInfoCollector     = (*HostCollector)(nil)
	_ FirmwareInfoCollector = (*FirmwareCollector)(nil)
)
