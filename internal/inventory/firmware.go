package inventory

import (
	"context"
	"fmt"

	"github.com/jaypipes/ghw"
	"github.com/siderolabs/go-smbios/smbios"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

// FirmwareCollector reads the DMI tables of the host: BIOS, system and
// baseboard through ghw, memory modules through go-smbios.
type FirmwareCollector struct {
	readDMI    func() (models.FirmwareSnapshot, error)
	readMemory func() ([]models.MemoryModule, error)
}

// NewFirmwareCollector returns a collector reading the running host.
func NewFirmwareCollector() *FirmwareCollector {
	return &FirmwareCollector{
		readDMI:    readDMI,
		readMemory: readMemoryModules,
	}
}

// Collect fails when the DMI identification cannot be read. A memory table
// that cannot be read is logged and reported as an empty module list.
func (c *FirmwareCollector) Collect(ctx context.Context) (models.FirmwareSnapshot, error) {
	log := logger.FromContext(ctx)

	snapshot, err := c.readDMI()
	if err != nil {
		return models.FirmwareSnapshot{}, fmt.Errorf("reading dmi tables: %w", err)
	}

	modules, err := c.readMemory()
	if err != nil {
		log.Warn().Err(err).Str("func", "FirmwareCollector.Collect").Msg("reading smbios memory devices failed")
		modules = []models.MemoryModule{}
	}
	snapshot.Memory = modules

	return snapshot, nil
}

func readDMI() (models.FirmwareSnapshot, error) {
	product, err := ghw.Product()
	if err != nil {
		return models.FirmwareSnapshot{}, err
	}
	bios, err := ghw.BIOS()
	if err != nil {
		return models.FirmwareSnapshot{}, err
	}
	baseboard, err := ghw.Baseboard()
	if err != nil {
		return models.FirmwareSnapshot{}, err
	}

	return models.FirmwareSnapshot{
		BIOS: models.BIOSInformation{
			Vendor:  bios.Vendor,
			Version: bios.Version,
			Date:    bios.Date,
		},
		System: models.SystemInformation{
			Manufacturer: product.Vendor,
			ProductName:  product.Name,
			Version:      product.Version,
			SerialNumber: product.SerialNumber,
			UUID:         product.UUID,
			SKUNumber:    product.SKU,
			Family:       product.Family,
		},
		Board: models.BoardInformation{
			Manufacturer: baseboard.Vendor,
			Product:      baseboard.Product,
			Version:      baseboard.Version,
			SerialNumber: baseboard.SerialNumber,
			AssetTag:     baseboard.AssetTag,
		},
	}, nil
}

func readMemoryModules() ([]models.MemoryModule, error) {
	sm, err := smbios.New()
	if err != nil {
		return nil, err
	}

	return memoryModules(sm.MemoryDevices), nil
}

func memoryModules(devices []smbios.MemoryDevice) []models.MemoryModule {
	modules := make([]models.MemoryModule, 0, len(devices))
	for _, m := range devices {
		// empty slot
		if m.Size == 0 {
			continue
		}
		modules = append(modules, models.MemoryModule{
			SizeBytes:       memoryDeviceBytes(m.Size, m.ExtendedSize),
			DeviceLocator:   m.DeviceLocator,
			BankLocator:     m.BankLocator,
			MemoryType:      m.MemoryType.String(),
			Speed:           m.Speed.String(),
			ConfiguredSpeed: m.ConfiguredMemorySpeed.String(),
			Manufacturer:    m.Manufacturer,
			PartNumber:      m.PartNumber,
		})
	}

	return modules
}

const (
	memorySizeUnknown  = 0xFFFF
	memorySizeExtended = 0x7FFF
	memorySizeKBFlag   = 0x8000
)

// memoryDeviceBytes decodes the SMBIOS type 17 size fields. Size holds MB,
// or KB when bit 15 is set. 0x7FFF defers to ExtendedSize in MB and 0xFFFF
// means unknown, reported as 0.
func memoryDeviceBytes(size smbios.MemoryDeviceSize, extended smbios.MemoryDeviceExtendedSize) int64 {
	switch {
	case size == memorySizeUnknown:
		return 0
	case size == memorySizeExtended:
		return int64(extended) << 20
	case size&memorySizeKBFlag != 0:
		return int64(size&^memorySizeKBFlag) << 10
	default:
		return int64(size) << 20
	}
}
