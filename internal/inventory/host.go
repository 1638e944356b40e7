package inventory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

// HostCollector builds a [models.HostSummary] from gopsutil. The collector
// functions are fields so tests can replace them.
type HostCollector struct {
	hostInfo   func(ctx context.Context) (*host.InfoStat, error)
	cpuInfo    func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCounts  func(ctx context.Context, logical bool) (int, error)
	memoryInfo func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// NewHostCollector returns a collector reading the running host.
func NewHostCollector() *HostCollector {
	return &HostCollector{
		hostInfo:   host.InfoWithContext,
		cpuInfo:    cpu.InfoWithContext,
		cpuCounts:  cpu.CountsWithContext,
		memoryInfo: mem.VirtualMemoryWithContext,
	}
}

// Collect fails only when the host information itself is unavailable. CPU
// and memory errors are logged and leave the matching fields empty.
func (c *HostCollector) Collect(ctx context.Context) (models.HostSummary, error) {
	log := logger.FromContext(ctx)

	info, err := c.hostInfo(ctx)
	if err != nil {
		return models.HostSummary{}, fmt.Errorf("reading host info: %w", err)
	}

	summary := models.HostSummary{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		UptimeSeconds:   info.Uptime,
	}

	if cpus, err := c.cpuInfo(ctx); err != nil {
		log.Warn().Err(err).Str("func", "HostCollector.Collect").Msg("cpu.InfoWithContext failed; cpu model will be empty")
	} else if len(cpus) > 0 {
		summary.CPUModel = cpus[0].ModelName
	}

	if cores, err := c.cpuCounts(ctx, true); err != nil {
		log.Warn().Err(err).Str("func", "HostCollector.Collect").Msg("cpu.CountsWithContext failed; core count will be zero")
	} else {
		summary.CPUCores = cores
	}

	if vm, err := c.memoryInfo(ctx); err != nil {
		log.Warn().Err(err).Str("func", "HostCollector.Collect").Msg("mem.VirtualMemoryWithContext failed; memory total will be zero")
	} else {
		summary.MemoryTotal = vm.Total
	}

	return summary, nil
}
