package health

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Collector is the OS metric capability the sampler queries. The real
// implementation reads kernel accounting through gopsutil; tests inject
// deterministic fakes.
type Collector interface {
	// CPUPercent blocks for the given window and returns the CPU-busy
	// percentage averaged over it.
	CPUPercent(ctx context.Context, window time.Duration) (float64, error)
	VirtualMemory(ctx context.Context) (MemoryStat, error)
	DiskUsage(ctx context.Context, path string) (DiskUsageStat, error)
	DiskIOCounters(ctx context.Context) (DiskIOStat, error)
}

// SystemCollector reads the host OS accounting interfaces via gopsutil.
type SystemCollector struct{}

func NewSystemCollector() *SystemCollector {
	return &SystemCollector{}
}

func (c *SystemCollector) CPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("no aggregate cpu sample returned")
	}
	return percents[0], nil
}

func (c *SystemCollector) VirtualMemory(ctx context.Context) (MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{
		Total:     vm.Total,
		Available: vm.Available,
	}, nil
}

func (c *SystemCollector) DiskUsage(ctx context.Context, path string) (DiskUsageStat, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskUsageStat{}, err
	}
	return DiskUsageStat{
		Total: usage.Total,
		Used:  usage.Used,
		Free:  usage.Free,
	}, nil
}

func (c *SystemCollector) DiskIOCounters(ctx context.Context) (DiskIOStat, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return DiskIOStat{}, err
	}
	if len(counters) == 0 {
		return DiskIOStat{}, fmt.Errorf("no block devices reported io counters")
	}

	var io DiskIOStat
	for _, counter := range counters {
		io.ReadBytes += counter.ReadBytes
		io.WriteBytes += counter.WriteBytes
	}
	return io, nil
}
