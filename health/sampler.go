package health

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// ErrMetricUnavailable marks a failed OS metric query. The whole sample
// is aborted; a partial snapshot is worse than none.
var ErrMetricUnavailable = errors.New("metric unavailable")

// MinSampleWindow is the floor for the CPU observation window. An
// instantaneous CPU percentage is meaningless, so shorter windows are
// clamped up to this.
const MinSampleWindow = time.Second

// DefaultRootPath is the sole disk-capacity target.
const DefaultRootPath = "/"

// Sampler assembles one Snapshot from a Collector.
type Sampler struct {
	collector Collector
	rootPath  string
	window    time.Duration
	logger    zerolog.Logger
}

func NewSampler(collector Collector, rootPath string, window time.Duration, logger zerolog.Logger) *Sampler {
	if rootPath == "" {
		rootPath = DefaultRootPath
	}
	if window < MinSampleWindow {
		window = MinSampleWindow
	}
	return &Sampler{
		collector: collector,
		rootPath:  rootPath,
		window:    window,
		logger:    logger,
	}
}

// Sample takes one reading of every metric group and returns the merged
// snapshot. Any query failure aborts the sample with ErrMetricUnavailable
// wrapping the cause.
func (s *Sampler) Sample(ctx context.Context) (Snapshot, error) {
	cpuPercent, err := s.collector.CPUPercent(ctx, s.window)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: cpu: %v", ErrMetricUnavailable, err)
	}
	s.logger.Debug().Float64("cpu_percent", cpuPercent).Dur("window", s.window).Msg("CPU usage sampled")

	vm, err := s.collector.VirtualMemory(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: memory: %v", ErrMetricUnavailable, err)
	}
	if vm.Total == 0 {
		return Snapshot{}, fmt.Errorf("%w: memory: total reported as zero", ErrMetricUnavailable)
	}

	// vm.UsedPercent overcounts cached and buffered memory, so usage is
	// derived from Available the way the OS defines reclaimability.
	memUsed := vm.Total - min(vm.Available, vm.Total)
	memPercent := float64(memUsed) / float64(vm.Total) * 100
	s.logger.Debug().Float64("memory_percent", memPercent).Msg("Memory usage sampled")

	usage, err := s.collector.DiskUsage(ctx, s.rootPath)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: disk usage %q: %v", ErrMetricUnavailable, s.rootPath, err)
	}
	if usage.Total == 0 {
		return Snapshot{}, fmt.Errorf("%w: disk usage %q: total reported as zero", ErrMetricUnavailable, s.rootPath)
	}

	// Used+Free excludes reserved blocks, matching what df reports.
	var diskPercent float64
	if usage.Used+usage.Free > 0 {
		diskPercent = float64(usage.Used) / float64(usage.Used+usage.Free) * 100
	}
	s.logger.Debug().Str("path", s.rootPath).Float64("disk_percent", diskPercent).Msg("Disk usage sampled")

	io, err := s.collector.DiskIOCounters(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: disk io counters: %v", ErrMetricUnavailable, err)
	}
	s.logger.Debug().Uint64("read_bytes", io.ReadBytes).Uint64("write_bytes", io.WriteBytes).Msg("Disk IO counters sampled")

	return Snapshot{
		Status:          StatusHealthy,
		CPUUsage:        roundPercent(clampPercent(cpuPercent)),
		MemoryTotal:     vm.Total,
		MemoryAvailable: min(vm.Available, vm.Total),
		MemoryUsed:      memUsed,
		MemoryPercent:   roundPercent(clampPercent(memPercent)),
		DiskTotal:       usage.Total,
		DiskUsed:        usage.Used,
		DiskFree:        usage.Free,
		DiskPercent:     roundPercent(clampPercent(diskPercent)),
		DiskReadBytes:   io.ReadBytes,
		DiskWriteBytes:  io.WriteBytes,
	}, nil
}

func clampPercent(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundPercent keeps one decimal place, matching what downstream jq
// consumers of this format already parse.
func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
