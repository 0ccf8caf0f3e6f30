package health

// StatusHealthy is the status reported on every successful sample. The
// sampler makes no threshold judgement; alerting belongs to downstream
// consumers.
const StatusHealthy = "healthy"

// Snapshot is one point-in-time record of host resource utilization.
// It is constructed once, emitted once and never updated.
type Snapshot struct {
	Status          string  `json:"status"`
	CPUUsage        float64 `json:"cpu_usage"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryAvailable uint64  `json:"memory_available"`
	MemoryUsed      uint64  `json:"memory_used"`
	MemoryPercent   float64 `json:"memory_percent"`
	DiskTotal       uint64  `json:"disk_total"`
	DiskUsed        uint64  `json:"disk_used"`
	DiskFree        uint64  `json:"disk_free"`
	DiskPercent     float64 `json:"disk_percent"`
	DiskReadBytes   uint64  `json:"disk_read_bytes"`
	DiskWriteBytes  uint64  `json:"disk_write_bytes"`
}

// MemoryStat carries the virtual-memory readings the sampler needs.
// Available follows the OS definition (reclaimable without swapping),
// not total minus used.
type MemoryStat struct {
	Total     uint64
	Available uint64
}

// DiskUsageStat carries capacity readings for a single filesystem.
// Used + Free may be less than Total because of reserved blocks.
type DiskUsageStat struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// DiskIOStat carries cumulative byte counters since boot, summed over
// all block devices.
type DiskIOStat struct {
	ReadBytes  uint64
	WriteBytes uint64
}
