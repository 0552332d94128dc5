// Package metrics samples host disk and memory usage via gopsutil.
package metrics

import (
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// DiskSample is a point-in-time reading of filesystem capacity, in
// gigabytes rounded to two decimals.
type DiskSample struct {
	TotalGB     float64 `json:"total_gb"`
	UsedGB      float64 `json:"used_gb"`
	FreeGB      float64 `json:"free_gb"`
	PercentUsed float64 `json:"percent_used"`
}

// MemorySample is a point-in-time reading of virtual memory. Available
// is distinct from Free: it includes reclaimable cache.
type MemorySample struct {
	TotalGB     float64 `json:"total_gb"`
	AvailableGB float64 `json:"available_gb"`
	PercentUsed float64 `json:"percent_used"`
	UsedGB      float64 `json:"used_gb"`
	FreeGB      float64 `json:"free_gb"`
}

// SampleDisk reads capacity for the filesystem at path.
func SampleDisk(path string) (DiskSample, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskSample{}, fmt.Errorf("error getting disk usage: %w", err)
	}
	var pct float64
	if usage.Total > 0 {
		pct = float64(usage.Used) / float64(usage.Total) * 100
	}
	return DiskSample{
		TotalGB:     toGB(usage.Total),
		UsedGB:      toGB(usage.Used),
		FreeGB:      toGB(usage.Free),
		PercentUsed: Round2(pct),
	}, nil
}

// SampleMemory reads host virtual memory accounting.
func SampleMemory() (MemorySample, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemorySample{}, fmt.Errorf("error getting memory usage: %w", err)
	}
	return MemorySample{
		TotalGB:     toGB(vm.Total),
		AvailableGB: toGB(vm.Available),
		PercentUsed: Round2(vm.UsedPercent),
		UsedGB:      toGB(vm.Used),
		FreeGB:      toGB(vm.Free),
	}, nil
}

// Round2 rounds to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func toGB(bytes uint64) float64 {
	return Round2(float64(bytes) / (1 << 30))
}
