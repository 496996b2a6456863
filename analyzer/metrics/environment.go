package metrics

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/perf-bench/analyzer/types"
)

// CollectEnvironment takes a one-shot snapshot of the host for inclusion in
// analysis reports. Collection failures degrade to a partial snapshot; they
// never block analysis.
func CollectEnvironment() *types.EnvironmentInfo {
	env := &types.EnvironmentInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		CPUCores:     runtime.NumCPU(),
		GoVersion:    runtime.Version(),
	}

	if info, err := host.Info(); err == nil {
		env.Hostname = info.Hostname
		env.OS = info.Platform
	}

	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		env.CPUCores = counts
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		env.CPUModel = infos[0].ModelName
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		env.TotalMemoryGB = float64(vm.Total) / (1024 * 1024 * 1024)
	}

	return env
}
