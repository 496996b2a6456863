package analysis

// Thresholds tunes the bottleneck and recommendation heuristics. The
// defaults match the established analysis behavior; operators can override
// them via the YAML config.
type Thresholds struct {
	// GPU utilization check: flag when the average CUDA/CPU GFLOPS speedup
	// falls below MinGPUSpeedup; critical below CriticalGPUSpeedup.
	MinGPUSpeedup      float64 `yaml:"min_gpu_speedup" json:"min_gpu_speedup"`
	CriticalGPUSpeedup float64 `yaml:"critical_gpu_speedup" json:"critical_gpu_speedup"`

	// Timing variance check: flag "ms" results whose per-run coefficient of
	// variation exceeds MaxTimingCV.
	MaxTimingCV float64 `yaml:"max_timing_cv" json:"max_timing_cv"`

	// Memory bandwidth check: results below BandwidthFloorGBs are measured
	// against BandwidthCeilingGBs (A100-class theoretical peak); efficiency
	// below MinBandwidthEfficiency is flagged, below LowBandwidthEfficiency
	// with high severity.
	BandwidthFloorGBs      float64 `yaml:"bandwidth_floor_gbs" json:"bandwidth_floor_gbs"`
	BandwidthCeilingGBs    float64 `yaml:"bandwidth_ceiling_gbs" json:"bandwidth_ceiling_gbs"`
	MinBandwidthEfficiency float64 `yaml:"min_bandwidth_efficiency" json:"min_bandwidth_efficiency"`
	LowBandwidthEfficiency float64 `yaml:"low_bandwidth_efficiency" json:"low_bandwidth_efficiency"`

	// Recommendation triggers.
	MinTFLOPS       float64 `yaml:"min_tflops" json:"min_tflops"`
	LargeMatrixSize float64 `yaml:"large_matrix_size" json:"large_matrix_size"`
	MinCPUCores     int     `yaml:"min_cpu_cores" json:"min_cpu_cores"`
}

// DefaultThresholds returns the stock heuristic constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinGPUSpeedup:          10,
		CriticalGPUSpeedup:     5,
		MaxTimingCV:            0.1,
		BandwidthFloorGBs:      500,
		BandwidthCeilingGBs:    900,
		MinBandwidthEfficiency: 60,
		LowBandwidthEfficiency: 40,
		MinTFLOPS:              15,
		LargeMatrixSize:        8192,
		MinCPUCores:            4,
	}
}
