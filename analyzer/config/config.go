// Package config loads analyzer configuration from YAML with environment
// variable substitution.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/perf-bench/analyzer/analysis"
)

// Config holds the runtime configuration for the benchmark analyzer.
type Config struct {
	// SuiteName overrides the parser-assigned suite name when set.
	SuiteName string `yaml:"suite_name"`

	// FormatHint forces a parser instead of auto-detection: cuda/gpu, csv,
	// json, kv/keyvalue.
	FormatHint string `yaml:"format_hint"`

	// ListenAddr enables the HTTP API when set, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// HistoryLimit bounds the in-memory run history; 0 keeps everything.
	HistoryLimit int `yaml:"history_limit"`

	Thresholds analysis.Thresholds `yaml:"thresholds"`
}

// Default returns a ready-to-use configuration with stock thresholds.
func Default() *Config {
	return &Config{
		Thresholds: analysis.DefaultThresholds(),
	}
}

// Load reads a YAML config file, substitutes ${VAR} and ${VAR:-default}
// references from the environment, and validates the result. Threshold
// fields left at zero fall back to their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	substituted := substituteEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(substituted), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyThresholdDefaults(&cfg.Thresholds)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyThresholdDefaults(t *analysis.Thresholds) {
	def := analysis.DefaultThresholds()
	if t.MinGPUSpeedup == 0 {
		t.MinGPUSpeedup = def.MinGPUSpeedup
	}
	if t.CriticalGPUSpeedup == 0 {
		t.CriticalGPUSpeedup = def.CriticalGPUSpeedup
	}
	if t.MaxTimingCV == 0 {
		t.MaxTimingCV = def.MaxTimingCV
	}
	if t.BandwidthFloorGBs == 0 {
		t.BandwidthFloorGBs = def.BandwidthFloorGBs
	}
	if t.BandwidthCeilingGBs == 0 {
		t.BandwidthCeilingGBs = def.BandwidthCeilingGBs
	}
	if t.MinBandwidthEfficiency == 0 {
		t.MinBandwidthEfficiency = def.MinBandwidthEfficiency
	}
	if t.LowBandwidthEfficiency == 0 {
		t.LowBandwidthEfficiency = def.LowBandwidthEfficiency
	}
	if t.MinTFLOPS == 0 {
		t.MinTFLOPS = def.MinTFLOPS
	}
	if t.LargeMatrixSize == 0 {
		t.LargeMatrixSize = def.LargeMatrixSize
	}
	if t.MinCPUCores == 0 {
		t.MinCPUCores = def.MinCPUCores
	}
}

func validate(cfg *Config) error {
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative")
	}

	t := cfg.Thresholds
	if t.BandwidthCeilingGBs <= 0 {
		return fmt.Errorf("bandwidth_ceiling_gbs must be greater than 0")
	}
	if t.MinGPUSpeedup <= 0 {
		return fmt.Errorf("min_gpu_speedup must be greater than 0")
	}
	if t.CriticalGPUSpeedup > t.MinGPUSpeedup {
		return fmt.Errorf("critical_gpu_speedup must not exceed min_gpu_speedup")
	}
	if t.LowBandwidthEfficiency > t.MinBandwidthEfficiency {
		return fmt.Errorf("low_bandwidth_efficiency must not exceed min_bandwidth_efficiency")
	}
	return nil
}
