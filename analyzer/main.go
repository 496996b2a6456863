package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/perf-bench/analyzer/analysis"
	"github.com/perf-bench/analyzer/api"
	"github.com/perf-bench/analyzer/config"
	"github.com/perf-bench/analyzer/formatters"
	"github.com/perf-bench/analyzer/metrics"
	"github.com/perf-bench/analyzer/parsers"
	"github.com/perf-bench/analyzer/types"
	"github.com/perf-bench/analyzer/validator"
)

func main() {
	// Parse command-line flags
	inputPath := flag.String("input", "", "Path to benchmark output file (- for stdin)")
	formatHint := flag.String("format", "", "Format hint: cuda, gpu, csv, json, kv, keyvalue")
	configPath := flag.String("config", "", "Path to YAML configuration file")
	outputPath := flag.String("output", "", "Path to write the analysis report JSON")
	listenAddr := flag.String("listen", "", "Run the HTTP API server on this address instead of one-shot analysis")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if *formatHint != "" {
		cfg.FormatHint = *formatHint
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	history := analysis.NewHistory(cfg.HistoryLimit)
	analyzer := analysis.NewPerformanceAnalyzer(history, logger)
	analyzer.SetThresholds(cfg.Thresholds)
	analyzer.SetEnvironment(metrics.CollectEnvironment())

	if cfg.ListenAddr != "" {
		runServer(cfg.ListenAddr, analyzer, logger)
		return
	}

	if *inputPath == "" {
		log.Fatal("Please provide a benchmark output file using -input (or -listen to run the API server)")
	}

	text, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	hint := strings.ToLower(cfg.FormatHint)
	if hint == "json" || strings.HasPrefix(strings.TrimSpace(text), "{") || strings.HasPrefix(strings.TrimSpace(text), "[") {
		for _, warning := range validator.ValidateJSON(text) {
			logger.WithField("warning", warning).Warn("Benchmark payload failed schema validation")
		}
	}

	suite := parsers.Parse(text, hint)
	if cfg.SuiteName != "" {
		suite.Name = cfg.SuiteName
	}
	metrics.ParsesTotal.WithLabelValues(suite.Name).Inc()
	metrics.ResultsParsed.WithLabelValues(suite.Name).Add(float64(len(suite.Results)))

	report := analyzer.Analyze(suite)

	printReport(report)

	if *outputPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal report: %v", err)
		}
		if err := os.WriteFile(*outputPath, data, 0644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("Wrote analysis report to: %s\n", *outputPath)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func runServer(addr string, analyzer *analysis.PerformanceAnalyzer, logger *logrus.Logger) {
	server := api.NewServer(addr, analyzer, logger)
	if err := server.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Fatalf("Failed to stop API server: %v", err)
	}
}

func printReport(report *types.AnalysisReport) {
	fmt.Printf("Suite: %s\n", report.SuiteName)
	fmt.Printf("Summary: %s\n\n", report.Summary)

	for metricType, m := range report.Metrics {
		fmt.Printf("%s: mean %s, median %s, p95 %s\n",
			metricType,
			formatters.FormatNumber(m.Mean, 2),
			formatters.FormatNumber(m.Median, 2),
			formatters.FormatNumber(m.P95, 2))
	}

	if len(report.Comparisons) > 0 {
		fmt.Println("\nVs previous run:")
		for _, c := range report.Comparisons {
			fmt.Printf("  %s [%s]: %s (%s, %s)\n",
				c.ComparisonName, c.MetricType,
				formatters.FormatChange(c.BaselineValue, c.ComparisonValue, c.MetricType),
				formatters.FormatPercentage(c.PercentChange, 1, true),
				formatters.FormatSpeedup(c.Speedup))
		}
	}

	if len(report.Bottlenecks) > 0 {
		fmt.Println("\nBottlenecks:")
		for _, b := range report.Bottlenecks {
			fmt.Printf("  [%s] %s: %s (impact %.1f)\n", b.Severity, b.Component, b.Description, b.Impact)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}
