package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/fndecor/config"
	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/project"
	"github.com/viant/fndecor/telemetry"
)

// env holds what every command needs
type env struct {
	cfg      *config.Config
	fs       afs.Service
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
	report   bool
}

func newEnv(cmd *cobra.Command) (*env, error) {
	fs := afs.New()
	cfg := config.Default()
	location, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if location == "" {
		location = detectConfig(cmd.Context(), fs)
	}
	if location != "" {
		if cfg, err = config.Load(cmd.Context(), fs, location); err != nil {
			return nil, err
		}
		if dir, ok := localDir(location); ok {
			cfg.RootDir = resolve(dir, cfg.RootDir)
			cfg.OutDir = resolve(dir, cfg.OutDir)
		}
	}
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	slogLevel, _ := cfg.Level()
	report, err := cmd.Flags().GetBool("metrics")
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics flag: %w", err)
	}
	registry := prometheus.NewRegistry()
	return &env{
		cfg:      cfg,
		fs:       fs,
		logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})),
		registry: registry,
		metrics:  telemetry.New(registry),
		report:   report,
	}, nil
}

// detectConfig returns the configuration file of the project enclosing the working directory
func detectConfig(ctx context.Context, fs afs.Service) string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	detected, err := project.New(fs).Detect(ctx, wd)
	if err != nil {
		return ""
	}
	return detected.Config
}

// localDir returns the directory of a local file location
func localDir(location string) (string, bool) {
	if strings.HasPrefix(location, "file://") {
		location = strings.TrimPrefix(location, "file://")
		if index := strings.Index(location, "/"); index != -1 {
			location = location[index:]
		}
	}
	if strings.Contains(location, "://") {
		return "", false
	}
	return filepath.Dir(location), true
}

// resolve joins relative local paths to dir
func resolve(dir, value string) string {
	if value == "" || filepath.IsAbs(value) || strings.Contains(value, "://") {
		return value
	}
	return filepath.Join(dir, value)
}

// rootFiles returns explicit file arguments, or discovers sources under the configured root
func (e *env) rootFiles(ctx context.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		var result []string
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, abs)
		}
		return result, nil
	}
	root, err := filepath.Abs(e.cfg.RootDir)
	if err != nil {
		return nil, err
	}
	return frontend.Discover(ctx, e.fs, root, frontend.SourceFiles(e.cfg.Extensions, e.cfg.Exclude))
}

func (e *env) program(ctx context.Context, roots []string) (*frontend.Program, frontend.Host, error) {
	parser := frontend.NewParser(frontend.WithParserLogger(e.logger))
	host := frontend.NewFileHost(frontend.WithFileService(e.fs), frontend.WithParser(parser))
	program, err := frontend.NewProgram(ctx, roots, &frontend.Options{
		NoUnusedLocals: e.cfg.Diagnostics.NoUnusedLocals,
		Logger:         e.logger,
	}, host)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range program.Missing() {
		e.logger.Warn("file not found", slog.String("file", name))
	}
	return program, host, nil
}

// printMetrics writes non-zero counters to stderr
func (e *env) printMetrics() {
	if !e.report {
		return
	}
	families, err := e.registry.Gather()
	if err != nil {
		e.logger.Error("failed to gather metrics", slog.Any("error", err))
		return
	}
	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			var labels []string
			for _, pair := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%v=%q", pair.GetName(), pair.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%v{%v} %v", family.GetName(), strings.Join(labels, ","), value))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}
}
