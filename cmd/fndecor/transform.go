package main

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/fndecor/syntax"
	"github.com/viant/fndecor/transform"
)

var transformCmd = &cobra.Command{
	Use:   "transform [flags] [files...]",
	Short: "Rewrite decorated function declarations into plain TypeScript",
	Long:  `Rewrite the decorated function declarations of the given files, or of every source under rootDir, and write the result to outDir`,
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().String("out", "", "output directory, overrides the config")
}

func runTransform(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.printMetrics()
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	if outDir == "" {
		outDir = e.cfg.OutDir
	}
	roots, err := e.rootFiles(ctx, args)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		e.logger.Info("no source files found", slog.String("rootDir", e.cfg.RootDir))
		return nil
	}
	program, host, err := e.program(ctx, roots)
	if err != nil {
		return err
	}
	_, session, err := transform.Transform(ctx, program, host,
		transform.WithParamPrefix(e.cfg.Transform.ParamPrefix),
		transform.WithDefaultType(e.cfg.Transform.DefaultType),
		transform.WithLogger(e.logger),
		transform.WithMetrics(e.metrics))
	if err != nil {
		return err
	}
	for _, unit := range session.Units() {
		for _, warning := range unit.Warnings {
			e.logger.Warn(warning, slog.String("file", unit.FileName))
		}
	}
	w := &writer{fs: e.fs, root: location(e.cfg.RootDir), outDir: location(outDir), logger: e.logger}
	written, skipped, err := w.write(ctx, session.Units())
	if err != nil {
		return err
	}
	e.logger.Info("transform completed",
		slog.Int("files", len(session.Units())),
		slog.Int("written", written),
		slog.Int("skipped", skipped),
		slog.String("outDir", w.outDir))
	return nil
}

// writer stores transformed units under outDir, mirroring their location below root
type writer struct {
	fs     afs.Service
	root   string
	outDir string
	logger *slog.Logger
}

func (w *writer) write(ctx context.Context, units []*transform.Unit) (written, skipped int, err error) {
	for _, unit := range units {
		if err = ctx.Err(); err != nil {
			return written, skipped, err
		}
		dest := url.Join(w.outDir, relativePath(w.root, unit.FileName))
		if w.upToDate(ctx, dest, unit.Hash) {
			skipped++
			continue
		}
		if err = w.fs.Upload(ctx, dest, 0644, strings.NewReader(unit.File.Text())); err != nil {
			return written, skipped, fmt.Errorf("failed to write %v: %w", dest, err)
		}
		w.logger.Debug("wrote file", slog.String("file", dest), slog.Bool("changed", unit.Changed()))
		written++
	}
	return written, skipped, nil
}

// upToDate reports whether dest already holds content hashing to hash
func (w *writer) upToDate(ctx context.Context, dest string, hash uint64) bool {
	if ok, err := w.fs.Exists(ctx, dest); err != nil || !ok {
		return false
	}
	data, err := w.fs.DownloadWithURL(ctx, dest)
	if err != nil {
		return false
	}
	existing, err := syntax.Hash(data)
	return err == nil && existing == hash
}

// relativePath returns fileName relative to root, or its base name when it is outside root
func relativePath(root, fileName string) string {
	rootPath := strings.TrimSuffix(schemeless(root), "/") + "/"
	filePath := schemeless(fileName)
	if index := strings.Index(filePath, rootPath); index != -1 && rootPath != "/" {
		return filePath[index+len(rootPath):]
	}
	return path.Base(filePath)
}

func schemeless(location string) string {
	if index := strings.Index(location, "://"); index != -1 {
		location = location[index+3:]
		if slash := strings.Index(location, "/"); slash != -1 {
			return location[slash:]
		}
		return "/"
	}
	return location
}

// location turns a local relative path into an absolute one; URLs are kept
func location(value string) string {
	if strings.Contains(value, "://") {
		return value
	}
	if abs, err := filepath.Abs(value); err == nil {
		return abs
	}
	return value
}
