package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/suppress"
)

var errDiagnostics = errors.New("errors found")

var (
	errorColor      = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow, color.Bold)
	suggestionColor = color.New(color.FgCyan)
	locationColor   = color.New(color.Faint)
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files...]",
	Short: "Report diagnostics with decorator noise filtered out",
	Long:  `Report syntactic and semantic diagnostics of the given files, or of every source under rootDir, dropping those caused by decorators on function declarations`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("suggestions", false, "include suggestion diagnostics")
	checkCmd.Flags().String("scope", "", "decorator suppression scope (span|file), overrides the config")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.printMetrics()
	withSuggestions, err := cmd.Flags().GetBool("suggestions")
	if err != nil {
		return fmt.Errorf("failed to get suggestions flag: %w", err)
	}
	scopeValue, err := cmd.Flags().GetString("scope")
	if err != nil {
		return fmt.Errorf("failed to get scope flag: %w", err)
	}
	if scopeValue == "" {
		scopeValue = e.cfg.Diagnostics.DecoratorScope
	}
	scope, err := suppress.ParseScope(scopeValue)
	if err != nil {
		return err
	}
	roots, err := e.rootFiles(ctx, args)
	if err != nil {
		return err
	}
	program, _, err := e.program(ctx, roots)
	if err != nil {
		return err
	}
	service := suppress.New(
		frontend.NewService(program, frontend.WithServiceLogger(e.logger)),
		suppress.WithScope(scope),
		suppress.WithLogger(e.logger),
		suppress.WithMetrics(e.metrics))
	defer service.Dispose()

	diagnostics := collect(ctx, service, program.RootNames(), withSuggestions)
	printDiagnostics(os.Stdout, program, diagnostics)
	e.logger.Debug("check completed", slog.Int("files", len(roots)), slog.Int("diagnostics", len(diagnostics)))
	if diag.HasErrors(diagnostics) {
		return errDiagnostics
	}
	return nil
}

func collect(ctx context.Context, service frontend.LanguageService, files []string, withSuggestions bool) []diag.Diagnostic {
	var result []diag.Diagnostic
	for _, name := range files {
		result = append(result, service.SyntacticDiagnostics(ctx, name)...)
		result = append(result, service.SemanticDiagnostics(ctx, name)...)
		if withSuggestions {
			result = append(result, service.SuggestionDiagnostics(ctx, name)...)
		}
	}
	return result
}

func printDiagnostics(w io.Writer, program *frontend.Program, diagnostics []diag.Diagnostic) {
	for _, d := range diagnostics {
		where := d.File
		if file := program.SourceFile(d.File); file != nil && d.HasLocation() {
			line, column := file.Position(d.Start)
			where = fmt.Sprintf("%v:%d:%d", d.File, line, column)
		}
		fmt.Fprintf(w, "%v %v %v: %v\n",
			locationColor.Sprint(where),
			severityColor(d.Severity).Sprint(d.Severity),
			d.Code,
			d.Message.Flatten())
	}
}

func severityColor(severity diag.Severity) *color.Color {
	switch severity {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return suggestionColor
}
