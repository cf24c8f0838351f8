package suppress

import (
	"fmt"
	"log/slog"

	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/telemetry"
)

// Scope selects where decorator-related diagnostics are dropped
type Scope string

const (
	// ScopeSpan drops them only inside decorated declarations
	ScopeSpan Scope = "span"
	// ScopeFile drops them anywhere in the file
	ScopeFile Scope = "file"
)

// ParseScope converts a configuration value
func ParseScope(value string) (Scope, error) {
	switch Scope(value) {
	case "", ScopeSpan:
		return ScopeSpan, nil
	case ScopeFile:
		return ScopeFile, nil
	}
	return "", fmt.Errorf("unsupported decorator scope: %v", value)
}

// Rule names the filter rule that dropped a diagnostic
type Rule string

const (
	RuleDecorator Rule = "decorator"
	RuleUnused    Rule = "unused"
	RuleModule    Rule = "module"
)

// Filter drops diagnostics caused by decorators on function declarations. It never adds
// or changes a diagnostic.
type Filter struct {
	scope   Scope
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewFilter creates a filter
func NewFilter(scope Scope, logger *slog.Logger, metrics *telemetry.Metrics) *Filter {
	if scope == "" {
		scope = ScopeSpan
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Filter{scope: scope, logger: logger, metrics: metrics}
}

// Apply returns the diagnostics to keep, in their original order
func (f *Filter) Apply(diagnostics []diag.Diagnostic, symbols *SymbolTable, source string) []diag.Diagnostic {
	if len(diagnostics) == 0 {
		return diagnostics
	}
	importsDecorator := false
	for _, name := range FirstImportList(source) {
		if symbols.Has(name) {
			importsDecorator = true
			break
		}
	}
	result := make([]diag.Diagnostic, 0, len(diagnostics))
	for _, candidate := range diagnostics {
		rule, drop := f.match(candidate, symbols, importsDecorator)
		if !drop {
			result = append(result, candidate)
			continue
		}
		f.metrics.Suppressed(string(rule))
		f.logger.Debug("suppressed diagnostic",
			slog.String("file", candidate.File),
			slog.Int("code", int(candidate.Code)),
			slog.Int("start", candidate.Start),
			slog.String("rule", string(rule)),
			slog.String("message", candidate.Message.String()))
	}
	return result
}

func (f *Filter) match(candidate diag.Diagnostic, symbols *SymbolTable, importsDecorator bool) (Rule, bool) {
	text := candidate.Message.String()
	if MentionsDecorator(text) {
		switch f.scope {
		case ScopeFile:
			return RuleDecorator, true
		default:
			if candidate.HasLocation() && symbols.InDecoratedSpan(candidate.Start) {
				return RuleDecorator, true
			}
		}
	}
	if candidate.Code == diag.DeclaredButNeverRead {
		if name, ok := ParseUnusedDeclaration(text); ok && symbols.Has(name) {
			return RuleUnused, true
		}
	}
	if importsDecorator && IsModuleNotFound(text) {
		return RuleModule, true
	}
	return "", false
}
