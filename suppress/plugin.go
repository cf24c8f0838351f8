package suppress

import (
	"context"
	"log/slog"

	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/telemetry"
)

// Plugin wraps a language service so that decorators on function declarations do not
// surface as errors. Only SemanticDiagnostics differs from the wrapped service.
type Plugin struct {
	Passthrough
	scope   Scope
	logger  *slog.Logger
	metrics *telemetry.Metrics
	filter  *Filter
}

var _ frontend.LanguageService = (*Plugin)(nil)

// New wraps inner
func New(inner frontend.LanguageService, opts ...Option) *Plugin {
	ret := &Plugin{Passthrough: Passthrough{Inner: inner}, scope: ScopeSpan, logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	ret.filter = NewFilter(ret.scope, ret.logger, ret.metrics)
	return ret
}

// SemanticDiagnostics returns the wrapped service's diagnostics minus those caused by
// function declaration decorators
func (p *Plugin) SemanticDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic {
	program := p.Inner.Program()
	if program == nil {
		return nil
	}
	file := program.SourceFile(fileName)
	if file == nil || file.Root() == nil {
		return nil
	}
	symbols := CollectSymbols(file.Root())
	raw := p.Inner.SemanticDiagnostics(ctx, fileName)
	if symbols.Empty() && p.scope == ScopeSpan {
		return raw
	}
	result := p.filter.Apply(raw, symbols, file.Text())
	p.logger.Debug("filtered semantic diagnostics",
		slog.String("file", fileName),
		slog.Int("raw", len(raw)),
		slog.Int("kept", len(result)))
	return result
}
