package suppress

import (
	"context"

	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/frontend"
)

// Passthrough implements frontend.LanguageService by delegating every operation to Inner
type Passthrough struct {
	Inner frontend.LanguageService
}

func (p *Passthrough) Program() *frontend.Program {
	return p.Inner.Program()
}

func (p *Passthrough) SyntacticDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic {
	return p.Inner.SyntacticDiagnostics(ctx, fileName)
}

func (p *Passthrough) SemanticDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic {
	return p.Inner.SemanticDiagnostics(ctx, fileName)
}

func (p *Passthrough) SuggestionDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic {
	return p.Inner.SuggestionDiagnostics(ctx, fileName)
}

func (p *Passthrough) Completions(ctx context.Context, fileName string, position int) []frontend.Completion {
	return p.Inner.Completions(ctx, fileName, position)
}

func (p *Passthrough) QuickInfo(ctx context.Context, fileName string, position int) *frontend.QuickInfo {
	return p.Inner.QuickInfo(ctx, fileName, position)
}

func (p *Passthrough) Definition(ctx context.Context, fileName string, position int) []frontend.Location {
	return p.Inner.Definition(ctx, fileName, position)
}

func (p *Passthrough) References(ctx context.Context, fileName string, position int) []frontend.Location {
	return p.Inner.References(ctx, fileName, position)
}

func (p *Passthrough) DocumentSymbols(ctx context.Context, fileName string) []frontend.DocumentSymbol {
	return p.Inner.DocumentSymbols(ctx, fileName)
}

func (p *Passthrough) Dispose() {
	p.Inner.Dispose()
}
