package frontend

import (
	"context"

	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/syntax"
)

// LanguageService answers editor queries over a program
type LanguageService interface {
	// Program returns the current program, nil when none is loaded
	Program() *Program
	SyntacticDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic
	SemanticDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic
	SuggestionDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic
	Completions(ctx context.Context, fileName string, position int) []Completion
	QuickInfo(ctx context.Context, fileName string, position int) *QuickInfo
	Definition(ctx context.Context, fileName string, position int) []Location
	References(ctx context.Context, fileName string, position int) []Location
	DocumentSymbols(ctx context.Context, fileName string) []DocumentSymbol
	Dispose()
}

// Completion is a completion candidate
type Completion struct {
	Name string
	Kind string
}

// QuickInfo describes the symbol under the cursor
type QuickInfo struct {
	Kind string
	Text string
	Span syntax.Span
}

// Location is a range in a file
type Location struct {
	File string
	Span syntax.Span
}

// DocumentSymbol is an outline entry
type DocumentSymbol struct {
	Name     string
	Kind     string
	Span     syntax.Span
	Children []DocumentSymbol
}
