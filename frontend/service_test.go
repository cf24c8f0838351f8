package frontend_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/frontend"
)

func newService(t *testing.T, files map[string]string, options *frontend.Options, roots ...string) *frontend.Service {
	host := frontend.NewMemoryHost(files)
	program, err := frontend.NewProgram(context.Background(), roots, options, host)
	require.Nil(t, err)
	return frontend.NewService(program)
}

func codes(diagnostics []diag.Diagnostic) []diag.Code {
	var result []diag.Code
	for _, d := range diagnostics {
		result = append(result, d.Code)
	}
	return result
}

func TestNewProgram(t *testing.T) {
	files := map[string]string{
		"/app/main.ts":      "import { log } from './log';\nimport { util } from './lib';\nimport x from 'pkg';\n",
		"/app/log.ts":       "export function log(fn) { return fn; }\n",
		"/app/lib/index.ts": "export const util = 1;\n",
		"/app/unrelated.ts": "export const other = 2;\n",
	}
	host := frontend.NewMemoryHost(files)
	program, err := frontend.NewProgram(context.Background(), []string{"/app/main.ts", "/app/missing.ts"}, nil, host)
	if !assert.Nil(t, err) {
		return
	}
	assert.NotNil(t, program.SourceFile("/app/log.ts"))
	assert.NotNil(t, program.SourceFile("/app/lib/index.ts"))
	assert.Nil(t, program.SourceFile("/app/unrelated.ts"))
	assert.Equal(t, []string{"/app/missing.ts"}, program.Missing())
	assert.True(t, program.IsRoot("/app/main.ts"))
	assert.False(t, program.IsRoot("/app/log.ts"))
	assert.Equal(t, "/app/main.ts", program.SourceFiles()[0].FileName())
}

func TestService_SemanticDiagnostics(t *testing.T) {
	tests := []struct {
		description string
		source      string
		options     *frontend.Options
		semantic    []diag.Code
		suggestion  []diag.Code
	}{
		{
			description: "decorated declaration",
			source:      "import { log } from './log';\n@log function add(a: number, b: number): number { return a + b; }\n",
			semantic:    []diag.Code{diag.DecoratorsNotValid},
			suggestion:  []diag.Code{diag.DeclaredButNeverRead},
		},
		{
			description: "unused import as error",
			source:      "import { log } from './log';\n@log function add() {}\n",
			options:     &frontend.Options{NoUnusedLocals: true},
			semantic:    []diag.Code{diag.DecoratorsNotValid, diag.DeclaredButNeverRead},
		},
		{
			description: "used import",
			source:      "import { log } from './log';\nlog(1);\n",
		},
		{
			description: "unresolved module",
			source:      "import { trace } from './trace';\ntrace();\n",
			semantic:    []diag.Code{diag.CannotFindModule},
		},
		{
			description: "literal mismatch",
			source:      "let count: number = \"ten\";\nlet name: string = \"x\";\n",
			semantic:    []diag.Code{diag.NotAssignable},
		},
	}
	for _, tc := range tests {
		service := newService(t, map[string]string{
			"/app/main.ts": tc.source,
			"/app/log.ts":  "export function log(fn) { return fn; }\n",
		}, tc.options, "/app/main.ts")
		semantic := service.SemanticDiagnostics(context.Background(), "/app/main.ts")
		assert.Equal(t, tc.semantic, codes(semantic), tc.description)
		suggestion := service.SuggestionDiagnostics(context.Background(), "/app/main.ts")
		assert.Equal(t, tc.suggestion, codes(suggestion), tc.description)
	}
}

func TestService_Messages(t *testing.T) {
	service := newService(t, map[string]string{
		"/app/main.ts": "import { log } from './missing';\n@log function f() {}\nlet n: number = 'a';\n",
	}, &frontend.Options{NoUnusedLocals: true}, "/app/main.ts")
	var messages []string
	for _, d := range service.SemanticDiagnostics(context.Background(), "/app/main.ts") {
		messages = append(messages, d.Message.String())
	}
	assert.Contains(t, messages, "Decorators are not valid here.")
	assert.Contains(t, messages, "Cannot find module './missing' or its corresponding type declarations.")
	assert.Contains(t, messages, "'log' is declared but its value is never read.")
	assert.Contains(t, messages, "Type 'string' is not assignable to type 'number'.")
}

func TestService_Navigation(t *testing.T) {
	source := "function add(a: number, b: number): number { return a + b; }\nconst total = add(1, 2);\nclass Box {\n  open() {}\n}\n"
	service := newService(t, map[string]string{"/app/main.ts": source}, nil, "/app/main.ts")
	ctx := context.Background()
	use := strings.Index(source, "add(1")

	info := service.QuickInfo(ctx, "/app/main.ts", use)
	if assert.NotNil(t, info) {
		assert.Equal(t, "function", info.Kind)
		assert.Equal(t, "function add(a: number, b: number): number", info.Text)
	}
	definition := service.Definition(ctx, "/app/main.ts", use)
	if assert.Len(t, definition, 1) {
		assert.Equal(t, strings.Index(source, "add"), definition[0].Span.Start)
	}
	assert.Len(t, service.References(ctx, "/app/main.ts", use), 2)

	completions := service.Completions(ctx, "/app/main.ts", use+2)
	assert.Equal(t, []frontend.Completion{{Name: "add", Kind: "function"}}, completions)

	symbols := service.DocumentSymbols(ctx, "/app/main.ts")
	if assert.Len(t, symbols, 3) {
		assert.Equal(t, "Box", symbols[2].Name)
		assert.Len(t, symbols[2].Children, 1)
	}

	assert.Empty(t, service.SemanticDiagnostics(ctx, "/app/other.ts"))
	service.Dispose()
	assert.Nil(t, service.Program())
	assert.Empty(t, service.DocumentSymbols(ctx, "/app/main.ts"))
}

func TestService_SyntacticDiagnostics(t *testing.T) {
	service := newService(t, map[string]string{"/app/main.ts": "function f( {\n"}, nil, "/app/main.ts")
	assert.NotEmpty(t, service.SyntacticDiagnostics(context.Background(), "/app/main.ts"))

	clean := newService(t, map[string]string{"/app/main.ts": "@log function f() {}\n"}, nil, "/app/main.ts")
	assert.Empty(t, clean.SyntacticDiagnostics(context.Background(), "/app/main.ts"))
}
