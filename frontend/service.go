package frontend

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/syntax"
)

// Service is a basic LanguageService over a single program. It performs shallow checks
// only: syntax errors, misplaced decorators, unresolved relative modules, unused imports and
// literal type mismatches.
type Service struct {
	program        *Program
	noUnusedLocals bool
	logger         *slog.Logger
	disposed       bool
}

// NewService creates a service for program
func NewService(program *Program, opts ...ServiceOption) *Service {
	ret := &Service{program: program, logger: slog.Default()}
	if program != nil && program.Options() != nil {
		ret.noUnusedLocals = program.Options().NoUnusedLocals
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (s *Service) Program() *Program {
	if s.disposed {
		return nil
	}
	return s.program
}

func (s *Service) file(fileName string) *syntax.SourceFile {
	program := s.Program()
	if program == nil {
		return nil
	}
	file := program.SourceFile(fileName)
	if file == nil || file.Root() == nil {
		return nil
	}
	return file
}

func (s *Service) SyntacticDiagnostics(_ context.Context, fileName string) []diag.Diagnostic {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	return syntacticDiagnostics(file)
}

func (s *Service) SemanticDiagnostics(ctx context.Context, fileName string) []diag.Diagnostic {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	result := s.semanticDiagnostics(ctx, file)
	s.logger.Debug("semantic diagnostics", slog.String("file", fileName), slog.Int("count", len(result)))
	return result
}

func (s *Service) SuggestionDiagnostics(_ context.Context, fileName string) []diag.Diagnostic {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	return s.suggestionDiagnostics(file)
}

// Completions returns declared and imported names starting with the word before position
func (s *Service) Completions(_ context.Context, fileName string, position int) []Completion {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	prefix := wordBefore(file.Text(), position)
	var result []Completion
	seen := map[string]bool{}
	for _, decl := range declarations(file) {
		if seen[decl.name] || !strings.HasPrefix(decl.name, prefix) {
			continue
		}
		seen[decl.name] = true
		result = append(result, Completion{Name: decl.name, Kind: decl.kind})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *Service) QuickInfo(_ context.Context, fileName string, position int) *QuickInfo {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	node := syntax.NodeAt(file.Root(), position)
	if node == nil || !referenceTypes[node.Type()] {
		return nil
	}
	name := node.Text()
	for _, decl := range declarations(file) {
		if decl.name == name {
			return &QuickInfo{Kind: decl.kind, Text: decl.signature(), Span: node.Span()}
		}
	}
	return &QuickInfo{Kind: "unknown", Text: name, Span: node.Span()}
}

func (s *Service) Definition(_ context.Context, fileName string, position int) []Location {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	node := syntax.NodeAt(file.Root(), position)
	if node == nil || !referenceTypes[node.Type()] {
		return nil
	}
	var result []Location
	for _, decl := range declarations(file) {
		if decl.name == node.Text() {
			result = append(result, Location{File: fileName, Span: decl.nameNode.Span()})
		}
	}
	return result
}

func (s *Service) References(_ context.Context, fileName string, position int) []Location {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	node := syntax.NodeAt(file.Root(), position)
	if node == nil || !referenceTypes[node.Type()] {
		return nil
	}
	name := node.Text()
	var result []Location
	syntax.Inspect(file.Root(), func(candidate *syntax.Node, _ *syntax.Node) bool {
		if referenceTypes[candidate.Type()] && candidate.Text() == name {
			result = append(result, Location{File: fileName, Span: candidate.Span()})
		}
		return true
	})
	return result
}

func (s *Service) DocumentSymbols(_ context.Context, fileName string) []DocumentSymbol {
	file := s.file(fileName)
	if file == nil {
		return nil
	}
	var result []DocumentSymbol
	for _, decl := range declarations(file) {
		if decl.kind == "import" {
			continue
		}
		symbol := DocumentSymbol{Name: decl.name, Kind: decl.kind, Span: decl.node.Span()}
		if decl.kind == "class" {
			for _, method := range syntax.Find(decl.node, syntax.KindMethodDeclaration) {
				if name := method.Child(syntax.FieldName); name != nil {
					symbol.Children = append(symbol.Children, DocumentSymbol{Name: name.Text(), Kind: "method", Span: method.Span()})
				}
			}
		}
		result = append(result, symbol)
	}
	return result
}

// Dispose releases the program; later queries return empty results
func (s *Service) Dispose() {
	s.disposed = true
}

type declaration struct {
	name     string
	kind     string
	node     *syntax.Node
	nameNode *syntax.Node
}

// signature returns the declaration text up to its body
func (d *declaration) signature() string {
	text := d.node.Text()
	if body := d.node.Child(syntax.FieldBody); body != nil {
		if cut := body.Span().Start - d.node.Span().Start; cut > 0 && cut <= len(text) {
			text = text[:cut]
		}
	}
	return strings.TrimSpace(text)
}

// declarations returns the top level declarations and imports of file
func declarations(file *syntax.SourceFile) []*declaration {
	var result []*declaration
	for _, binding := range ImportBindings(file) {
		result = append(result, &declaration{name: binding.Text(), kind: "import", node: binding, nameNode: binding})
	}
	for _, stmt := range file.Statements() {
		node := stmt
		if node.Type() == "export_statement" {
			if inner := node.Child("declaration"); inner != nil {
				node = inner
			}
		}
		switch {
		case node.Kind() == syntax.KindFunctionDeclaration:
			if name := node.Child(syntax.FieldName); name != nil {
				result = append(result, &declaration{name: name.Text(), kind: "function", node: node, nameNode: name})
			}
		case node.Kind() == syntax.KindClassDeclaration:
			if name := node.Child(syntax.FieldName); name != nil {
				result = append(result, &declaration{name: name.Text(), kind: "class", node: node, nameNode: name})
			}
		case node.Type() == "lexical_declaration" || node.Type() == "variable_declaration":
			for _, declarator := range node.Children() {
				if declarator.Type() != "variable_declarator" {
					continue
				}
				if name := declarator.Child(syntax.FieldName); name != nil && name.Kind() == syntax.KindIdentifier {
					result = append(result, &declaration{name: name.Text(), kind: "variable", node: declarator, nameNode: name})
				}
			}
		}
	}
	return result
}

func wordBefore(text string, position int) string {
	if position > len(text) {
		position = len(text)
	}
	start := position
	for start > 0 && isWordPart(text[start-1]) {
		start--
	}
	return text[start:position]
}
