package frontend

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/fndecor/diag"
	"github.com/viant/fndecor/syntax"
)

var referenceTypes = map[string]bool{
	"identifier":                    true,
	"type_identifier":               true,
	"shorthand_property_identifier": true,
}

var literalTypes = map[string]string{
	"number":          "number",
	"string":          "string",
	"template_string": "string",
	"true":            "boolean",
	"false":           "boolean",
}

func locate(file *syntax.SourceFile, node *syntax.Node, code diag.Code, severity diag.Severity, text string) diag.Diagnostic {
	span := node.Span()
	return diag.New(file.FileName(), span.Start, span.Len(), code, severity, text)
}

func syntacticDiagnostics(file *syntax.SourceFile) []diag.Diagnostic {
	var result []diag.Diagnostic
	syntax.Inspect(file.Root(), func(node *syntax.Node, _ *syntax.Node) bool {
		if node.Kind() != syntax.KindError {
			return true
		}
		if missing, ok := strings.CutPrefix(node.Type(), MissingPrefix); ok {
			result = append(result, locate(file, node, diag.ExpectedToken, diag.SevError, fmt.Sprintf("'%v' expected.", missing)))
			return false
		}
		result = append(result, locate(file, node, diag.DeclarationExpected, diag.SevError, "Declaration or statement expected."))
		return false
	})
	return result
}

// semanticDiagnostics reports the checks the basic service knows about
func (s *Service) semanticDiagnostics(ctx context.Context, file *syntax.SourceFile) []diag.Diagnostic {
	var result []diag.Diagnostic
	syntax.Inspect(file.Root(), func(node *syntax.Node, _ *syntax.Node) bool {
		switch node.Kind() {
		case syntax.KindFunctionDeclaration:
			for _, decorator := range node.ChildrenOfKind(syntax.KindDecorator) {
				result = append(result, locate(file, decorator, diag.DecoratorsNotValid, diag.SevError, "Decorators are not valid here."))
			}
		case syntax.KindOther:
			if node.Type() == "variable_declarator" {
				if mismatch, ok := literalMismatch(node); ok {
					result = append(result, mismatch.diagnostic(file))
				}
			}
		}
		return true
	})
	result = append(result, s.unresolvedModules(ctx, file)...)
	if s.noUnusedLocals {
		result = append(result, unusedImports(file, diag.SevError)...)
	}
	return result
}

func (s *Service) suggestionDiagnostics(file *syntax.SourceFile) []diag.Diagnostic {
	if s.noUnusedLocals {
		return nil
	}
	return unusedImports(file, diag.SevSuggestion)
}

func (s *Service) unresolvedModules(ctx context.Context, file *syntax.SourceFile) []diag.Diagnostic {
	if s.program == nil || s.program.Host() == nil {
		return nil
	}
	var result []diag.Diagnostic
	for _, specifier := range ImportSpecifiers(file) {
		module := Unquote(specifier.Text())
		if !IsRelativeModule(module) {
			continue
		}
		if _, ok := ResolveModule(ctx, s.program.Host(), file.FileName(), module); ok {
			continue
		}
		text := fmt.Sprintf("Cannot find module '%v' or its corresponding type declarations.", module)
		result = append(result, locate(file, specifier, diag.CannotFindModule, diag.SevError, text))
	}
	return result
}

type mismatch struct {
	name     *syntax.Node
	declared string
	actual   string
}

func (m *mismatch) diagnostic(file *syntax.SourceFile) diag.Diagnostic {
	text := fmt.Sprintf("Type '%v' is not assignable to type '%v'.", m.actual, m.declared)
	return locate(file, m.name, diag.NotAssignable, diag.SevError, text)
}

// literalMismatch detects `let x: number = "text"` style assignments of a literal to a predefined type
func literalMismatch(declarator *syntax.Node) (*mismatch, bool) {
	name := declarator.Child(syntax.FieldName)
	annotation := declarator.Child(syntax.FieldType)
	value := declarator.Child(syntax.FieldValue)
	if name == nil || annotation == nil || value == nil {
		return nil, false
	}
	var declared *syntax.Node
	for _, child := range annotation.Children() {
		if child.Type() == "predefined_type" {
			declared = child
		}
	}
	if declared == nil {
		return nil, false
	}
	actual, ok := literalTypes[value.Type()]
	if !ok {
		return nil, false
	}
	declaredType := declared.Text()
	if declaredType != "number" && declaredType != "string" && declaredType != "boolean" {
		return nil, false
	}
	if declaredType == actual {
		return nil, false
	}
	return &mismatch{name: name, declared: declaredType, actual: actual}, true
}

// ImportBindings returns the local name nodes introduced by import statements
func ImportBindings(file *syntax.SourceFile) []*syntax.Node {
	var result []*syntax.Node
	for _, stmt := range file.Statements() {
		if stmt.Kind() != syntax.KindImportDeclaration {
			continue
		}
		syntax.Inspect(stmt, func(node *syntax.Node, parent *syntax.Node) bool {
			switch {
			case node.Kind() == syntax.KindImportSpecifier:
				if alias := node.Child("alias"); alias != nil {
					result = append(result, alias)
				} else if name := node.Child(syntax.FieldName); name != nil {
					result = append(result, name)
				}
				return false
			case node.Kind() == syntax.KindIdentifier && parent != nil && (parent.Type() == "import_clause" || parent.Type() == "namespace_import"):
				result = append(result, node)
			case node.Kind() == syntax.KindString:
				return false
			}
			return true
		})
	}
	return result
}

// unusedImports reports imports never referenced. Decorators on function declarations are
// not valid syntax for the checker, so names used only there count as unused.
func unusedImports(file *syntax.SourceFile, severity diag.Severity) []diag.Diagnostic {
	bindings := ImportBindings(file)
	if len(bindings) == 0 {
		return nil
	}
	used := map[string]bool{}
	syntax.Inspect(file.Root(), func(node *syntax.Node, parent *syntax.Node) bool {
		if node.Kind() == syntax.KindImportDeclaration {
			return false
		}
		if node.Kind() == syntax.KindDecorator && parent.Is(syntax.KindFunctionDeclaration) {
			return false
		}
		if referenceTypes[node.Type()] {
			used[node.Text()] = true
		}
		return true
	})
	var result []diag.Diagnostic
	for _, binding := range bindings {
		name := binding.Text()
		if used[name] {
			continue
		}
		text := fmt.Sprintf("'%v' is declared but its value is never read.", name)
		result = append(result, locate(file, binding, diag.DeclaredButNeverRead, severity, text))
	}
	return result
}
