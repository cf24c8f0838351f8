package frontend

import (
	"context"
	"path"
	"strings"

	"github.com/viant/fndecor/syntax"
)

var moduleExtensions = []string{".ts", ".tsx", ".d.ts"}

var indexFiles = []string{"index.ts", "index.tsx", "index.d.ts"}

// IsRelativeModule reports whether specifier is resolved against the importing file
func IsRelativeModule(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") || specifier == "." || specifier == ".."
}

// ResolveModule resolves a relative module specifier imported by fromFile.
// Bare package specifiers are not resolved.
func ResolveModule(ctx context.Context, host Host, fromFile, specifier string) (string, bool) {
	if !IsRelativeModule(specifier) {
		return "", false
	}
	base := joinPath(parentPath(fromFile), specifier)
	for _, ext := range moduleExtensions {
		if strings.HasSuffix(base, ext) && host.FileExists(ctx, base) {
			return base, true
		}
	}
	if ext := path.Ext(base); ext == ".js" || ext == ".jsx" {
		trimmed := strings.TrimSuffix(base, ext)
		for _, candidate := range []string{trimmed + ".ts", trimmed + ".tsx", trimmed + ".d.ts"} {
			if host.FileExists(ctx, candidate) {
				return candidate, true
			}
		}
	}
	for _, ext := range moduleExtensions {
		if candidate := base + ext; host.FileExists(ctx, candidate) {
			return candidate, true
		}
	}
	for _, index := range indexFiles {
		if candidate := joinPath(base, index); host.FileExists(ctx, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ImportSpecifiers returns the module specifiers of import and re-export statements in source order
func ImportSpecifiers(file *syntax.SourceFile) []*syntax.Node {
	var result []*syntax.Node
	for _, stmt := range file.Statements() {
		if stmt.Type() != "import_statement" && stmt.Type() != "export_statement" {
			continue
		}
		if source := stmt.Child("source"); source != nil && source.Kind() == syntax.KindString {
			result = append(result, source)
		}
	}
	return result
}

// Unquote strips the quotes of a string literal
func Unquote(literal string) string {
	if len(literal) >= 2 {
		first, last := literal[0], literal[len(literal)-1]
		if (first == '"' || first == '\'') && first == last {
			return literal[1 : len(literal)-1]
		}
	}
	return literal
}

func parentPath(fileName string) string {
	scheme, rest := splitScheme(fileName)
	return scheme + path.Dir(rest)
}

func joinPath(base, rel string) string {
	scheme, rest := splitScheme(base)
	return scheme + path.Join(rest, rel)
}

func splitScheme(location string) (string, string) {
	if idx := strings.Index(location, "://"); idx != -1 {
		return location[:idx+3], location[idx+3:]
	}
	return "", location
}
