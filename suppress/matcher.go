package suppress

import (
	"regexp"
	"strings"
)

var (
	unusedDeclaration = regexp.MustCompile(`'([^']+)' is declared but its value is never read`)
	importList        = regexp.MustCompile(`import\s+.*?\{([^}]+)\}.*?from`)
)

// ParseUnusedDeclaration extracts the name from an unused declaration message
func ParseUnusedDeclaration(text string) (string, bool) {
	match := unusedDeclaration.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// IsModuleNotFound reports whether text describes an unresolved module
func IsModuleNotFound(text string) bool {
	return strings.Contains(text, "Cannot find module") || strings.Contains(text, "Module not found")
}

// MentionsDecorator reports whether text mentions decorators, ignoring case
func MentionsDecorator(text string) bool {
	return strings.Contains(strings.ToLower(text), "decorator")
}

// FirstImportList returns the local names of the first brace-style import list in source.
// Aliased names contribute their alias and type-only markers are dropped.
func FirstImportList(source string) []string {
	match := importList.FindStringSubmatch(source)
	if match == nil {
		return nil
	}
	var result []string
	for _, item := range strings.Split(match[1], ",") {
		name := strings.TrimSpace(item)
		name = strings.TrimSpace(strings.TrimPrefix(name, "type "))
		if idx := strings.Index(name, " as "); idx != -1 {
			name = strings.TrimSpace(name[idx+len(" as "):])
		}
		if name == "" {
			continue
		}
		result = append(result, name)
	}
	return result
}
