package suppress

import (
	"sort"
	"strings"

	"github.com/viant/fndecor/syntax"
)

// SymbolTable holds the decorator names used in a file and the spans of the function-like
// declarations carrying them. It is rebuilt for every request.
type SymbolTable struct {
	names map[string]bool
	spans []syntax.Span
}

// CollectSymbols walks the whole tree
func CollectSymbols(root *syntax.Node) *SymbolTable {
	table := &SymbolTable{names: map[string]bool{}}
	syntax.Inspect(root, func(node *syntax.Node, parent *syntax.Node) bool {
		if node.Kind() != syntax.KindDecorator {
			return true
		}
		if name := DecoratorName(node); name != "" {
			table.names[name] = true
		}
		if parent != nil && parent.Kind().IsFunctionLike() {
			table.addSpan(parent.Span())
		}
		return true
	})
	return table
}

// DecoratorName returns the decorator expression text before its first argument list
func DecoratorName(decorator *syntax.Node) string {
	expr := syntax.DecoratorExpression(decorator)
	if expr == nil {
		return ""
	}
	text := expr.Text()
	if idx := strings.Index(text, "("); idx != -1 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

func (t *SymbolTable) addSpan(span syntax.Span) {
	for _, candidate := range t.spans {
		if candidate == span {
			return
		}
	}
	t.spans = append(t.spans, span)
}

// Has reports whether name is used as a decorator
func (t *SymbolTable) Has(name string) bool {
	return t.names[name]
}

// Names returns the decorator names in lexical order
func (t *SymbolTable) Names() []string {
	result := make([]string, 0, len(t.names))
	for name := range t.names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (t *SymbolTable) Spans() []syntax.Span {
	return t.spans
}

// InDecoratedSpan reports whether pos lies inside a decorated declaration
func (t *SymbolTable) InDecoratedSpan(pos int) bool {
	for _, span := range t.spans {
		if span.Contains(pos) {
			return true
		}
	}
	return false
}

func (t *SymbolTable) Empty() bool {
	return len(t.names) == 0
}
