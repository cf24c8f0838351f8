package transform

import (
	"github.com/viant/fndecor/syntax"
)

// BuildChain nests inner in one call per decorator. The decorator closest to the declaration
// is applied first, so the topmost decorator becomes the outermost call. A decorator factory
// contributes its call, arguments unchanged, as the callee.
func BuildChain(decorators []*syntax.Node, inner *syntax.Node) *syntax.Node {
	current := inner
	for i := len(decorators) - 1; i >= 0; i-- {
		expr := syntax.DecoratorExpression(decorators[i])
		if expr == nil {
			continue
		}
		current = syntax.NewCall(decoratorCallee(expr), current)
	}
	return current
}

func decoratorCallee(expr *syntax.Node) *syntax.Node {
	if expr.Kind() != syntax.KindCallExpression {
		return expr
	}
	callee := expr.Child(syntax.FieldFunction)
	args := expr.Child(syntax.FieldArguments)
	if callee == nil || args == nil {
		return expr
	}
	return syntax.NewCallWithArguments(callee, args)
}
