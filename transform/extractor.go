package transform

import (
	"github.com/viant/fndecor/syntax"
)

// ExtractDecorators partitions the modifiers of a function-like declaration into decorators
// and the remaining keyword modifiers, both in source order.
func ExtractDecorators(node *syntax.Node) (decorators, modifiers []*syntax.Node) {
	if node == nil {
		return nil, nil
	}
	for _, child := range node.Children() {
		switch child.Kind() {
		case syntax.KindDecorator:
			decorators = append(decorators, child)
		case syntax.KindKeyword:
			if !child.IsKeyword("function") {
				modifiers = append(modifiers, child)
			}
		}
	}
	return decorators, modifiers
}
