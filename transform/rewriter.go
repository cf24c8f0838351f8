package transform

import (
	"log/slog"

	"github.com/viant/fndecor/syntax"
	"github.com/viant/fndecor/telemetry"
)

// Rewriter replaces every decorated free function declaration of a tree
type Rewriter struct {
	synthesizer *Synthesizer
	logger      *slog.Logger
	metrics     *telemetry.Metrics
}

// NewRewriter creates a rewriter
func NewRewriter(synthesizer *Synthesizer, logger *slog.Logger, metrics *telemetry.Metrics) *Rewriter {
	if synthesizer == nil {
		synthesizer = NewSynthesizer("", "")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Rewriter{synthesizer: synthesizer, logger: logger, metrics: metrics}
}

// Result describes one rewrite pass
type Result struct {
	Root         *syntax.Node
	Declarations int
	Warnings     []string
}

// Rewrite returns the rewritten tree. Nested declarations are rewritten before the
// declaration enclosing them; untouched subtrees are shared with the input.
func (r *Rewriter) Rewrite(fileName string, root *syntax.Node) *Result {
	result := &Result{}
	result.Root = r.visit(fileName, root, result)
	return result
}

func (r *Rewriter) visit(fileName string, node *syntax.Node, result *Result) *syntax.Node {
	if node == nil {
		return nil
	}
	children := node.Children()
	var updated []*syntax.Node
	for i, child := range children {
		next := r.visit(fileName, child, result)
		if next == child {
			continue
		}
		if updated == nil {
			updated = append([]*syntax.Node{}, children...)
		}
		updated[i] = next
	}
	if updated != nil {
		node = node.WithChildren(updated)
	}
	if node.Kind() != syntax.KindFunctionDeclaration {
		return node
	}
	decorators, _ := ExtractDecorators(node)
	if len(decorators) == 0 {
		return node
	}
	replacement, warnings := r.synthesizer.Synthesize(node)
	fn := syntax.AsFunction(node)
	for _, warning := range warnings {
		r.logger.Warn("decorated declaration simplified",
			slog.String("file", fileName),
			slog.String("function", functionName(fn)),
			slog.String("reason", warning))
	}
	r.logger.Debug("rewrote decorated declaration",
		slog.String("file", fileName),
		slog.String("function", functionName(fn)),
		slog.Int("decorators", len(decorators)))
	r.metrics.Rewritten(len(decorators))
	result.Declarations++
	result.Warnings = append(result.Warnings, warnings...)
	return replacement
}
