package frontend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/viant/fndecor/syntax"
)

// MissingPrefix marks the type of a token the parser inserted to recover from an error
const MissingPrefix = "MISSING "

// DefaultMaxFileSize is the largest source the parser accepts unless configured otherwise
const DefaultMaxFileSize = 10 * 1024 * 1024

var (
	// ErrFileTooLarge is returned when the source exceeds the configured limit
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidContent is returned when the source is not valid UTF-8
	ErrInvalidContent = errors.New("invalid content")
)

// Parser converts TypeScript source into a syntax tree.
// Each Parse call creates its own tree-sitter parser, so a Parser is safe for concurrent use.
type Parser struct {
	maxFileSize int
	logger      *slog.Logger
}

// NewParser creates a parser
func NewParser(opts ...ParserOption) *Parser {
	ret := &Parser{maxFileSize: DefaultMaxFileSize, logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Parse parses text; decorators written before function declaration heads are attached to the
// declaration node, whose span then starts at the first decorator.
func (p *Parser) Parse(ctx context.Context, fileName string, text string) (*syntax.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}
	if len(text) > p.maxFileSize {
		return nil, fmt.Errorf("%w: %v size %d exceeds limit %d", ErrFileTooLarge, fileName, len(text), p.maxFileSize)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: %v is not valid UTF-8", ErrInvalidContent, fileName)
	}
	src := []byte(text)
	runs := scanDecoratorRuns(src)

	tree, err := p.parse(ctx, fileName, maskDecorators(src, runs))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", fileName, err)
	}
	defer tree.Close()

	conv := &converter{src: src, runs: map[int]*decoratorRun{}}
	for _, run := range runs {
		conv.runs[run.head] = run
	}
	if len(runs) > 0 {
		decorators, err := p.parse(ctx, fileName, decoratorBuffer(src, runs))
		if err != nil {
			return nil, fmt.Errorf("failed to parse decorators of %v: %w", fileName, err)
		}
		defer decorators.Close()
		conv.indexDecoratorExpressions(decorators.RootNode())
	}
	root := conv.convert(tree.RootNode(), "")
	if len(runs) != conv.attached {
		p.logger.Debug("unattached decorator runs",
			slog.String("file", fileName),
			slog.Int("runs", len(runs)),
			slog.Int("attached", conv.attached))
	}
	return syntax.NewSourceFile(fileName, text, root), nil
}

func (p *Parser) parse(ctx context.Context, fileName string, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	if strings.HasSuffix(fileName, ".tsx") {
		parser.SetLanguage(tsx.GetLanguage())
	} else {
		parser.SetLanguage(typescript.GetLanguage())
	}
	return parser.ParseCtx(ctx, nil, src)
}

var kinds = map[string]syntax.Kind{
	"program":                        syntax.KindSourceFile,
	"function_declaration":           syntax.KindFunctionDeclaration,
	"generator_function_declaration": syntax.KindFunctionDeclaration,
	"function_signature":             syntax.KindFunctionDeclaration,
	"function_expression":            syntax.KindFunctionExpression,
	"function":                       syntax.KindFunctionExpression,
	"generator_function":             syntax.KindFunctionExpression,
	"arrow_function":                 syntax.KindArrowFunction,
	"class_declaration":              syntax.KindClassDeclaration,
	"abstract_class_declaration":     syntax.KindClassDeclaration,
	"class":                          syntax.KindClassDeclaration,
	"method_definition":              syntax.KindMethodDeclaration,
	"method_signature":               syntax.KindMethodDeclaration,
	"abstract_method_signature":      syntax.KindMethodDeclaration,
	"decorator":                      syntax.KindDecorator,
	"call_expression":                syntax.KindCallExpression,
	"decorator_call_expression":      syntax.KindCallExpression,
	"member_expression":              syntax.KindMemberExpression,
	"decorator_member_expression":    syntax.KindMemberExpression,
	"identifier":                     syntax.KindIdentifier,
	"this":                           syntax.KindThis,
	"type_parameters":                syntax.KindTypeParameters,
	"formal_parameters":              syntax.KindParameterList,
	"required_parameter":             syntax.KindParameter,
	"optional_parameter":             syntax.KindParameter,
	"object_pattern":                 syntax.KindObjectPattern,
	"array_pattern":                  syntax.KindArrayPattern,
	"type_annotation":                syntax.KindTypeAnnotation,
	"asserts_annotation":             syntax.KindTypeAnnotation,
	"type_predicate_annotation":      syntax.KindTypeAnnotation,
	"statement_block":                syntax.KindBlock,
	"return_statement":               syntax.KindReturnStatement,
	"arguments":                      syntax.KindArguments,
	"spread_element":                 syntax.KindSpread,
	"import_statement":               syntax.KindImportDeclaration,
	"named_imports":                  syntax.KindNamedImports,
	"import_specifier":               syntax.KindImportSpecifier,
	"string":                         syntax.KindString,
	"comment":                        syntax.KindComment,
	"ERROR":                          syntax.KindError,
}

// tokens lists the anonymous tokens kept as leaves; every other anonymous token is plain text
var tokens = map[string]syntax.Kind{
	"export":   syntax.KindKeyword,
	"default":  syntax.KindKeyword,
	"declare":  syntax.KindKeyword,
	"async":    syntax.KindKeyword,
	"function": syntax.KindKeyword,
	"*":        syntax.KindAsterisk,
	"...":      syntax.KindRest,
	"?":        syntax.KindQuestion,
}

var fieldNames = []string{
	syntax.FieldName, syntax.FieldTypeParameters, syntax.FieldParameters, syntax.FieldReturnType,
	syntax.FieldBody, syntax.FieldPattern, syntax.FieldType, syntax.FieldValue, syntax.FieldFunction,
	syntax.FieldArguments, syntax.FieldObject, syntax.FieldProperty, syntax.FieldDecorator,
	"declaration", "source", "alias", "left", "right", "label", "argument",
}

type converter struct {
	src      []byte
	runs     map[int]*decoratorRun
	exprs    map[int]*syntax.Node
	attached int
}

// indexDecoratorExpressions records the expression statement parsed for each decorator offset
func (c *converter) indexDecoratorExpressions(root *sitter.Node) {
	c.exprs = map[int]*syntax.Node{}
	count := int(root.NamedChildCount())
	for i := 0; i < count; i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		expr := stmt.NamedChild(0)
		c.exprs[int(expr.StartByte())] = c.convert(expr, syntax.FieldExpression)
	}
}

type fieldKey struct {
	start, end uint32
	typ        string
}

func keyOf(node *sitter.Node) fieldKey {
	return fieldKey{start: node.StartByte(), end: node.EndByte(), typ: node.Type()}
}

// fields maps the children of node to the grammar field they fill
func (c *converter) fields(node *sitter.Node) map[fieldKey]string {
	var result map[fieldKey]string
	for _, name := range fieldNames {
		child := node.ChildByFieldName(name)
		if child == nil {
			continue
		}
		if result == nil {
			result = map[fieldKey]string{}
		}
		key := keyOf(child)
		if _, ok := result[key]; !ok {
			result[key] = name
		}
	}
	return result
}

func (c *converter) span(node *sitter.Node) syntax.Span {
	return syntax.Span{Start: int(node.StartByte()), End: int(node.EndByte())}
}

func (c *converter) convert(node *sitter.Node, field string) *syntax.Node {
	typ := node.Type()
	if node.IsMissing() {
		return syntax.NewSourceNode(syntax.KindError, MissingPrefix+typ, field, syntax.Span{Start: int(node.StartByte()), End: int(node.StartByte())}, c.src, nil)
	}
	switch typ {
	case "export_statement":
		if decl := c.exportedFunction(node); decl != nil {
			return c.attach(decl.WithField(field))
		}
	case "ambient_declaration":
		if decl := c.ambientFunction(node); decl != nil {
			return c.attach(decl.WithField(field))
		}
	}
	kind, ok := kinds[typ]
	if !ok {
		kind = syntax.KindOther
	}
	children := c.children(node)
	switch typ {
	case "class_body":
		children = c.moveMemberDecorators(children)
	}
	children = c.attachRuns(children)
	result := syntax.NewSourceNode(kind, typ, field, c.span(node), c.src, children)
	if kind == syntax.KindFunctionDeclaration {
		return c.attach(result)
	}
	return result
}

func (c *converter) children(node *sitter.Node) []*syntax.Node {
	count := int(node.ChildCount())
	if count == 0 {
		return nil
	}
	fields := c.fields(node)
	var result []*syntax.Node
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if !child.IsNamed() {
			if kind, ok := tokens[child.Type()]; ok && !child.IsMissing() {
				result = append(result, syntax.NewSourceNode(kind, child.Type(), "", c.span(child), c.src, nil))
			} else if child.IsMissing() {
				result = append(result, c.convert(child, ""))
			}
			continue
		}
		field := fields[keyOf(child)]
		if child.Type() == "rest_pattern" {
			result = append(result, c.restPattern(child)...)
			continue
		}
		result = append(result, c.convert(child, field))
	}
	return result
}

// restPattern flattens "...binding" into a rest token followed by the binding pattern
func (c *converter) restPattern(node *sitter.Node) []*syntax.Node {
	var result []*syntax.Node
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			if child.Type() == "..." {
				result = append(result, syntax.NewSourceNode(syntax.KindRest, "...", "", c.span(child), c.src, nil))
			}
			continue
		}
		field := syntax.FieldPattern
		if child.Type() == "comment" {
			field = ""
		}
		result = append(result, c.convert(child, field))
	}
	return result
}

// exportedFunction turns `export [default] function ...` into a single function declaration
func (c *converter) exportedFunction(node *sitter.Node) *syntax.Node {
	var inner *sitter.Node
	var modifiers []*syntax.Node
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		switch child.Type() {
		case "export", "default":
			if !child.IsNamed() {
				modifiers = append(modifiers, syntax.NewSourceNode(syntax.KindKeyword, child.Type(), syntax.FieldModifier, c.span(child), c.src, nil))
			}
		case "function_declaration", "generator_function_declaration", "function_expression", "function", "generator_function":
			if child.IsNamed() {
				inner = child
			}
		case "comment", ";":
		default:
			if child.IsNamed() {
				return nil
			}
		}
	}
	if inner == nil {
		return nil
	}
	children := append(modifiers, c.children(inner)...)
	children = c.attachRuns(children)
	return syntax.NewSourceNode(syntax.KindFunctionDeclaration, inner.Type(), "", c.span(node), c.src, children)
}

// ambientFunction turns `declare function f(): T;` into a body-less function declaration
func (c *converter) ambientFunction(node *sitter.Node) *syntax.Node {
	var signature *sitter.Node
	var modifiers []*syntax.Node
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "declare" && !child.IsNamed():
			modifiers = append(modifiers, syntax.NewSourceNode(syntax.KindKeyword, "declare", syntax.FieldModifier, c.span(child), c.src, nil))
		case child.Type() == "function_signature":
			signature = child
		case child.IsNamed() && child.Type() != "comment":
			return nil
		}
	}
	if signature == nil {
		return nil
	}
	children := append(modifiers, c.children(signature)...)
	return syntax.NewSourceNode(syntax.KindFunctionDeclaration, "function_signature", "", c.span(node), c.src, children)
}

// attach lifts a scanned decorator run into a function declaration starting at the run head
func (c *converter) attach(decl *syntax.Node) *syntax.Node {
	run, ok := c.runs[decl.Span().Start]
	if !ok {
		return decl
	}
	delete(c.runs, decl.Span().Start)
	c.attached++
	var decorators []*syntax.Node
	for _, span := range run.decorators {
		decorators = append(decorators, c.decorator(span))
	}
	children := append(decorators, decl.Children()...)
	span := decl.Span()
	span.Start = run.start()
	return decl.WithChildren(children).WithSpan(span)
}

func (c *converter) decorator(span syntax.Span) *syntax.Node {
	expr, ok := c.exprs[span.Start+1]
	if !ok || expr.Span().End > span.End {
		expr = syntax.NewSourceNode(syntax.KindOther, "expression", syntax.FieldExpression, syntax.Span{Start: span.Start + 1, End: span.End}, c.src, nil)
	}
	return syntax.NewSourceNode(syntax.KindDecorator, "decorator", syntax.FieldDecorator, span, c.src, []*syntax.Node{expr})
}

// attachRuns moves sibling comments covered by a decorated declaration into that declaration
func (c *converter) attachRuns(children []*syntax.Node) []*syntax.Node {
	var decorated []*syntax.Node
	for _, child := range children {
		if child.Kind() == syntax.KindFunctionDeclaration && child.ChildOfKind(syntax.KindDecorator) != nil {
			decorated = append(decorated, child)
		}
	}
	if len(decorated) == 0 {
		return children
	}
	result := make([]*syntax.Node, 0, len(children))
	absorbed := map[*syntax.Node][]*syntax.Node{}
	for _, child := range children {
		owner := coveringDeclaration(decorated, child)
		if owner == nil {
			result = append(result, child)
			continue
		}
		absorbed[owner] = append(absorbed[owner], child)
	}
	for i, child := range result {
		extra, ok := absorbed[child]
		if !ok {
			continue
		}
		merged := append(append([]*syntax.Node{}, child.Children()...), extra...)
		sort.SliceStable(merged, func(a, b int) bool {
			return merged[a].Span().Start < merged[b].Span().Start
		})
		result[i] = child.WithChildren(merged)
	}
	return result
}

func coveringDeclaration(decorated []*syntax.Node, child *syntax.Node) *syntax.Node {
	for _, decl := range decorated {
		if decl == child {
			return nil
		}
		span := decl.Span()
		if child.Span().Start >= span.Start && child.Span().End <= span.End {
			return decl
		}
	}
	return nil
}

// moveMemberDecorators moves decorators written as class body siblings into the member they precede
func (c *converter) moveMemberDecorators(children []*syntax.Node) []*syntax.Node {
	var result []*syntax.Node
	var pending []*syntax.Node
	for _, child := range children {
		if child.Kind() == syntax.KindDecorator {
			pending = append(pending, child)
			continue
		}
		if len(pending) > 0 && child.Kind() == syntax.KindComment {
			pending = append(pending, child)
			continue
		}
		if len(pending) > 0 {
			if child.Kind() == syntax.KindMethodDeclaration {
				span := child.Span()
				span.Start = pending[0].Span().Start
				child = child.WithChildren(append(pending, child.Children()...)).WithSpan(span)
			} else {
				result = append(result, pending...)
			}
			pending = nil
		}
		result = append(result, child)
	}
	return append(result, pending...)
}
