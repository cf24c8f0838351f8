package transform

import (
	"fmt"
	"strconv"

	"github.com/viant/fndecor/syntax"
)

const (
	defaultParamPrefix = "arg"
	defaultType        = "any"
)

// Synthesizer builds the undecorated replacement of a decorated function declaration:
// a plain declaration with the original signature whose body returns the decorator chain
// applied to the original function, called with the forwarded arguments.
type Synthesizer struct {
	paramPrefix string
	defaultType string
}

// NewSynthesizer creates a synthesizer; empty values select the defaults
func NewSynthesizer(paramPrefix, defaultTypeName string) *Synthesizer {
	if paramPrefix == "" {
		paramPrefix = defaultParamPrefix
	}
	if defaultTypeName == "" {
		defaultTypeName = defaultType
	}
	return &Synthesizer{paramPrefix: paramPrefix, defaultType: defaultTypeName}
}

// Synthesize returns the replacement declaration, or decl itself when it carries no decorators
func (s *Synthesizer) Synthesize(decl *syntax.Node) (*syntax.Node, []string) {
	decorators, modifiers := ExtractDecorators(decl)
	if len(decorators) == 0 {
		return decl, nil
	}
	fn := syntax.AsFunction(decl)
	var warnings []string
	inner := s.innerExpression(fn)
	if fn.Body == nil {
		warnings = append(warnings, fmt.Sprintf("function %v has no body, an empty body was used", functionName(fn)))
	}
	params, args, bindsThis := s.outerParameters(fn)
	wrapped := BuildChain(decorators, inner)
	var call *syntax.Node
	if bindsThis {
		call = syntax.NewCall(syntax.NewPropertyAccess(wrapped, "call"), append([]*syntax.Node{syntax.NewThis()}, args...)...)
	} else {
		call = syntax.NewCall(wrapped, args...)
	}
	outer := syntax.NewFunctionDeclaration(syntax.FunctionParts{
		Modifiers:      modifiers,
		Generator:      fn.Generator,
		Name:           fn.Name,
		TypeParameters: fn.TypeParameters,
		Parameters:     syntax.NewParameterList(params...),
		ReturnType:     fn.ReturnType,
		Body:           syntax.NewBlock(decl.LineIndent(), syntax.NewReturn(call)),
	})
	return outer.WithSpan(decl.Span()), warnings
}

// innerExpression turns the declaration into an equivalent function expression
func (s *Synthesizer) innerExpression(fn *syntax.Function) *syntax.Node {
	if fn.Body != nil && !fn.Node.Synthetic() {
		return fn.Node.TrimStart(fn.Head()).WithKind(syntax.KindFunctionExpression).WithField("")
	}
	var modifiers []*syntax.Node
	if fn.Async {
		modifiers = append(modifiers, syntax.NewKeyword("async"))
	}
	body := fn.Body
	if body == nil {
		body = syntax.NewBlock(fn.Node.LineIndent())
	}
	return syntax.NewFunctionExpression(syntax.FunctionParts{
		Modifiers:      modifiers,
		Generator:      fn.Generator,
		Name:           fn.Name,
		TypeParameters: fn.TypeParameters,
		Parameters:     fn.Parameters,
		ReturnType:     fn.ReturnType,
		Body:           body,
	})
}

// outerParameters mirrors the original parameters. Identifiers keep their name and type,
// destructuring patterns get a synthetic positional name, a this parameter stays in the
// signature and is bound through call instead of being forwarded.
func (s *Synthesizer) outerParameters(fn *syntax.Function) (params, args []*syntax.Node, bindsThis bool) {
	nodes := fn.ParameterNodes()
	names := map[string]bool{}
	for _, node := range nodes {
		if name, ok := syntax.AsParameter(node).Identifier(); ok {
			names[name] = true
		}
	}
	for i, node := range nodes {
		param := syntax.AsParameter(node)
		if param.IsThis() {
			bindsThis = true
			params = append(params, syntax.NewParameter(syntax.ParameterParts{Name: syntax.NewThis(), Type: param.Type}))
			continue
		}
		name, ok := param.Identifier()
		if !ok {
			name = s.uniqueName(names, i+1)
			names[name] = true
		}
		typ := param.Type
		if typ == nil {
			typ = s.anyType(param.Rest)
		}
		params = append(params, syntax.NewParameter(syntax.ParameterParts{
			Name:     syntax.NewIdentifier(name),
			Rest:     param.Rest,
			Optional: !param.Rest && (param.Optional || param.Initializer != nil),
			Type:     typ,
		}))
		arg := syntax.NewIdentifier(name)
		if param.Rest {
			arg = syntax.NewSpread(arg)
		}
		args = append(args, arg)
	}
	return params, args, bindsThis
}

func (s *Synthesizer) uniqueName(taken map[string]bool, position int) string {
	base := s.paramPrefix + strconv.Itoa(position)
	name := base
	for k := 1; taken[name]; k++ {
		name = base + "_" + strconv.Itoa(k)
	}
	return name
}

func (s *Synthesizer) anyType(rest bool) *syntax.Node {
	if rest {
		return syntax.NewTypeAnnotation(syntax.NewTypeReference(s.defaultType + "[]"))
	}
	return syntax.NewTypeAnnotation(syntax.NewTypeReference(s.defaultType))
}

func functionName(fn *syntax.Function) string {
	if fn.Name == nil {
		return "<anonymous>"
	}
	return fn.Name.Text()
}
