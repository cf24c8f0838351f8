package syntax

// Function is a read-only view over a function-like node
type Function struct {
	Node           *Node
	Decorators     []*Node
	Modifiers      []*Node
	Name           *Node
	TypeParameters *Node
	Parameters     *Node
	ReturnType     *Node
	Body           *Node
	Async          bool
	Generator      bool
}

// AsFunction returns a function view, or nil when the node is not function-like
func AsFunction(n *Node) *Function {
	if n == nil || !n.kind.IsFunctionLike() {
		return nil
	}
	fn := &Function{Node: n}
	for _, child := range n.children {
		switch child.kind {
		case KindDecorator:
			fn.Decorators = append(fn.Decorators, child)
			continue
		case KindAsterisk:
			fn.Generator = true
			continue
		case KindKeyword:
			if child.IsKeyword("function") {
				continue
			}
			if child.IsKeyword("async") {
				fn.Async = true
			}
			fn.Modifiers = append(fn.Modifiers, child)
			continue
		}
		switch child.field {
		case FieldName:
			fn.Name = child
		case FieldTypeParameters:
			fn.TypeParameters = child
		case FieldParameters:
			fn.Parameters = child
		case FieldReturnType:
			fn.ReturnType = child
		case FieldBody:
			fn.Body = child
		}
	}
	return fn
}

// Head returns the offset of the first token after decorators and export/default/declare
// modifiers, i.e. where a function expression with the same text would begin.
func (f *Function) Head() int {
	for _, child := range f.Node.children {
		if child.IsKeyword("async") || child.IsKeyword("function") {
			return child.span.Start
		}
	}
	return f.Node.span.Start
}

// ParameterNodes returns the parameter nodes in declaration order
func (f *Function) ParameterNodes() []*Node {
	if f.Parameters == nil {
		return nil
	}
	return f.Parameters.ChildrenOfKind(KindParameter)
}

// Parameter is a read-only view over a parameter node
type Parameter struct {
	Node        *Node
	Binding     *Node
	Type        *Node
	Initializer *Node
	Optional    bool
	Rest        bool
}

// AsParameter returns a parameter view
func AsParameter(n *Node) *Parameter {
	param := &Parameter{Node: n}
	for _, child := range n.children {
		switch {
		case child.kind == KindRest:
			param.Rest = true
		case child.kind == KindQuestion:
			param.Optional = true
		case child.field == FieldPattern:
			param.Binding = child
		case child.field == FieldType:
			param.Type = child
		case child.field == FieldValue:
			param.Initializer = child
		}
	}
	return param
}

// IsThis reports whether the parameter declares the type of this
func (p *Parameter) IsThis() bool {
	return p.Binding != nil && p.Binding.kind == KindThis
}

// Identifier returns the bound name when the binding is a plain identifier
func (p *Parameter) Identifier() (string, bool) {
	if p.Binding == nil || p.Binding.kind != KindIdentifier {
		return "", false
	}
	return p.Binding.Text(), true
}

// DecoratorExpression returns the expression a decorator wraps
func DecoratorExpression(decorator *Node) *Node {
	if decorator == nil {
		return nil
	}
	if expr := decorator.Child(FieldExpression); expr != nil {
		return expr
	}
	for _, child := range decorator.children {
		if child.kind != KindComment {
			return child
		}
	}
	return nil
}
