package syntax

// Field names shared by the front end and the factory
const (
	FieldName           = "name"
	FieldTypeParameters = "type_parameters"
	FieldParameters     = "parameters"
	FieldReturnType     = "return_type"
	FieldBody           = "body"
	FieldPattern        = "pattern"
	FieldType           = "type"
	FieldValue          = "value"
	FieldFunction       = "function"
	FieldArguments      = "arguments"
	FieldObject         = "object"
	FieldProperty       = "property"
	FieldDecorator      = "decorator"
	FieldModifier       = "modifier"
	FieldExpression     = "expression"
)

func newLeaf(kind Kind, value string) *Node {
	return &Node{kind: kind, value: value}
}

// NewIdentifier creates a synthetic identifier
func NewIdentifier(name string) *Node {
	return newLeaf(KindIdentifier, name)
}

// NewKeyword creates a synthetic keyword token such as export or async
func NewKeyword(word string) *Node {
	return &Node{kind: KindKeyword, value: word, field: FieldModifier}
}

func NewAsterisk() *Node {
	return newLeaf(KindAsterisk, "*")
}

func NewThis() *Node {
	return newLeaf(KindThis, "this")
}

// NewTypeReference creates a synthetic type expression, e.g. any or any[]
func NewTypeReference(text string) *Node {
	return newLeaf(KindOther, text)
}

// NewTypeAnnotation creates ": typ"
func NewTypeAnnotation(typ *Node) *Node {
	return &Node{kind: KindTypeAnnotation, field: FieldType, children: []*Node{typ.WithField(FieldType)}}
}

// ParameterParts describes a synthetic parameter
type ParameterParts struct {
	Name     *Node
	Rest     bool
	Optional bool
	// Type is a type annotation node, source or synthetic
	Type *Node
}

// NewParameter creates a synthetic parameter
func NewParameter(parts ParameterParts) *Node {
	var children []*Node
	if parts.Rest {
		children = append(children, newLeaf(KindRest, "..."))
	}
	children = append(children, parts.Name.WithField(FieldPattern))
	if parts.Optional {
		children = append(children, newLeaf(KindQuestion, "?"))
	}
	if parts.Type != nil {
		children = append(children, parts.Type.WithField(FieldType))
	}
	return &Node{kind: KindParameter, children: children}
}

// NewParameterList creates a synthetic "(a, b)" list
func NewParameterList(params ...*Node) *Node {
	return &Node{kind: KindParameterList, field: FieldParameters, children: params}
}

// FunctionParts describes a synthetic function declaration or expression
type FunctionParts struct {
	Modifiers      []*Node
	Generator      bool
	Name           *Node
	TypeParameters *Node
	Parameters     *Node
	ReturnType     *Node
	Body           *Node
}

func newFunction(kind Kind, parts FunctionParts) *Node {
	var children []*Node
	for _, modifier := range parts.Modifiers {
		children = append(children, modifier.WithField(FieldModifier))
	}
	children = append(children, &Node{kind: KindKeyword, value: "function"})
	if parts.Generator {
		children = append(children, NewAsterisk())
	}
	if parts.Name != nil {
		children = append(children, parts.Name.WithField(FieldName))
	}
	if parts.TypeParameters != nil {
		children = append(children, parts.TypeParameters.WithField(FieldTypeParameters))
	}
	params := parts.Parameters
	if params == nil {
		params = NewParameterList()
	}
	children = append(children, params.WithField(FieldParameters))
	if parts.ReturnType != nil {
		children = append(children, parts.ReturnType.WithField(FieldReturnType))
	}
	if parts.Body != nil {
		children = append(children, parts.Body.WithField(FieldBody))
	}
	return &Node{kind: kind, children: children}
}

// NewFunctionDeclaration creates a synthetic function declaration
func NewFunctionDeclaration(parts FunctionParts) *Node {
	return newFunction(KindFunctionDeclaration, parts)
}

// NewFunctionExpression creates a synthetic function expression
func NewFunctionExpression(parts FunctionParts) *Node {
	return newFunction(KindFunctionExpression, parts)
}

// NewArguments creates a synthetic "(a, b)" argument list
func NewArguments(args ...*Node) *Node {
	return &Node{kind: KindArguments, field: FieldArguments, children: args}
}

// NewCall creates callee(args...)
func NewCall(callee *Node, args ...*Node) *Node {
	return NewCallWithArguments(callee, NewArguments(args...))
}

// NewCallWithArguments creates a call reusing an existing argument list node
func NewCallWithArguments(callee, arguments *Node) *Node {
	return &Node{
		kind:     KindCallExpression,
		children: []*Node{callee.WithField(FieldFunction), arguments.WithField(FieldArguments)},
	}
}

// NewPropertyAccess creates object.property
func NewPropertyAccess(object *Node, property string) *Node {
	return &Node{
		kind:     KindMemberExpression,
		children: []*Node{object.WithField(FieldObject), NewIdentifier(property).WithField(FieldProperty)},
	}
}

// NewSpread creates ...expr
func NewSpread(expr *Node) *Node {
	return &Node{kind: KindSpread, children: []*Node{expr.WithField(FieldExpression)}}
}

// NewReturn creates "return expr;"
func NewReturn(expr *Node) *Node {
	return &Node{kind: KindReturnStatement, children: []*Node{expr.WithField(FieldExpression)}}
}

// NewBlock creates a statement block; indent is the indentation of the line holding the
// opening brace.
func NewBlock(indent string, statements ...*Node) *Node {
	return &Node{kind: KindBlock, field: FieldBody, indent: indent, children: statements}
}
