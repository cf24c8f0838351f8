package syntax

// Kind classifies syntax nodes independently of the front end grammar
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSourceFile
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunction
	KindClassDeclaration
	KindMethodDeclaration
	KindDecorator
	KindCallExpression
	KindMemberExpression
	KindIdentifier
	KindThis
	KindKeyword
	KindAsterisk
	KindRest
	KindQuestion
	KindTypeParameters
	KindParameterList
	KindParameter
	KindObjectPattern
	KindArrayPattern
	KindTypeAnnotation
	KindBlock
	KindReturnStatement
	KindArguments
	KindSpread
	KindImportDeclaration
	KindNamedImports
	KindImportSpecifier
	KindString
	KindComment
	KindError
	KindOther
)

var kindNames = map[Kind]string{
	KindUnknown:             "Unknown",
	KindSourceFile:          "SourceFile",
	KindFunctionDeclaration: "FunctionDeclaration",
	KindFunctionExpression:  "FunctionExpression",
	KindArrowFunction:       "ArrowFunction",
	KindClassDeclaration:    "ClassDeclaration",
	KindMethodDeclaration:   "MethodDeclaration",
	KindDecorator:           "Decorator",
	KindCallExpression:      "CallExpression",
	KindMemberExpression:    "MemberExpression",
	KindIdentifier:          "Identifier",
	KindThis:                "This",
	KindKeyword:             "Keyword",
	KindAsterisk:            "Asterisk",
	KindRest:                "Rest",
	KindQuestion:            "Question",
	KindTypeParameters:      "TypeParameters",
	KindParameterList:       "ParameterList",
	KindParameter:           "Parameter",
	KindObjectPattern:       "ObjectPattern",
	KindArrayPattern:        "ArrayPattern",
	KindTypeAnnotation:      "TypeAnnotation",
	KindBlock:               "Block",
	KindReturnStatement:     "ReturnStatement",
	KindArguments:           "Arguments",
	KindSpread:              "Spread",
	KindImportDeclaration:   "ImportDeclaration",
	KindNamedImports:        "NamedImports",
	KindImportSpecifier:     "ImportSpecifier",
	KindString:              "String",
	KindComment:             "Comment",
	KindError:               "Error",
	KindOther:               "Other",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsFunctionLike reports whether nodes of this kind carry a parameter list and a body
func (k Kind) IsFunctionLike() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction, KindMethodDeclaration:
		return true
	}
	return false
}
