package syntax_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/viant/fndecor/syntax"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		description string
		node        *syntax.Node
		expect      string
	}{
		{
			description: "anonymous function expression",
			node: syntax.NewFunctionExpression(syntax.FunctionParts{
				Parameters: syntax.NewParameterList(
					syntax.NewParameter(syntax.ParameterParts{Name: syntax.NewIdentifier("a"), Type: syntax.NewTypeAnnotation(syntax.NewTypeReference("any"))}),
				),
				Body: syntax.NewBlock(""),
			}),
			expect: "function(a: any) {}",
		},
		{
			description: "async generator declaration",
			node: syntax.NewFunctionDeclaration(syntax.FunctionParts{
				Modifiers:  []*syntax.Node{syntax.NewKeyword("export"), syntax.NewKeyword("async")},
				Generator:  true,
				Name:       syntax.NewIdentifier("gen"),
				Parameters: syntax.NewParameterList(),
				Body:       syntax.NewBlock("", syntax.NewReturn(syntax.NewIdentifier("x"))),
			}),
			expect: "export async function* gen() {\n    return x;\n}",
		},
		{
			description: "rest and optional parameters",
			node: syntax.NewParameterList(
				syntax.NewParameter(syntax.ParameterParts{Name: syntax.NewIdentifier("a"), Optional: true}),
				syntax.NewParameter(syntax.ParameterParts{Name: syntax.NewIdentifier("rest"), Rest: true, Type: syntax.NewTypeAnnotation(syntax.NewTypeReference("any[]"))}),
			),
			expect: "(a?, ...rest: any[])",
		},
		{
			description: "call with member callee and spread",
			node: syntax.NewCall(
				syntax.NewPropertyAccess(syntax.NewIdentifier("wrapped"), "call"),
				syntax.NewThis(),
				syntax.NewSpread(syntax.NewIdentifier("items")),
			),
			expect: "wrapped.call(this, ...items)",
		},
		{
			description: "declaration without body",
			node: syntax.NewFunctionDeclaration(syntax.FunctionParts{
				Modifiers: []*syntax.Node{syntax.NewKeyword("declare")},
				Name:      syntax.NewIdentifier("f"),
			}),
			expect: "declare function f();",
		},
		{
			description: "indented block",
			node:        syntax.NewBlock("  ", syntax.NewReturn(syntax.NewCall(syntax.NewIdentifier("g")))),
			expect:      "{\n      return g();\n  }",
		},
	}

	for _, tc := range tests {
		actual := syntax.Print(tc.node)
		if diff := cmp.Diff(tc.expect, actual); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.description, diff)
		}
	}

	t.Run("source splice", func(t *testing.T) {
		src := []byte("let a = b;")
		ident := syntax.NewSourceNode(syntax.KindIdentifier, "identifier", "value", syntax.Span{Start: 8, End: 9}, src, nil)
		root := syntax.NewSourceNode(syntax.KindSourceFile, "program", "", syntax.Span{Start: 0, End: len(src)}, src, []*syntax.Node{ident})
		assert.Equal(t, "let a = b;", root.Text())

		replaced := root.WithChildren([]*syntax.Node{syntax.NewCall(syntax.NewIdentifier("c")).WithSpan(ident.Span())})
		assert.Equal(t, "let a = c();", replaced.Text())
		assert.Equal(t, "let a = b;", root.Text())
	})
}

func TestNode_TrimStart(t *testing.T) {
	src := []byte("export function f(){}")
	keyword := syntax.NewSourceNode(syntax.KindKeyword, "export", "", syntax.Span{Start: 0, End: 6}, src, nil)
	fn := syntax.NewSourceNode(syntax.KindKeyword, "function", "", syntax.Span{Start: 7, End: 15}, src, nil)
	decl := syntax.NewSourceNode(syntax.KindFunctionDeclaration, "function_declaration", "", syntax.Span{Start: 0, End: len(src)}, src, []*syntax.Node{keyword, fn})

	view := syntax.AsFunction(decl)
	trimmed := decl.TrimStart(view.Head())
	assert.Equal(t, "function f(){}", trimmed.Text())
	assert.Len(t, trimmed.Children(), 1)
	assert.Equal(t, "export function f(){}", decl.Text())
}

func TestSpan(t *testing.T) {
	span := syntax.NewSpan(2, 3)
	assert.Equal(t, 3, span.Len())
	assert.True(t, span.Contains(2))
	assert.True(t, span.Contains(4))
	assert.False(t, span.Contains(5))
	assert.Equal(t, syntax.Span{Start: 0, End: 5}, span.Cover(syntax.Span{Start: 0, End: 1}))
}

func TestHash(t *testing.T) {
	first, err := syntax.Hash([]byte("function f(){}"))
	if !assert.Nil(t, err) {
		return
	}
	second, _ := syntax.Hash([]byte("function f(){}"))
	third, _ := syntax.Hash([]byte("function g(){}"))
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, third)
}
