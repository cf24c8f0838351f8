package syntax

import (
	"strings"
)

const blockIndent = "    "

// Print renders a node as source text.
// Source nodes reproduce their original text byte for byte except where a descendant was
// replaced; synthetic nodes are rendered from their structure.
func Print(n *Node) string {
	builder := &strings.Builder{}
	emit(builder, n)
	return builder.String()
}

func emit(builder *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.src != nil {
		splice(builder, n)
		return
	}
	switch n.kind {
	case KindFunctionDeclaration, KindFunctionExpression:
		printFunction(builder, n)
	case KindParameterList, KindArguments:
		builder.WriteByte('(')
		for i, child := range n.children {
			if i > 0 {
				builder.WriteString(", ")
			}
			emit(builder, child)
		}
		builder.WriteByte(')')
	case KindTypeAnnotation:
		builder.WriteString(": ")
		printChildren(builder, n)
	case KindMemberExpression:
		emit(builder, n.Child(FieldObject))
		builder.WriteByte('.')
		emit(builder, n.Child(FieldProperty))
	case KindSpread:
		builder.WriteString("...")
		printChildren(builder, n)
	case KindReturnStatement:
		builder.WriteString("return")
		if len(n.children) > 0 {
			builder.WriteByte(' ')
			printChildren(builder, n)
		}
		builder.WriteByte(';')
	case KindBlock:
		printBlock(builder, n)
	default:
		if len(n.children) == 0 {
			builder.WriteString(n.value)
			return
		}
		printChildren(builder, n)
	}
}

func printChildren(builder *strings.Builder, n *Node) {
	for _, child := range n.children {
		emit(builder, child)
	}
}

func printFunction(builder *strings.Builder, n *Node) {
	for _, child := range n.children {
		switch {
		case child.kind == KindKeyword:
			builder.WriteString(child.Text())
			if child.Text() != "function" {
				builder.WriteByte(' ')
			}
		case child.kind == KindAsterisk:
			builder.WriteByte('*')
		case child.field == FieldName:
			builder.WriteByte(' ')
			emit(builder, child)
		case child.field == FieldBody:
			builder.WriteByte(' ')
			emit(builder, child)
		default:
			emit(builder, child)
		}
	}
	if n.Child(FieldBody) == nil && n.kind == KindFunctionDeclaration {
		builder.WriteByte(';')
	}
}

func printBlock(builder *strings.Builder, n *Node) {
	if len(n.children) == 0 {
		builder.WriteString("{}")
		return
	}
	builder.WriteString("{\n")
	for _, child := range n.children {
		builder.WriteString(n.indent)
		builder.WriteString(blockIndent)
		emit(builder, child)
		builder.WriteByte('\n')
	}
	builder.WriteString(n.indent)
	builder.WriteByte('}')
}

// splice copies the source text of n, substituting each child's printed form for the
// child's span.
func splice(builder *strings.Builder, n *Node) {
	src := n.src
	end := n.span.End
	if end > len(src) {
		end = len(src)
	}
	pos := n.span.Start
	for _, child := range n.children {
		span := child.span
		if child.src == nil && span.Empty() && span.Start == 0 {
			emit(builder, child)
			continue
		}
		if span.Start > pos && span.Start <= end {
			builder.Write(src[pos:span.Start])
			pos = span.Start
		}
		emit(builder, child)
		if span.End > pos {
			pos = span.End
		}
	}
	if pos < end {
		builder.Write(src[pos:end])
	}
}
