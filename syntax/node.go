package syntax

// Node is an immutable syntax tree node.
//
// Source nodes are produced by a front end and remember the text they were parsed from;
// they print as that text with rewritten descendants spliced in place. Synthetic nodes are
// built by the factory functions in this package and print structurally.
type Node struct {
	kind     Kind
	typ      string
	field    string
	span     Span
	children []*Node
	value    string
	indent   string
	src      []byte
}

// NewSourceNode creates a node backed by the source text src.
// typ is the front end node type, field the role of the node within its parent.
func NewSourceNode(kind Kind, typ, field string, span Span, src []byte, children []*Node) *Node {
	return &Node{
		kind:     kind,
		typ:      typ,
		field:    field,
		span:     span,
		children: children,
		src:      src,
	}
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Type returns the front end node type, empty for synthetic nodes
func (n *Node) Type() string {
	return n.typ
}

// Field returns the role of the node within its parent, e.g. "name" or "body"
func (n *Node) Field() string {
	return n.field
}

func (n *Node) Span() Span {
	return n.span
}

// Children returns the ordered child list; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Synthetic reports whether the node was built by the factory rather than parsed
func (n *Node) Synthetic() bool {
	return n.src == nil
}

// Text returns the source text of the node with any rewritten descendants applied
func (n *Node) Text() string {
	return Print(n)
}

// Is reports whether the node kind is one of kinds
func (n *Node) Is(kinds ...Kind) bool {
	if n == nil {
		return false
	}
	for _, kind := range kinds {
		if n.kind == kind {
			return true
		}
	}
	return false
}

// IsKeyword reports whether the node is the given keyword token
func (n *Node) IsKeyword(word string) bool {
	return n != nil && n.kind == KindKeyword && n.Text() == word
}

// Child returns the first child playing the given field role
func (n *Node) Child(field string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.children {
		if child.field == field {
			return child
		}
	}
	return nil
}

// ChildOfKind returns the first child with the given kind
func (n *Node) ChildOfKind(kind Kind) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.children {
		if child.kind == kind {
			return child
		}
	}
	return nil
}

// ChildrenOfKind returns all children with the given kind in source order
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.children {
		if child.kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// WithChildren returns a shallow copy of the node with a new child list
func (n *Node) WithChildren(children []*Node) *Node {
	clone := *n
	clone.children = children
	return &clone
}

// WithSpan returns a copy of the node positioned at span
func (n *Node) WithSpan(span Span) *Node {
	clone := *n
	clone.span = span
	return &clone
}

// WithKind returns a copy of the node classified as kind
func (n *Node) WithKind(kind Kind) *Node {
	clone := *n
	clone.kind = kind
	return &clone
}

// WithField returns a copy of the node playing the given field role
func (n *Node) WithField(field string) *Node {
	if n == nil || n.field == field {
		return n
	}
	clone := *n
	clone.field = field
	return &clone
}

// TrimStart returns a copy of a source node beginning at offset start; children ending
// at or before start are dropped. Synthetic nodes are returned unchanged.
func (n *Node) TrimStart(start int) *Node {
	if n.src == nil || start <= n.span.Start || start >= n.span.End {
		return n
	}
	clone := *n
	clone.span.Start = start
	clone.children = nil
	for _, child := range n.children {
		if child.span.Start < start && !(child.Synthetic() && child.span.Empty()) {
			continue
		}
		clone.children = append(clone.children, child)
	}
	return &clone
}

// LineIndent returns the leading whitespace of the line the node starts on
func (n *Node) LineIndent() string {
	if n.src == nil {
		return n.indent
	}
	start := n.span.Start
	if start > len(n.src) {
		start = len(n.src)
	}
	lineStart := start
	for lineStart > 0 && n.src[lineStart-1] != '\n' {
		lineStart--
	}
	end := lineStart
	for end < start && (n.src[end] == ' ' || n.src[end] == '\t') {
		end++
	}
	return string(n.src[lineStart:end])
}
