package syntax

// Visitor is called for every node in depth-first pre-order; returning false skips the
// node's children.
type Visitor func(node *Node, parent *Node) bool

// Inspect traverses the tree rooted at n
func Inspect(n *Node, visitor Visitor) {
	inspect(n, nil, visitor)
}

func inspect(n, parent *Node, visitor Visitor) {
	if n == nil {
		return
	}
	if !visitor(n, parent) {
		return
	}
	for _, child := range n.children {
		inspect(child, n, visitor)
	}
}

// NodeAt returns the innermost node covering pos
func NodeAt(root *Node, pos int) *Node {
	if root == nil || !root.span.Contains(pos) {
		return nil
	}
	current := root
	for {
		var next *Node
		for _, child := range current.children {
			if child.span.Contains(pos) {
				next = child
				break
			}
		}
		if next == nil {
			return current
		}
		current = next
	}
}

// Find returns every node matching the given kinds in pre-order
func Find(root *Node, kinds ...Kind) []*Node {
	var result []*Node
	Inspect(root, func(node *Node, _ *Node) bool {
		if node.Is(kinds...) {
			result = append(result, node)
		}
		return true
	})
	return result
}
