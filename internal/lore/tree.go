package lore

// openDomain is one indentation-stack entry: a domain node that is still
// open for children, with the indent of its source line.
type openDomain struct {
	indent int
	node   *Node
}

// BuildForest turns the ordered token sequence into a forest of root nodes.
//
// A single pass keeps a stack of open ancestor domains, shallow to deep.
// Each line closes every stack entry at its indent or deeper, then attaches
// to the remaining top of the stack, or becomes a root when the stack is
// empty. Only domain-kind nodes are pushed, so the top of the stack is
// always a legal parent. The function is total: irregular indentation is
// accepted as-is, with no validation.
func BuildForest(lines []Line) []*Node {
	var forest []*Node
	var stack []openDomain

	for _, line := range lines {
		node := materialize(line)

		for len(stack) > 0 && stack[len(stack)-1].indent >= line.Indent {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			parent.Rails = append(parent.Rails, node)
		} else {
			forest = append(forest, node)
		}

		if node.Kind.IsDomain() {
			stack = append(stack, openDomain{indent: line.Indent, node: node})
		}
	}

	return forest
}

// materialize converts one tokenized line into its tree node. Every kind is
// materialized, including comments and placeholders, which carry no
// renderable content but remain tree nodes.
func materialize(line Line) *Node {
	switch line.Kind {
	case LinePlaceHolder:
		return &Node{Kind: NodePlaceHolder}
	case LineComment:
		return &Node{Kind: NodeComment, Name: line.Name}
	case LineLink:
		return &Node{Kind: NodeRail, Name: line.Name, Value: line.Value}
	case LineDomain:
		return &Node{Kind: NodeDomain, Name: line.Name}
	case LineReference:
		return &Node{Kind: NodeReference, Name: line.Name, Value: line.Value}
	default:
		return &Node{Kind: NodeElement, Name: line.Name}
	}
}
