package lore

// NodeKind identifies the tree node variants. NodeDomain and NodeReference
// are the two domain sub-kinds: a plain named domain, and a domain carrying
// both a name and a linked value. Only domain-kind nodes may own rails.
type NodeKind int

const (
	NodePlaceHolder NodeKind = iota
	NodeComment
	NodeElement
	NodeRail
	NodeDomain
	NodeReference
)

// IsDomain reports whether nodes of this kind may own children.
func (k NodeKind) IsDomain() bool {
	return k == NodeDomain || k == NodeReference
}

// String returns the lowercase kind name used in structured output.
func (k NodeKind) String() string {
	switch k {
	case NodePlaceHolder:
		return "placeholder"
	case NodeComment:
		return "comment"
	case NodeElement:
		return "element"
	case NodeRail:
		return "rail"
	case NodeDomain:
		return "domain"
	case NodeReference:
		return "reference"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so node kinds encode as
// their names in JSON and YAML.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is one entry of the built tree. Rails is the ordered child list in
// source order; it is non-empty only for domain-kind nodes. The tree is a
// strict single-owner hierarchy: no node is reachable from two parents.
type Node struct {
	Kind  NodeKind `json:"kind" yaml:"kind"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Value string   `json:"value,omitempty" yaml:"value,omitempty"`
	Rails []*Node  `json:"rails,omitempty" yaml:"rails,omitempty"`
}
