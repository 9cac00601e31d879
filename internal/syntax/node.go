package syntax

// Node is an immutable element of the syntax tree. Start and End are byte
// offsets into the tree source, End exclusive.
type Node struct {
	Kind     Kind
	Start    int
	End      int
	Children []*Node
}

// Span returns the byte range covered by the node.
func (n *Node) Span() (int, int) {
	return n.Start, n.End
}

// Builder assembles trees bottom-up. It is used by the dump decoder and by
// tests that need a tree without an external parser.
type Builder struct {
	source []byte
}

// NewBuilder creates a builder over the given source text.
func NewBuilder(source string) *Builder {
	return &Builder{source: []byte(source)}
}

// Node creates a node of the given kind and span with the given children.
func (b *Builder) Node(kind Kind, start, end int, children ...*Node) *Node {
	return &Node{Kind: kind, Start: start, End: end, Children: children}
}

// Wrap creates a node spanning exactly its children.
func (b *Builder) Wrap(kind Kind, children ...*Node) *Node {
	if len(children) == 0 {
		return &Node{Kind: kind}
	}

	start, end := children[0].Start, children[0].End
	for _, c := range children[1:] {
		start = min(start, c.Start)
		end = max(end, c.End)
	}

	return &Node{Kind: kind, Start: start, End: end, Children: children}
}

// Tree finishes the build, validating root against the source.
func (b *Builder) Tree(root *Node) (Tree, error) {
	return NewTree(b.source, root)
}
