package syntax

import (
	"fmt"
	"iter"
)

// Tree is a parsed source file as seen by the rules.
type Tree interface {
	// Root returns the top node.
	Root() *Node
	// Events yields a fresh depth-first traversal on each call.
	Events() iter.Seq[Event]
	// TextOf returns the source text spanned by n.
	TextOf(n *Node) (string, error)
	// Source returns the whole source text.
	Source() []byte
}

type sourceTree struct {
	root   *Node
	source []byte
}

// NewTree binds root to source. Every node span must lie inside the source
// and inside the span of its parent.
func NewTree(source []byte, root *Node) (Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("empty syntax tree")
	}

	if err := validateSpans(root, 0, len(source)); err != nil {
		return nil, err
	}

	return &sourceTree{root: root, source: source}, nil
}

func validateSpans(n *Node, lo, hi int) error {
	if n.Start < lo || n.End > hi || n.Start > n.End {
		return &ContractError{
			Kind: n.Kind,
			Err:  fmt.Errorf("%w: [%d, %d) outside [%d, %d)", ErrSpanOutOfRange, n.Start, n.End, lo, hi),
		}
	}

	for _, c := range n.Children {
		if c == nil {
			return &ContractError{Kind: n.Kind, Err: fmt.Errorf("nil child node")}
		}

		if err := validateSpans(c, n.Start, n.End); err != nil {
			return err
		}
	}

	return nil
}

func (t *sourceTree) Root() *Node {
	return t.root
}

func (t *sourceTree) Events() iter.Seq[Event] {
	return Walk(t.root)
}

func (t *sourceTree) TextOf(n *Node) (string, error) {
	if n == nil {
		return "", &ContractError{Err: fmt.Errorf("%w: nil node", ErrMissingChild)}
	}

	if n.Start < 0 || n.End > len(t.source) || n.Start > n.End {
		return "", &ContractError{
			Kind: n.Kind,
			Err:  fmt.Errorf("%w: [%d, %d)", ErrSpanOutOfRange, n.Start, n.End),
		}
	}

	return string(t.source[n.Start:n.End]), nil
}

func (t *sourceTree) Source() []byte {
	return t.source
}
