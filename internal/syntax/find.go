package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingChild means a node lacks a descendant the grammar guarantees.
	ErrMissingChild = errors.New("missing child node")
	// ErrSpanOutOfRange means a node span does not fit its source or parent.
	ErrSpanOutOfRange = errors.New("node span out of range")
)

// ContractError reports a tree that breaks the provider guarantees. It is an
// internal error, never a style violation.
type ContractError struct {
	Kind Kind
	Want Kind
	Err  error
}

func (e *ContractError) Error() string {
	if e.Want != KindInvalid {
		return fmt.Sprintf("%s has no %s: %v", e.Kind, e.Want, e.Err)
	}

	if e.Kind != KindInvalid {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}

	return e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// Find returns the first descendant of n with the given kind in depth-first
// order, n itself excluded.
func Find(n *Node, kind Kind) (*Node, error) {
	if n == nil {
		return nil, &ContractError{Want: kind, Err: ErrMissingChild}
	}

	for _, c := range n.Children {
		if found := find(c, kind); found != nil {
			return found, nil
		}
	}

	return nil, &ContractError{Kind: n.Kind, Want: kind, Err: ErrMissingChild}
}

func find(n *Node, kind Kind) *Node {
	if n.Kind == kind {
		return n
	}

	for _, c := range n.Children {
		if found := find(c, kind); found != nil {
			return found
		}
	}

	return nil
}
