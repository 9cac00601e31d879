package syntax

import "iter"

// EventType distinguishes entering a node from leaving it.
type EventType int

const (
	Enter EventType = iota
	Leave
)

func (t EventType) String() string {
	if t == Enter {
		return "enter"
	}

	return "leave"
}

// Event is one step of the depth-first traversal.
type Event struct {
	Type EventType
	Node *Node
}

// EnterOf creates an Enter event for n.
func EnterOf(n *Node) Event {
	return Event{Type: Enter, Node: n}
}

// LeaveOf creates a Leave event for n.
func LeaveOf(n *Node) Event {
	return Event{Type: Leave, Node: n}
}

// Walk yields Enter and Leave events for root and its descendants in
// document order. Every Enter is matched by exactly one Leave and nested
// pairs are stack balanced.
func Walk(root *Node) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if root == nil {
			return
		}

		walk(root, yield)
	}
}

func walk(n *Node, yield func(Event) bool) bool {
	if !yield(EnterOf(n)) {
		return false
	}

	for _, c := range n.Children {
		if !walk(c, yield) {
			return false
		}
	}

	return yield(LeaveOf(n))
}
