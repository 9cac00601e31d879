package rules

import "github.com/mouse-blink/svlint/internal/syntax"

// Scope tracks whether the traversal is inside a container node kind.
type Scope struct {
	container syntax.Kind
	depth     int
}

// NewScope creates a scope for the given container kind, initially outside.
func NewScope(container syntax.Kind) *Scope {
	return &Scope{container: container}
}

// Track updates the scope from one event. It must see every event.
func (s *Scope) Track(ev syntax.Event) {
	if ev.Node == nil || ev.Node.Kind != s.container {
		return
	}

	switch ev.Type {
	case syntax.Enter:
		s.depth++
	case syntax.Leave:
		if s.depth > 0 {
			s.depth--
		}
	}
}

// Inside reports whether at least one container is open.
func (s *Scope) Inside() bool {
	return s.depth > 0
}

// Depth returns the number of open containers.
func (s *Scope) Depth() int {
	return s.depth
}
