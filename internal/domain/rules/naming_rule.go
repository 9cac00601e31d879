package rules

import (
	"fmt"

	"github.com/mouse-blink/svlint/internal/config"
	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

const namingReason = "Identifiers must conform to the naming scheme."

// namingRule checks the identifier of every target node against the pattern
// option named after the rule. When scope is set the check only fires
// inside the scope container.
type namingRule struct {
	name     string
	required bool
	// target is the node the check fires on, ident the descendant holding
	// the identifier text.
	target  syntax.Kind
	ident   syntax.Kind
	scope   *Scope
	noun    string
	pattern func(*config.Option) string

	compiled lazyPattern
}

func (r *namingRule) Check(tree syntax.Tree, ev syntax.Event, option *config.Option) (m.Verdict, error) {
	p, err := r.compiled.get(r.name, r.name, r.pattern(option))
	if err != nil {
		return m.Pass, err
	}

	if r.scope != nil {
		r.scope.Track(ev)
	}

	if ev.Type == syntax.Leave || ev.Node.Kind != r.target {
		return m.Pass, nil
	}

	if r.scope != nil && !r.scope.Inside() {
		return m.Pass, nil
	}

	id, err := syntax.Find(ev.Node, r.ident)
	if err != nil {
		return m.Pass, fmt.Errorf("rule %s: %w", r.name, err)
	}

	text, err := tree.TextOf(id)
	if err != nil {
		return m.Pass, fmt.Errorf("rule %s: %w", r.name, err)
	}

	return Evaluate(r.required, text, p), nil
}

func (r *namingRule) Name() string {
	return r.name
}

func (r *namingRule) Hint(option *config.Option) string {
	match := "matching"
	if !r.required {
		match = "not matching"
	}

	return fmt.Sprintf("Use %s %s regex \"%s\".", r.noun, match, r.pattern(option))
}

func (r *namingRule) Reason(_ *config.Option) string {
	return namingReason
}
