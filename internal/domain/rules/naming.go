package rules

import (
	m "github.com/mouse-blink/svlint/internal/model"
)

// Evaluate applies a naming policy to an identifier. With required set the
// identifier must match p; otherwise p describes a forbidden shape.
func Evaluate(required bool, identifier string, p *Pattern) m.Verdict {
	if p.Matches(identifier) != required {
		return m.Fail
	}

	return m.Pass
}
