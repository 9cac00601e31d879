package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// NewReForbiddenChecker fails checker identifiers matching option
// re_forbidden_checker.
func NewReForbiddenChecker() Rule {
	return &namingRule{
		name:    "re_forbidden_checker",
		target:  syntax.KindCheckerDeclaration,
		ident:   syntax.KindCheckerIdentifier,
		noun:    "a checker identifier",
		pattern: func(o *config.Option) string { return o.ReForbiddenChecker },
	}
}
