package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// NewReForbiddenGenerateblock fails generate block labels matching option
// re_forbidden_generateblock. Generate blocks nest, so the scope counts
// depth.
func NewReForbiddenGenerateblock() Rule {
	return &namingRule{
		name:    "re_forbidden_generateblock",
		target:  syntax.KindGenerateBlockIdentifier,
		ident:   syntax.KindIdentifier,
		scope:   NewScope(syntax.KindGenerateBlock),
		noun:    "a generate block identifier",
		pattern: func(o *config.Option) string { return o.ReForbiddenGenerateblock },
	}
}
