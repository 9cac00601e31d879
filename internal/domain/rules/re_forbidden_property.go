package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// NewReForbiddenProperty fails property identifiers matching option
// re_forbidden_property.
func NewReForbiddenProperty() Rule {
	return &namingRule{
		name:    "re_forbidden_property",
		target:  syntax.KindPropertyDeclaration,
		ident:   syntax.KindPropertyIdentifier,
		noun:    "a property identifier",
		pattern: func(o *config.Option) string { return o.ReForbiddenProperty },
	}
}
