package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// NewReRequiredInstance requires instance identifiers to match option
// re_required_instance. Only identifiers inside a hierarchical instance are
// checked.
func NewReRequiredInstance() Rule {
	return &namingRule{
		name:     "re_required_instance",
		required: true,
		target:   syntax.KindInstanceIdentifier,
		ident:    syntax.KindIdentifier,
		scope:    NewScope(syntax.KindHierarchicalInstance),
		noun:     "an instance identifier",
		pattern:  func(o *config.Option) string { return o.ReRequiredInstance },
	}
}
