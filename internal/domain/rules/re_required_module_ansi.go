package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// NewReRequiredModuleAnsi requires ANSI-style module identifiers to match
// option re_required_module_ansi.
func NewReRequiredModuleAnsi() Rule {
	return &namingRule{
		name:     "re_required_module_ansi",
		required: true,
		target:   syntax.KindModuleAnsiHeader,
		ident:    syntax.KindModuleIdentifier,
		noun:     "a module identifier",
		pattern:  func(o *config.Option) string { return o.ReRequiredModuleAnsi },
	}
}
