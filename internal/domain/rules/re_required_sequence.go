package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// NewReRequiredSequence requires sequence identifiers to match option
// re_required_sequence.
func NewReRequiredSequence() Rule {
	return &namingRule{
		name:     "re_required_sequence",
		required: true,
		target:   syntax.KindSequenceDeclaration,
		ident:    syntax.KindSequenceIdentifier,
		noun:     "a sequence identifier",
		pattern:  func(o *config.Option) string { return o.ReRequiredSequence },
	}
}
