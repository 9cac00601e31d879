package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// Rule is the contract every checker implements.
type Rule interface {
	// Check evaluates one traversal event. It only updates the rule's own
	// state. A non-nil error is either a *ConfigError or a
	// *syntax.ContractError and the verdict is then meaningless.
	Check(tree syntax.Tree, event syntax.Event, option *config.Option) (m.Verdict, error)
	// Name is the stable identifier used in reports and configuration.
	Name() string
	// Hint tells how to fix a violation.
	Hint(option *config.Option) string
	// Reason tells why the rule exists.
	Reason(option *config.Option) string
}
