// Package controller renders lint results on the command line.
package controller

import (
	m "github.com/mouse-blink/svlint/internal/model"
)

// UI defines how lint output reaches the user.
// Implementations can use different output methods (simple text, TUI, etc).
//
//go:generate mockery --name=UI --output=./mocks --outpkg=mocks --with-expecter
type UI interface {
	// DisplayResults shows the failures of a run, grouped by file.
	DisplayResults(results []m.FileResult) error
	// DisplayRules shows the rule catalogue.
	DisplayRules(rules []m.RuleInfo) error
	// DisplayErrors shows rules that could not evaluate.
	DisplayErrors(errs []m.RuleError) error
}
