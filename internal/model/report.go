package model

// Failure is a single rule violation resolved to a source location.
type Failure struct {
	Rule   string `yaml:"rule"`
	Hint   string `yaml:"hint"`
	Reason string `yaml:"reason"`
	Path   Path   `yaml:"path"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
	// Text is the source text of the flagged node.
	Text string `yaml:"text,omitempty"`
}

// RuleErrorKind separates configuration errors from tree contract violations.
type RuleErrorKind string

const (
	// RuleErrorConfig is a malformed option; the rule was disabled for the run.
	RuleErrorConfig RuleErrorKind = "config"
	// RuleErrorInternal is a tree provider contract violation for one event.
	RuleErrorInternal RuleErrorKind = "internal"
)

// RuleError records a rule that could not evaluate an event.
type RuleError struct {
	Rule    string        `yaml:"rule"`
	Kind    RuleErrorKind `yaml:"kind"`
	Path    Path          `yaml:"path"`
	Message string        `yaml:"message"`
}

// FileResult holds the lint results for a single source file.
type FileResult struct {
	Source   Source      `yaml:"source"`
	Failures []Failure   `yaml:"failures"`
	Errors   []RuleError `yaml:"errors,omitempty"`
	// Suppressed counts failures silenced by svlint:ignore directives.
	Suppressed int `yaml:"suppressed,omitempty"`
}

// RuleInfo describes a registered rule for catalogue display.
type RuleInfo struct {
	Name    string
	Hint    string
	Reason  string
	Enabled bool
}
