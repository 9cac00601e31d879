package rules

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidPattern marks a pattern option that does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// ConfigError is a malformed pattern option. It is fatal for the rule that
// reads the option and for that rule only.
type ConfigError struct {
	Rule    string
	Option  string
	Pattern string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule %s: option %s: %v %q: %v", e.Rule, e.Option, ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// Pattern is a compiled regular expression that only accepts whole strings.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompilePattern compiles expr for full matching.
func CompilePattern(expr string) (*Pattern, error) {
	// The raw expression must be valid on its own; wrapping can balance
	// stray parentheses into a different regex.
	if _, err := regexp.Compile(expr); err != nil {
		return nil, err
	}

	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, err
	}

	return &Pattern{expr: expr, re: re}, nil
}

// MustCompilePattern is CompilePattern that panics on error. For tests and
// constant patterns.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}

	return p
}

// Matches reports whether text matches the pattern as a whole.
func (p *Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

func (p *Pattern) String() string {
	return p.expr
}

// lazyPattern compiles its option once per rule instance. Neither the
// compiled pattern nor a compile error is ever replaced afterwards.
type lazyPattern struct {
	once    sync.Once
	pattern *Pattern
	err     error
}

func (l *lazyPattern) get(rule, option, expr string) (*Pattern, error) {
	l.once.Do(func() {
		l.pattern, l.err = CompilePattern(expr)
		if l.err != nil {
			l.err = &ConfigError{Rule: rule, Option: option, Pattern: expr, Err: l.err}
		}
	})

	return l.pattern, l.err
}
