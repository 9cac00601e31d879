// Package model defines the data structures shared by the linter layers.
package model

import "fmt"

// Verdict is the outcome of one rule evaluating one traversal event.
type Verdict int

const (
	// Pass means the event carries no violation for the rule.
	Pass Verdict = iota
	// Fail means the rule flags the node of the event.
	Fail
)

var verdictValueMap = map[Verdict]string{
	Pass: "pass",
	Fail: "fail",
}

func (v Verdict) String() string {
	s, ok := verdictValueMap[v]
	if !ok {
		return fmt.Sprintf("invalid(%d)", v)
	}

	return s
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	s, ok := verdictValueMap[v]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid verdict %d", int(v))
	}

	return []byte(s), nil
}

// UnmarshalText for reading verdicts back from stored reports.
func (v *Verdict) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, s := range verdictValueMap {
		if s == text {
			*v = k
			return nil
		}
	}

	return fmt.Errorf("unknown verdict %q", text)
}
