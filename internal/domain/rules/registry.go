package rules

import "github.com/mouse-blink/svlint/internal/config"

// constructors lists every rule in catalogue order.
var constructors = []func() Rule{
	NewKeywordForbiddenWireReg,
	NewReForbiddenChecker,
	NewReForbiddenGenerateblock,
	NewReForbiddenProperty,
	NewReRequiredInstance,
	NewReRequiredModuleAnsi,
	NewReRequiredSequence,
	NewStyleOperatorArithmetic,
}

// All returns fresh instances of every rule.
func All() []Rule {
	out := make([]Rule, 0, len(constructors))
	for _, c := range constructors {
		out = append(out, c())
	}

	return out
}

// Names returns the names of every rule in catalogue order.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for _, r := range All() {
		out = append(out, r.Name())
	}

	return out
}

// New returns a fresh instance of the rule called name.
func New(name string) (Rule, bool) {
	for _, r := range All() {
		if r.Name() == name {
			return r, true
		}
	}

	return nil, false
}

// Enabled returns fresh instances of the rules cfg switches on.
func Enabled(cfg *config.Config) []Rule {
	var out []Rule

	for _, r := range All() {
		if cfg.Enabled(r.Name()) {
			out = append(out, r)
		}
	}

	return out
}
