// Package config holds the option set and rule switches consumed by the
// linter, loaded from .svlint.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up from the working directory
// upwards.
const FileName = ".svlint.yaml"

// ErrUnknownRule is returned when the configuration switches a rule that is
// not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Option is the read-only option set of one run.
type Option struct {
	ReRequiredModuleAnsi     string `yaml:"re_required_module_ansi"`
	ReRequiredSequence       string `yaml:"re_required_sequence"`
	ReRequiredInstance       string `yaml:"re_required_instance"`
	ReForbiddenChecker       string `yaml:"re_forbidden_checker"`
	ReForbiddenProperty      string `yaml:"re_forbidden_property"`
	ReForbiddenGenerateblock string `yaml:"re_forbidden_generateblock"`
}

// Config is the whole configuration file.
type Config struct {
	Option Option `yaml:"option"`
	// Rules switches rules on or off by name. Rules absent from the map are
	// enabled.
	Rules map[string]bool `yaml:"rules,omitempty"`
	// ParallelRules evaluates the rules of one file concurrently.
	ParallelRules bool `yaml:"parallel_rules,omitempty"`
}

const (
	defaultRequired  = "^[a-z]+[a-z0-9_]*$"
	defaultForbidden = "^[^X](UNCONFIGURED|.*)$"
)

// Default returns the built-in configuration: every rule enabled, required
// patterns accept lower snake case, forbidden patterns reject everything
// until configured.
func Default() *Config {
	return &Config{
		Option: Option{
			ReRequiredModuleAnsi:     defaultRequired,
			ReRequiredSequence:       defaultRequired,
			ReRequiredInstance:       defaultRequired,
			ReForbiddenChecker:       defaultForbidden,
			ReForbiddenProperty:      defaultForbidden,
			ReForbiddenGenerateblock: defaultForbidden,
		},
		Rules: map[string]bool{},
	}
}

// Parse decodes a configuration document over the defaults. Keys absent
// from the document keep their default values; unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = map[string]bool{}
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// Enabled reports whether the rule called name takes part in a run.
func (c *Config) Enabled(name string) bool {
	on, ok := c.Rules[name]
	return !ok || on
}

// Patterns returns the pattern options keyed by option name.
func (o *Option) Patterns() map[string]string {
	return map[string]string{
		"re_required_module_ansi":    o.ReRequiredModuleAnsi,
		"re_required_sequence":       o.ReRequiredSequence,
		"re_required_instance":       o.ReRequiredInstance,
		"re_forbidden_checker":       o.ReForbiddenChecker,
		"re_forbidden_property":      o.ReForbiddenProperty,
		"re_forbidden_generateblock": o.ReForbiddenGenerateblock,
	}
}

// PatternError is a pattern option that does not compile.
type PatternError struct {
	Option  string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("option %s: invalid pattern %q: %v", e.Option, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Validate compiles every pattern option and checks that switched rules
// exist among known. It reports all problems at once.
func Validate(cfg *Config, known []string) error {
	var errs []error

	patterns := cfg.Option.Patterns()

	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if _, err := regexp.Compile(patterns[name]); err != nil {
			errs = append(errs, &PatternError{Option: name, Pattern: patterns[name], Err: err})
		}
	}

	knownSet := make(map[string]struct{}, len(known))
	for _, k := range known {
		knownSet[k] = struct{}{}
	}

	switched := make([]string, 0, len(cfg.Rules))
	for name := range cfg.Rules {
		switched = append(switched, name)
	}

	sort.Strings(switched)

	for _, name := range switched {
		if _, ok := knownSet[name]; !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownRule, name))
		}
	}

	return errors.Join(errs...)
}
