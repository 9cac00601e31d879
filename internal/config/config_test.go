package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
option:
  re_forbidden_checker: "^.*_reg$"
rules:
  style_operator_arithmetic: false
`))
	require.NoError(t, err)

	assert.Equal(t, "^.*_reg$", cfg.Option.ReForbiddenChecker)
	assert.Equal(t, defaultRequired, cfg.Option.ReRequiredModuleAnsi)
	assert.False(t, cfg.Enabled("style_operator_arithmetic"))
	assert.True(t, cfg.Enabled("re_forbidden_checker"))
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("option:\n  re_required_wire: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestMarshal_RoundTripsDefaults(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "re_required_module_ansi:")

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Option, cfg.Option)
}

func TestValidate(t *testing.T) {
	known := []string{"re_forbidden_checker", "style_operator_arithmetic"}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, Validate(Default(), known))
	})

	t.Run("bad pattern", func(t *testing.T) {
		cfg := Default()
		cfg.Option.ReRequiredSequence = "(unclosed"

		err := Validate(cfg, known)
		require.Error(t, err)

		var pe *PatternError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "re_required_sequence", pe.Option)
		assert.Equal(t, "(unclosed", pe.Pattern)
	})

	t.Run("unknown rule", func(t *testing.T) {
		cfg := Default()
		cfg.Rules["re_required_wire"] = true

		err := Validate(cfg, known)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownRule)
		assert.Contains(t, err.Error(), `"re_required_wire"`)
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := Default()
		cfg.Option.ReForbiddenChecker = "["
		cfg.Option.ReForbiddenProperty = "("
		cfg.Rules["nope"] = false

		err := Validate(cfg, known)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "re_forbidden_checker")
		assert.Contains(t, err.Error(), "re_forbidden_property")
		assert.ErrorIs(t, err, ErrUnknownRule)
	})
}
