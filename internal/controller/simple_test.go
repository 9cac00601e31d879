package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/svlint/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func sampleResults() []m.FileResult {
	return []m.FileResult{
		{
			Source: m.Source{Origin: "rtl/b.sv"},
			Failures: []m.Failure{
				{Rule: "keyword_forbidden_wire_reg", Hint: "Replace `wire`", Reason: "intent", Path: "rtl/b.sv", Line: 2, Column: 3, Text: "wire"},
				{Rule: "style_operator_arithmetic", Hint: "Follow operator with a space", Reason: "readability", Path: "rtl/b.sv", Line: 4, Column: 9, Text: "+  \n"},
			},
			Suppressed: 1,
		},
		{Source: m.Source{Origin: "rtl/a.sv"}, Failures: []m.Failure{}},
	}
}

func TestSimpleUI_DisplayResults_PrintsFailuresAndTable(t *testing.T) {
	cmd, buf := newBufferedCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayResults(sampleResults()))

	output := buf.String()
	for _, want := range []string{
		"Fail: keyword_forbidden_wire_reg",
		"--> rtl/b.sv:2:3",
		"= hint  : Replace `wire`",
		"= reason: readability",
		"rtl/a.sv",
		"TOTAL FILES 2",
	} {
		assert.Contains(t, output, want)
	}

	assert.Less(t, bytes.Index(buf.Bytes(), []byte("rtl/a.sv")), bytes.LastIndex(buf.Bytes(), []byte("rtl/b.sv")),
		"files are listed in path order")
}

func TestSimpleUI_DisplayResults_Empty(t *testing.T) {
	cmd, buf := newBufferedCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayResults(nil))

	assert.Contains(t, buf.String(), "TOTAL FILES 0")
	assert.NotContains(t, buf.String(), "Fail:")
}

func TestSimpleUI_DisplayRules(t *testing.T) {
	cmd, buf := newBufferedCmd()

	rules := []m.RuleInfo{
		{Name: "keyword_forbidden_wire_reg", Hint: "Replace wire", Enabled: true},
		{Name: "re_forbidden_checker", Hint: "Use a checker identifier not matching regex", Enabled: false},
	}

	require.NoError(t, NewSimpleUI(cmd).DisplayRules(rules))

	output := buf.String()
	assert.Contains(t, output, "keyword_forbidden_wire_reg")
	assert.Contains(t, output, "re_forbidden_checker")
	assert.Contains(t, output, "yes")
	assert.Contains(t, output, "no")
	assert.Contains(t, output, "TOTAL RULES 2")
}

func TestSimpleUI_DisplayErrors(t *testing.T) {
	t.Run("prints nothing without errors", func(t *testing.T) {
		cmd, buf := newBufferedCmd()

		require.NoError(t, NewSimpleUI(cmd).DisplayErrors(nil))
		assert.Empty(t, buf.String())
	})

	t.Run("prints a row per error", func(t *testing.T) {
		cmd, buf := newBufferedCmd()

		errs := []m.RuleError{
			{Rule: "re_required_instance", Kind: m.RuleErrorInternal, Path: "rtl/b.sv", Message: "HierarchicalInstance has no InstanceIdentifier"},
		}

		require.NoError(t, NewSimpleUI(cmd).DisplayErrors(errs))

		output := buf.String()
		assert.Contains(t, output, "Rule errors:")
		assert.Contains(t, output, "re_required_instance")
		assert.Contains(t, output, "internal")
		assert.Contains(t, output, "HierarchicalInstance has no InstanceIdentifier")
	})
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "+", firstLine("+  \n  b"))
	assert.Equal(t, "wire", firstLine("wire"))
	assert.Equal(t, "", firstLine(""))
}
