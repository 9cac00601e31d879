package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/svlint/internal/domain"
	domainmocks "github.com/mouse-blink/svlint/internal/domain/mocks"
	m "github.com/mouse-blink/svlint/internal/model"
)

func newTestRootCmd(t *testing.T) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newRulesCmd(), newConfigCmd(), newViewCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow, out
}

func TestRootCmd_DefaultsToRecursiveScan(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Lint(domain.LintArgs{Paths: []m.Path{"./..."}}).Return(nil)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_PassesFlags(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Lint(domain.LintArgs{
		Paths:         []m.Path{"./rtl/...", "tb"},
		Exclude:       []string{"_gen", "^vendor/"},
		Config:        "lint.yaml",
		Threads:       4,
		Reports:       "out",
		ParallelRules: true,
	}).Return(nil)

	cmd.SetArgs([]string{
		"-c", "lint.yaml",
		"-p", "4",
		"-x", "_gen", "--exclude", "^vendor/",
		"--report", "out",
		"--parallel-rules",
		"--log-level", "debug",
		"./rtl/...", "tb",
	})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "debug", logLevelFlag)
}

func TestRootCmd_Watch(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Watch(mock.Anything, domain.LintArgs{Paths: []m.Path{"rtl/..."}, Threads: 2}).Return(nil)

	cmd.SetArgs([]string{"--watch", "-p", "2", "rtl/..."})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ReturnsWorkflowError(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Lint(mock.Anything).Return(domain.ErrViolations)

	cmd.SetArgs([]string{"top.sv"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrViolations)
}

func TestRulesCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Rules(domain.RulesArgs{Config: "team.yaml"}).Return(nil)

	cmd.SetArgs([]string{"rules", "--config", "team.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestRulesCmd_RejectsArgs(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"rules", "extra"})
	require.Error(t, cmd.Execute())
}

func TestConfigCmd_PrintsDefaults(t *testing.T) {
	cmd, _, out := newTestRootCmd(t)

	cmd.SetArgs([]string{"config"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "re_required_module_ansi:")
	assert.Contains(t, out.String(), "re_forbidden_checker:")
}

func TestViewCmd(t *testing.T) {
	t.Run("default reports directory", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRootCmd(t)

		mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: ".svlint-reports"}).Return(nil)

		cmd.SetArgs([]string{"view"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("report flag", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRootCmd(t)

		mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: "./reports-dir"}).Return(nil)

		cmd.SetArgs([]string{"view", "-r", "./reports-dir"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("positional args are rejected", func(t *testing.T) {
		cmd, _, _ := newTestRootCmd(t)

		cmd.SetArgs([]string{"view", "reports"})
		require.Error(t, cmd.Execute())
	})
}

func TestSetup_WiresWorkflowOnce(t *testing.T) {
	originalWorkflow := workflow
	t.Cleanup(func() { workflow = originalWorkflow })

	workflow = nil

	require.NoError(t, setup(newRootCmd(), nil))
	require.NotNil(t, workflow)

	wired := workflow

	require.NoError(t, setup(newRootCmd(), nil))
	assert.Same(t, wired, workflow)
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"./..."}, parsePaths(nil))
	assert.Equal(t, []m.Path{"a.sv", "rtl/..."}, parsePaths([]string{"a.sv", "rtl/..."}))
}
