package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mouse-blink/svlint/internal/adapter"
	"github.com/mouse-blink/svlint/internal/config"
	controllermocks "github.com/mouse-blink/svlint/internal/controller/mocks"
	"github.com/mouse-blink/svlint/internal/domain"
	m "github.com/mouse-blink/svlint/internal/model"
)

func TestLintIntegration_Examples(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "basic")
	log := zaptest.NewLogger(t).Sugar()

	fsAdapter := adapter.NewLocalSourceFSAdapter(config.FileName, log)
	reportStore := adapter.NewReportStore(log)
	ui := controllermocks.NewMockUI(t)

	watcher, err := adapter.NewFSWatcher(config.FileName, 0, log)
	require.NoError(t, err)

	wf := domain.NewWorkflow(fsAdapter, adapter.NewLocalTreeAdapter(fsAdapter), reportStore, watcher, ui, domain.NewLinter(log), log)

	var displayed []m.FileResult

	ui.EXPECT().DisplayResults(mock.Anything).Run(func(results []m.FileResult) {
		displayed = results
	}).Return(nil)

	reports := filepath.Join(t.TempDir(), "reports")

	err = wf.Lint(domain.LintArgs{
		Paths:   []m.Path{m.Path(dir)},
		Config:  m.Path(filepath.Join(dir, config.FileName)),
		Threads: 2,
		Reports: m.Path(reports),
	})
	require.ErrorIs(t, err, domain.ErrViolations)

	byName := make(map[string]m.FileResult, len(displayed))
	for _, r := range displayed {
		byName[filepath.Base(string(r.Source.Origin))] = r
	}

	require.Len(t, byName, 2)

	top := byName["top.sv"]
	require.Len(t, top.Failures, 2)
	assert.Equal(t, "re_required_module_ansi", top.Failures[0].Rule)
	assert.Equal(t, "module Top_Bad ();", top.Failures[0].Text)
	assert.Equal(t, 1, top.Failures[0].Line)
	assert.Equal(t, 1, top.Failures[0].Column)
	assert.Equal(t, "keyword_forbidden_wire_reg", top.Failures[1].Rule)
	assert.Equal(t, 2, top.Failures[1].Line)
	assert.Equal(t, 3, top.Failures[1].Column)
	assert.Empty(t, top.Errors)

	fifo := byName["fifo.sv"]
	require.Len(t, fifo.Failures, 1)
	assert.Equal(t, "style_operator_arithmetic", fifo.Failures[0].Rule)
	assert.Equal(t, 3, fifo.Failures[0].Line)
	assert.Equal(t, 16, fifo.Failures[0].Column)
	assert.Equal(t, 1, fifo.Suppressed)

	saved, err := reportStore.LoadReports(m.Path(reports))
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}
