package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/svlint/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayResults prints the results, switching to an interactive list when
// they do not fit the terminal.
func (t *TUI) DisplayResults(results []m.FileResult) error {
	model := newResultsModel()
	model = model.handleResultsMsg(resultsMsg{results: results})
	model.width, model.height = t.size()

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, failureLines(results)+model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayRules prints the rule catalogue.
func (t *TUI) DisplayRules(rules []m.RuleInfo) error {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	reasonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(2)

	var b strings.Builder

	for _, r := range rules {
		name := nameStyle.Render(r.Name)
		if !r.Enabled {
			name = offStyle.Render(r.Name) + " (disabled)"
		}

		fmt.Fprintf(&b, "%s\n%s\n%s\n", name, hintStyle.Render(r.Hint), reasonStyle.Render(r.Reason))
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayErrors prints rule errors.
func (t *TUI) DisplayErrors(errs []m.RuleError) error {
	if len(errs) == 0 {
		return nil
	}

	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	var b strings.Builder

	for _, e := range errs {
		fmt.Fprintf(&b, "%s %s: %s\n", kindStyle.Render(string(e.Kind)+" error"), e.Path, e.Message)
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func (t *TUI) size() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}
