package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/svlint/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResults prints every failure followed by a per-file summary table.
func (s *SimpleUI) DisplayResults(results []m.FileResult) error {
	results = sortedResults(results)

	for _, result := range results {
		for _, f := range result.Failures {
			s.printf("Fail: %s\n   --> %s:%d:%d\n", f.Rule, f.Path, f.Line, f.Column)
			s.printf("    |  %s\n", firstLine(f.Text))
			s.printf("    = hint  : %s\n    = reason: %s\n\n", f.Hint, f.Reason)
		}
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Failures", "Suppressed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	sum := summarize(results)

	for _, result := range results {
		table.Append([]string{
			string(result.Source.Origin),
			strconv.Itoa(len(result.Failures)),
			strconv.Itoa(result.Suppressed),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", sum.files),
		strconv.Itoa(sum.failures),
		strconv.Itoa(sum.suppressed),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayRules prints the rule catalogue as a table.
func (s *SimpleUI) DisplayRules(rules []m.RuleInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Enabled", "Hint"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	enabled := 0

	for _, r := range rules {
		if r.Enabled {
			enabled++
		}

		table.Append([]string{r.Name, yesNo(r.Enabled), r.Hint})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Rules %d", len(rules)), strconv.Itoa(enabled), ""})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayErrors prints rule errors as a table.
func (s *SimpleUI) DisplayErrors(errs []m.RuleError) error {
	if len(errs) == 0 {
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Kind", "Path", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, e := range errs {
		table.Append([]string{e.Rule, string(e.Kind), string(e.Path), e.Message})
	}

	table.Render()
	s.printf("\nRule errors:\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
