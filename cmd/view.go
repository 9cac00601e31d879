package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/svlint/internal/domain"
	m "github.com/mouse-blink/svlint/internal/model"
)

const defaultReportsDir = ".svlint-reports"

var viewReportFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved lint reports",
		Long:  "View previously saved lint reports from a reports directory.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(viewReportFlag)})
		},
	}
	cmd.Flags().StringVarP(&viewReportFlag, "report", "r", defaultReportsDir, "reports directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
