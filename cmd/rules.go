package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/svlint/internal/domain"
	m "github.com/mouse-blink/svlint/internal/model"
)

var rulesConfigFlag string

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the lint rules",
		Long:  "List every lint rule with its hint and reason under the active configuration.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Rules(domain.RulesArgs{Config: m.Path(rulesConfigFlag)})
		},
	}
	cmd.Flags().StringVarP(&rulesConfigFlag, "config", "c", "", "configuration file")

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
