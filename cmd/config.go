package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/svlint/internal/config"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Long:  "Print the default configuration as YAML, ready to be saved as " + config.FileName + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(configCmd)
}
