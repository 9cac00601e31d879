// Package cmd provides the root command and CLI setup for svlint.
package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/svlint/internal/adapter"
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/controller"
	"github.com/mouse-blink/svlint/internal/domain"
	"github.com/mouse-blink/svlint/internal/logger"
	m "github.com/mouse-blink/svlint/internal/model"
)

// workflow is wired on first use so that --log-level applies to every
// component logger. Tests replace it with a mock.
var workflow domain.Workflow

var (
	logLevelFlag      string
	configFlag        string
	parallelFlag      int
	excludeFlags      []string
	reportFlag        string
	parallelRulesFlag bool
	watchFlag         bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svlint [paths...]",
		Short: "SystemVerilog lint rules",
		Long: `svlint checks SystemVerilog sources against naming, keyword and style
rules. Every source needs a syntax tree dump next to it
(foo.sv.tree.yaml, foo.sv.tree.yml or foo.sv.tree.json).

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./rtl/...      recursively scan rtl directory
  - ./rtl ./tb     scan multiple directories`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			lintArgs := domain.LintArgs{
				Paths:         parsePaths(args),
				Exclude:       excludeFlags,
				Config:        m.Path(configFlag),
				Threads:       parallelFlag,
				Reports:       m.Path(reportFlag),
				ParallelRules: parallelRulesFlag,
			}

			if watchFlag {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()

				return workflow.Watch(ctx, lintArgs)
			}

			return workflow.Lint(lintArgs)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR); overrides LOGGING_LEVEL")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "configuration file (default: "+config.FileName+" searched upwards)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel file workers (default: number of CPUs)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&reportFlag, "report", "r", "", "write per-file reports and an index to this directory")
	cmd.Flags().BoolVar(&parallelRulesFlag, "parallel-rules", false, "evaluate the rules of one file concurrently")
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "lint again whenever sources, tree dumps or the configuration change")

	return cmd
}

// setup wires the workflow unless one is already in place.
func setup(cmd *cobra.Command, _ []string) error {
	if workflow != nil {
		return nil
	}

	logger.Initialize(logLevelFlag)

	fsAdapter := adapter.NewLocalSourceFSAdapter(config.FileName, logger.For(logger.ComponentFS))

	watcher, err := adapter.NewFSWatcher(config.FileName, adapter.DefaultDebounce, logger.For(logger.ComponentFS))
	if err != nil {
		return err
	}

	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalTreeAdapter(fsAdapter),
		adapter.NewReportStore(logger.For(logger.ComponentReports)),
		watcher,
		controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout)),
		domain.NewLinter(logger.For(logger.ComponentLinter)),
		logger.For(logger.ComponentWorkflow),
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
