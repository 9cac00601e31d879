package domain

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/svlint/internal/adapter"
	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/controller"
	"github.com/mouse-blink/svlint/internal/domain/rules"
	m "github.com/mouse-blink/svlint/internal/model"
)

var (
	// ErrViolations is returned when a lint run found at least one failure.
	ErrViolations = errors.New("lint violations found")
	// ErrRuleErrors is returned when a rule could not evaluate.
	ErrRuleErrors = errors.New("rules could not evaluate")
)

// LintArgs holds the inputs of a lint run.
type LintArgs struct {
	Paths   []m.Path
	Exclude []string
	// Config is the configuration file. Empty searches upward from the
	// working directory.
	Config  m.Path
	Threads int
	// Reports is the directory to persist reports to. Empty skips saving.
	Reports       m.Path
	ParallelRules bool
}

// RulesArgs holds the inputs of a catalogue listing.
type RulesArgs struct {
	Config m.Path
}

// ViewArgs holds the inputs for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the svlint operations behind the CLI commands.
//
//go:generate mockery --name=Workflow --output=./mocks --outpkg=mocks --with-expecter
type Workflow interface {
	Lint(args LintArgs) error
	Watch(ctx context.Context, args LintArgs) error
	Rules(args RulesArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	treeAdapter adapter.TreeAdapter
	reportStore adapter.ReportStore
	watcher     adapter.Watcher
	ui          controller.UI
	linter      Linter
	logger      *zap.SugaredLogger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	treeAdapter adapter.TreeAdapter,
	reportStore adapter.ReportStore,
	watcher adapter.Watcher,
	ui controller.UI,
	linter Linter,
	logger *zap.SugaredLogger,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		treeAdapter: treeAdapter,
		reportStore: reportStore,
		watcher:     watcher,
		ui:          ui,
		linter:      linter,
		logger:      logger,
	}
}

// Lint checks every source under args.Paths against the enabled rules.
func (w *workflow) Lint(args LintArgs) error {
	cfg, err := w.loadConfig(args.Config)
	if err != nil {
		return err
	}

	if args.ParallelRules {
		cfg.ParallelRules = true
	}

	sources, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	results, err := w.lintSources(sources, cfg, args.Threads)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayResults(results); err != nil {
		return fmt.Errorf("display results: %w", err)
	}

	var ruleErrors []m.RuleError

	failures := 0

	for _, r := range results {
		ruleErrors = append(ruleErrors, r.Errors...)
		failures += len(r.Failures)
	}

	if len(ruleErrors) > 0 {
		if err := w.ui.DisplayErrors(ruleErrors); err != nil {
			return fmt.Errorf("display errors: %w", err)
		}
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, results); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
			return fmt.Errorf("regenerate index: %w", err)
		}
	}

	w.logger.Infow("lint finished", "files", len(results), "failures", failures, "rule_errors", len(ruleErrors))

	switch {
	case len(ruleErrors) > 0:
		return fmt.Errorf("%w: %d", ErrRuleErrors, len(ruleErrors))
	case failures > 0:
		return fmt.Errorf("%w: %d", ErrViolations, failures)
	default:
		return nil
	}
}

// Watch lints once, then again after every batch of input changes until ctx
// is done. Findings never end the session; an error of the first run does.
func (w *workflow) Watch(ctx context.Context, args LintArgs) error {
	if err := w.relint(args); err != nil {
		return err
	}

	return w.watcher.Watch(ctx, args.Paths, func(changed []m.Path) {
		w.logger.Infow("inputs changed, linting again", "files", len(changed))

		if err := w.relint(args); err != nil {
			w.logger.Errorw("lint failed", "error", err)
		}
	})
}

func (w *workflow) relint(args LintArgs) error {
	err := w.Lint(args)
	if errors.Is(err, ErrViolations) || errors.Is(err, ErrRuleErrors) {
		return nil
	}

	return err
}

// lintSources lints sources concurrently, keeping their order. Sources
// without a tree dump are skipped.
func (w *workflow) lintSources(sources []m.Source, cfg *config.Config, threads int) ([]m.FileResult, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	slots := make([]*m.FileResult, len(sources))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, source := range sources {
		if source.Tree == "" {
			w.logger.Warnw("no syntax tree dump, skipping", "path", source.Origin)
			continue
		}

		g.Go(func() error {
			tree, err := w.treeAdapter.Load(source)
			if err != nil {
				return fmt.Errorf("load tree: %w", err)
			}

			result := w.linter.Run(source, tree, cfg)
			slots[i] = &result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]m.FileResult, 0, len(slots))

	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	return results, nil
}

// Rules displays the rule catalogue with the hints of the active
// configuration.
func (w *workflow) Rules(args RulesArgs) error {
	cfg, err := w.loadConfig(args.Config)
	if err != nil {
		return err
	}

	all := rules.All()
	infos := make([]m.RuleInfo, 0, len(all))

	for _, r := range all {
		infos = append(infos, m.RuleInfo{
			Name:    r.Name(),
			Hint:    r.Hint(&cfg.Option),
			Reason:  r.Reason(&cfg.Option),
			Enabled: cfg.Enabled(r.Name()),
		})
	}

	return w.ui.DisplayRules(infos)
}

// View displays previously saved reports.
func (w *workflow) View(args ViewArgs) error {
	results, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.DisplayResults(results); err != nil {
		return err
	}

	var ruleErrors []m.RuleError
	for _, r := range results {
		ruleErrors = append(ruleErrors, r.Errors...)
	}

	if len(ruleErrors) > 0 {
		return w.ui.DisplayErrors(ruleErrors)
	}

	return nil
}

// loadConfig reads the configuration at path, or the one found upward from
// the working directory, and validates it. Without a file the defaults
// apply.
func (w *workflow) loadConfig(path m.Path) (*config.Config, error) {
	if path == "" {
		found, err := w.fsAdapter.FindConfig("")
		if err != nil {
			return nil, fmt.Errorf("find config: %w", err)
		}

		path = found
	}

	cfg := config.Default()

	if path != "" {
		data, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		cfg, err = config.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		w.logger.Debugw("config loaded", "path", path)
	}

	// Pattern errors stay with the rules that read them; those rules report
	// a configuration error at first use and drop out of the run.
	if err := config.Validate(cfg, rules.Names()); err != nil {
		if errors.Is(err, config.ErrUnknownRule) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}

		w.logger.Warnw("invalid pattern options", "error", err)
	}

	return cfg, nil
}
