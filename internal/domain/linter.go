package domain

import (
	"cmp"
	"errors"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/svlint/internal/config"
	"github.com/mouse-blink/svlint/internal/domain/rules"
	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// Linter evaluates the enabled rules over the syntax tree of one source.
type Linter interface {
	Run(source m.Source, tree syntax.Tree, cfg *config.Config) m.FileResult
}

type linter struct {
	logger *zap.SugaredLogger
	// rules returns fresh rule instances; scope state never leaks between
	// runs.
	rules func(cfg *config.Config) []rules.Rule
}

// NewLinter creates a Linter over the rule registry.
func NewLinter(logger *zap.SugaredLogger) Linter {
	return &linter{logger: logger, rules: rules.Enabled}
}

// hit is a failed check of rule on the node of event.
type hit struct {
	event int
	rule  int
	node  *syntax.Node
}

// ruleRun is the outcome of one rule over the event sequence.
type ruleRun struct {
	hits     []hit
	errs     []m.RuleError
	disabled bool
}

// Run walks tree once and feeds every event to every enabled rule.
func (l *linter) Run(source m.Source, tree syntax.Tree, cfg *config.Config) m.FileResult {
	active := l.rules(cfg)
	events := slices.Collect(tree.Events())
	runs := make([]ruleRun, len(active))

	if cfg.ParallelRules && len(active) > 1 {
		var g errgroup.Group

		for ri, r := range active {
			g.Go(func() error {
				for ei, ev := range events {
					if runs[ri].disabled {
						break
					}

					l.check(source, tree, cfg, r, ri, ei, ev, &runs[ri])
				}

				return nil
			})
		}

		_ = g.Wait()
	} else {
		for ei, ev := range events {
			for ri, r := range active {
				if runs[ri].disabled {
					continue
				}

				l.check(source, tree, cfg, r, ri, ei, ev, &runs[ri])
			}
		}
	}

	return l.collect(source, tree, cfg, active, runs)
}

func (l *linter) check(source m.Source, tree syntax.Tree, cfg *config.Config, r rules.Rule, ri, ei int, ev syntax.Event, run *ruleRun) {
	verdict, err := r.Check(tree, ev, &cfg.Option)
	if err != nil {
		var cfgErr *rules.ConfigError
		if errors.As(err, &cfgErr) {
			run.disabled = true
			run.errs = append(run.errs, m.RuleError{
				Rule:    r.Name(),
				Kind:    m.RuleErrorConfig,
				Path:    source.Origin,
				Message: err.Error(),
			})
			l.logger.Errorw("rule disabled", "rule", r.Name(), "path", source.Origin, "error", err)

			return
		}

		run.errs = append(run.errs, m.RuleError{
			Rule:    r.Name(),
			Kind:    m.RuleErrorInternal,
			Path:    source.Origin,
			Message: err.Error(),
		})
		l.logger.Warnw("rule could not evaluate node", "rule", r.Name(), "path", source.Origin, "error", err)

		return
	}

	if verdict == m.Fail {
		run.hits = append(run.hits, hit{event: ei, rule: ri, node: ev.Node})
	}
}

// collect merges the per-rule outcomes in document order, resolves
// positions and drops suppressed failures.
func (l *linter) collect(source m.Source, tree syntax.Tree, cfg *config.Config, active []rules.Rule, runs []ruleRun) m.FileResult {
	result := m.FileResult{Source: source, Failures: []m.Failure{}}

	var hits []hit

	for _, run := range runs {
		hits = append(hits, run.hits...)
		result.Errors = append(result.Errors, run.errs...)
	}

	slices.SortFunc(hits, func(a, b hit) int {
		return cmp.Or(cmp.Compare(a.event, b.event), cmp.Compare(a.rule, b.rule))
	})

	src := tree.Source()
	lines := syntax.NewLineIndex(src)
	ignored := buildIgnoreIndex(src, lines)

	for _, h := range hits {
		r := active[h.rule]
		line, column := lines.Position(h.node.Start)

		if ignored.ignores(r.Name(), line) {
			result.Suppressed++
			continue
		}

		text, err := tree.TextOf(h.node)
		if err != nil {
			l.logger.Debugw("no text for failed node", "rule", r.Name(), "error", err)
		}

		result.Failures = append(result.Failures, m.Failure{
			Rule:   r.Name(),
			Hint:   r.Hint(&cfg.Option),
			Reason: r.Reason(&cfg.Option),
			Path:   source.Origin,
			Line:   line,
			Column: column,
			Text:   text,
		})
	}

	l.logger.Debugw("linted",
		"path", source.Origin,
		"rules", len(active),
		"failures", len(result.Failures),
		"suppressed", result.Suppressed,
		"errors", len(result.Errors))

	return result
}
