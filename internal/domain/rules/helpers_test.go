package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/svlint/internal/config"
	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// fixture builds trees over one source text, locating node spans by the
// text they cover.
type fixture struct {
	t   *testing.T
	src string
	b   *syntax.Builder
	// from is where the next lookup starts, so repeated texts resolve in
	// document order.
	from int
}

func newFixture(t *testing.T, src string) *fixture {
	t.Helper()

	return &fixture{t: t, src: src, b: syntax.NewBuilder(src)}
}

// span returns the node of kind covering the next occurrence of text.
func (f *fixture) span(kind syntax.Kind, text string, children ...*syntax.Node) *syntax.Node {
	f.t.Helper()

	i := strings.Index(f.src[f.from:], text)
	require.GreaterOrEqual(f.t, i, 0, "text %q not found after offset %d", text, f.from)

	start := f.from + i

	return f.b.Node(kind, start, start+len(text), children...)
}

// seek moves the lookup cursor past the next occurrence of text.
func (f *fixture) seek(text string) {
	f.t.Helper()

	i := strings.Index(f.src[f.from:], text)
	require.GreaterOrEqual(f.t, i, 0, "text %q not found after offset %d", text, f.from)

	f.from += i + len(text)
}

// identifier builds outer -> Identifier for name, e.g. ModuleIdentifier.
func (f *fixture) identifier(outer syntax.Kind, name string) *syntax.Node {
	f.t.Helper()

	id := f.span(syntax.KindIdentifier, name)
	if outer == syntax.KindIdentifier {
		return id
	}

	return f.b.Wrap(outer, id)
}

func (f *fixture) tree(children ...*syntax.Node) syntax.Tree {
	f.t.Helper()

	tree, err := f.b.Tree(f.b.Node(syntax.KindSourceText, 0, len(f.src), children...))
	require.NoError(f.t, err)

	return tree
}

type outcome struct {
	failed []string
	errs   []error
}

// run drives rule over every event of tree and collects the text of failed
// nodes.
func run(t *testing.T, rule Rule, tree syntax.Tree, option *config.Option) outcome {
	t.Helper()

	var out outcome

	for ev := range tree.Events() {
		v, err := rule.Check(tree, ev, option)
		if err != nil {
			out.errs = append(out.errs, err)
			continue
		}

		if v == m.Fail {
			text, err := tree.TextOf(ev.Node)
			require.NoError(t, err)

			out.failed = append(out.failed, text)
		}
	}

	return out
}

func options() *config.Option {
	return &config.Default().Option
}
