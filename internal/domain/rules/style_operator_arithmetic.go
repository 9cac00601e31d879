package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mouse-blink/svlint/internal/config"
	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

var arithmeticOperators = map[string]struct{}{
	"+":  {},
	"-":  {},
	"*":  {},
	"/":  {},
	"%":  {},
	"**": {},
}

// allowedSuccessor matches what may follow an arithmetic operator:
//   - nothing, the next token follows immediately
//   - a line break
//   - exactly one space, then a comment
//   - exactly one space, then nothing
var allowedSuccessor = regexp.MustCompile(`^(?:$|[\n\v\f\r]| //| /\*| $)`)

type styleOperatorArithmetic struct{}

// NewStyleOperatorArithmetic checks the whitespace after + - * / % and **.
func NewStyleOperatorArithmetic() Rule {
	return &styleOperatorArithmetic{}
}

func (r *styleOperatorArithmetic) Check(tree syntax.Tree, ev syntax.Event, _ *config.Option) (m.Verdict, error) {
	if ev.Type == syntax.Leave || ev.Node.Kind != syntax.KindBinaryOperator {
		return m.Pass, nil
	}

	text, err := tree.TextOf(ev.Node)
	if err != nil {
		return m.Pass, fmt.Errorf("rule %s: %w", r.Name(), err)
	}

	return OperatorSpacing(text), nil
}

func (r *styleOperatorArithmetic) Name() string {
	return "style_operator_arithmetic"
}

func (r *styleOperatorArithmetic) Hint(_ *config.Option) string {
	return "Follow operator with a symbol, identifier, newline, or exactly 1 space."
}

func (r *styleOperatorArithmetic) Reason(_ *config.Option) string {
	return "Consistent use of whitespace enhances readability by reducing visual noise."
}

// SplitOperator splits the text of an operator node into the operator symbol,
// the first run of non-whitespace, and everything after it.
func SplitOperator(text string) (op, successor string) {
	start := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return "", ""
	}

	rest := text[start:]

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		return rest, ""
	}

	return rest[:end], rest[end:]
}

// OperatorSpacing judges the text of one binary operator node. Operators
// other than the arithmetic ones always pass.
func OperatorSpacing(text string) m.Verdict {
	op, successor := SplitOperator(text)

	if _, ok := arithmeticOperators[op]; !ok {
		return m.Pass
	}

	if !allowedSuccessor.MatchString(successor) {
		return m.Fail
	}

	return m.Pass
}
