package rules

import (
	"github.com/mouse-blink/svlint/internal/config"
	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

type keywordForbiddenWireReg struct{}

// NewKeywordForbiddenWireReg fails every wire net type and reg vector type.
func NewKeywordForbiddenWireReg() Rule {
	return &keywordForbiddenWireReg{}
}

func (r *keywordForbiddenWireReg) Check(_ syntax.Tree, ev syntax.Event, _ *config.Option) (m.Verdict, error) {
	if ev.Type == syntax.Leave {
		return m.Pass, nil
	}

	switch ev.Node.Kind {
	case syntax.KindNetTypeWire, syntax.KindIntegerVectorTypeReg:
		return m.Fail, nil
	default:
		return m.Pass, nil
	}
}

func (r *keywordForbiddenWireReg) Name() string {
	return "keyword_forbidden_wire_reg"
}

func (r *keywordForbiddenWireReg) Hint(_ *config.Option) string {
	return "Replace `wire` or `reg` keywords with `logic`, `tri` and/or `var`."
}

func (r *keywordForbiddenWireReg) Reason(_ *config.Option) string {
	return "Explicit datatype `logic` and/or datakind `var`/`tri` better describes intent."
}
