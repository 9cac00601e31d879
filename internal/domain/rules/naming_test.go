package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/svlint/internal/model"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		required   bool
		identifier string
		pattern    string
		want       m.Verdict
	}{
		{"forbidden suffix matches", false, "cnt_reg", `^.*_reg$`, m.Fail},
		{"forbidden suffix absent", false, "cnt_q", `^.*_reg$`, m.Pass},
		{"required matches", true, "u_adder", `^u_[a-z]+$`, m.Pass},
		{"required mismatch", true, "adder0", `^u_[a-z]+$`, m.Fail},
		{"required is a full match", true, "cnt_reg", `reg`, m.Fail},
		{"forbidden is a full match", false, "cnt_reg", `reg`, m.Pass},
		{"alternation is a full match", true, "ab", `a|ab`, m.Pass},
		{"empty identifier", true, "", `^[a-z]+$`, m.Fail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := CompilePattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Evaluate(tt.required, tt.identifier, p))
		})
	}
}

func TestEvaluate_PoliciesAreComplementary(t *testing.T) {
	patterns := []string{`^[a-z]+[a-z0-9_]*$`, `^.*_reg$`, `^[^X](UNCONFIGURED|.*)$`, `u_.*`, ``}
	identifiers := []string{"", "a", "cnt_reg", "cnt_q", "X", "Xfoo", "u_adder", "U_ADDER", "9lives", "x y"}

	for _, expr := range patterns {
		p := MustCompilePattern(expr)

		for _, id := range identifiers {
			required := Evaluate(true, id, p)
			forbidden := Evaluate(false, id, p)

			assert.NotEqual(t, required, forbidden, "pattern %q identifier %q", expr, id)
			assert.Equal(t, p.Matches(id), required == m.Pass, "pattern %q identifier %q", expr, id)
		}
	}
}

func TestCompilePattern_Error(t *testing.T) {
	_, err := CompilePattern("(unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing closing )")

	// balanced only once anchored
	_, err = CompilePattern("cnt)|(x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected )")

	assert.Panics(t, func() { MustCompilePattern("[") })
	assert.Equal(t, "^a$", MustCompilePattern("^a$").String())
}
