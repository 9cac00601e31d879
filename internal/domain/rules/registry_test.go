package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/svlint/internal/config"
)

func TestNames_SortedAndUnique(t *testing.T) {
	names := Names()

	require.Len(t, names, 8)
	assert.IsIncreasing(t, names)
}

func TestAll_FreshInstances(t *testing.T) {
	a, b := All(), All()

	for i := range a {
		// Stateless rules are empty structs; only stateful ones must differ.
		if _, ok := a[i].(*namingRule); ok {
			assert.NotSame(t, a[i], b[i], a[i].Name())
		}
	}
}

func TestNew(t *testing.T) {
	r, ok := New("re_required_instance")
	require.True(t, ok)
	assert.Equal(t, "re_required_instance", r.Name())

	_, ok = New("re_required_wire")
	assert.False(t, ok)
}

func TestEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Rules["style_operator_arithmetic"] = false
	cfg.Rules["re_forbidden_checker"] = true

	var names []string
	for _, r := range Enabled(cfg) {
		names = append(names, r.Name())
	}

	assert.Len(t, names, 7)
	assert.NotContains(t, names, "style_operator_arithmetic")
	assert.Contains(t, names, "re_forbidden_checker")
}
