package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// module top; assign a = b + c; endmodule
const sample = "module top; assign a = b + c; endmodule"

func sampleTree(t *testing.T) (Tree, *Node) {
	t.Helper()

	b := NewBuilder(sample)
	ident := b.Node(KindIdentifier, 7, 10)
	modIdent := b.Wrap(KindModuleIdentifier, ident)
	header := b.Node(KindModuleAnsiHeader, 0, 11, modIdent)
	op := b.Node(KindBinaryOperator, 25, 27)
	expr := b.Node(KindOther, 23, 28, op)
	root := b.Node(KindSourceText, 0, len(sample), header, expr)

	tree, err := b.Tree(root)
	require.NoError(t, err)

	return tree, op
}

func TestWalk_BalancedEvents(t *testing.T) {
	tree, _ := sampleTree(t)

	var (
		depth int
		stack []*Node
		enter = map[*Node]int{}
		leave = map[*Node]int{}
	)

	for ev := range tree.Events() {
		switch ev.Type {
		case Enter:
			depth++
			stack = append(stack, ev.Node)
			enter[ev.Node]++
		case Leave:
			depth--
			require.NotEmpty(t, stack)
			assert.Same(t, stack[len(stack)-1], ev.Node, "leave must close the innermost open node")
			stack = stack[:len(stack)-1]
			leave[ev.Node]++
		}
		assert.GreaterOrEqual(t, depth, 0)
	}

	assert.Equal(t, 0, depth)
	assert.Len(t, enter, 6)
	assert.Equal(t, enter, leave)
}

func TestWalk_Restartable(t *testing.T) {
	tree, _ := sampleTree(t)

	count := func() int {
		n := 0
		for range tree.Events() {
			n++
		}

		return n
	}

	assert.Equal(t, 12, count())
	assert.Equal(t, 12, count())
}

func TestWalk_StopsEarly(t *testing.T) {
	tree, _ := sampleTree(t)

	n := 0
	for range tree.Events() {
		n++
		if n == 3 {
			break
		}
	}

	assert.Equal(t, 3, n)
}

func TestTree_TextOf(t *testing.T) {
	tree, op := sampleTree(t)

	text, err := tree.TextOf(op)
	require.NoError(t, err)
	assert.Equal(t, "+ ", text)

	ident, err := Find(tree.Root(), KindIdentifier)
	require.NoError(t, err)

	text, err = tree.TextOf(ident)
	require.NoError(t, err)
	assert.Equal(t, "top", text)
}

func TestTree_TextOfNil(t *testing.T) {
	tree, _ := sampleTree(t)

	_, err := tree.TextOf(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingChild))
}

func TestNewTree_RejectsBadSpans(t *testing.T) {
	b := NewBuilder("abc")

	tests := []struct {
		name string
		root *Node
	}{
		{name: "beyond source", root: b.Node(KindSourceText, 0, 4)},
		{name: "inverted", root: b.Node(KindSourceText, 2, 1)},
		{name: "child outside parent", root: b.Node(KindSourceText, 0, 2, b.Node(KindIdentifier, 1, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Tree(tt.root)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSpanOutOfRange)

			var ce *ContractError
			assert.ErrorAs(t, err, &ce)
		})
	}

	_, err := NewTree([]byte("abc"), nil)
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	tree, _ := sampleTree(t)

	header, err := Find(tree.Root(), KindModuleAnsiHeader)
	require.NoError(t, err)

	mi, err := Find(header, KindModuleIdentifier)
	require.NoError(t, err)
	assert.Equal(t, KindModuleIdentifier, mi.Kind)

	_, err = Find(header, KindSequenceIdentifier)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingChild)
	assert.Contains(t, err.Error(), "ModuleAnsiHeader has no SequenceIdentifier")

	// The node itself is not a candidate.
	_, err = Find(mi.Children[0], KindIdentifier)
	assert.ErrorIs(t, err, ErrMissingChild)
}

func TestKind_Text(t *testing.T) {
	var k Kind

	require.NoError(t, k.UnmarshalText([]byte("GenerateBlock")))
	assert.Equal(t, KindGenerateBlock, k)

	require.NoError(t, k.UnmarshalText([]byte("ParamAssignment")))
	assert.Equal(t, KindOther, k)

	assert.Error(t, k.UnmarshalText(nil))

	text, err := KindHierarchicalInstance.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "HierarchicalInstance", string(text))

	_, err = KindInvalid.MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "invalid(0)", KindInvalid.String())
}

func TestLineIndex_Position(t *testing.T) {
	li := NewLineIndex([]byte("ab\ncd\n\nx"))

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{6, 3, 1},
		{7, 4, 1},
		{-5, 1, 1},
	}

	for _, tt := range tests {
		line, col := li.Position(tt.offset)
		assert.Equal(t, tt.line, line, "line of offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "column of offset %d", tt.offset)
	}

	assert.Equal(t, 4, li.Lines())
	assert.Equal(t, 3, li.LineStart(2))
	assert.Equal(t, -1, li.LineStart(9))
}
