package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

const dumpSource = "module top ();\nendmodule\n"

const yamlDump = `root:
  kind: SourceText
  start: 0
  end: 25
  children:
    - kind: ModuleAnsiHeader
      start: 0
      end: 13
      children:
        - kind: ModuleIdentifier
          children:
            - kind: Identifier
              start: 7
              end: 10
    - kind: Keyword
      start: 15
      end: 24
`

func TestLocalTreeAdapter_Decode(t *testing.T) {
	adapter := NewLocalTreeAdapter(newTestFSAdapter())

	t.Run("yaml dump", func(t *testing.T) {
		tree, err := adapter.Decode([]byte(dumpSource), []byte(yamlDump))
		require.NoError(t, err)

		root := tree.Root()
		assert.Equal(t, syntax.KindSourceText, root.Kind)
		require.Len(t, root.Children, 2)

		header := root.Children[0]
		assert.Equal(t, syntax.KindModuleAnsiHeader, header.Kind)

		id, err := syntax.Find(header, syntax.KindModuleIdentifier)
		require.NoError(t, err)

		text, err := tree.TextOf(id)
		require.NoError(t, err)
		assert.Equal(t, "top", text, "a node without span covers its children")

		assert.Equal(t, syntax.KindOther, root.Children[1].Kind, "unknown kinds decode as Other")
	})

	t.Run("json dump", func(t *testing.T) {
		dump := `{"root": {"kind": "SourceText", "start": 0, "end": 25, "children": [
			{"kind": "NetTypeWire", "start": 0, "end": 6}
		]}}`

		tree, err := adapter.Decode([]byte(dumpSource), []byte(dump))
		require.NoError(t, err)

		require.Len(t, tree.Root().Children, 1)
		assert.Equal(t, syntax.KindNetTypeWire, tree.Root().Children[0].Kind)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			dump string
			want string
		}{
			{"malformed", "root: [", "decode tree dump"},
			{"missing root", "other: 1\n", "missing root"},
			{"missing kind", "root: {start: 0, end: 1}\n", "missing kind"},
			{"half span", "root: {kind: SourceText, start: 0}\n", "incomplete span"},
			{"leaf without span", "root: {kind: SourceText}\n", "incomplete span"},
			{"span past source", "root: {kind: SourceText, start: 0, end: 400}\n", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := adapter.Decode([]byte(dumpSource), []byte(tt.dump))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}

func TestLocalTreeAdapter_Load(t *testing.T) {
	adapter := NewLocalTreeAdapter(newTestFSAdapter())
	root := tempDir(t)

	origin := filepath.Join(root, "top.sv")
	writeTestFile(t, origin, dumpSource)
	writeTestFile(t, origin+".tree.yaml", yamlDump)

	t.Run("reads source and dump", func(t *testing.T) {
		tree, err := adapter.Load(m.Source{Origin: m.Path(origin), Tree: m.Path(origin + ".tree.yaml")})
		require.NoError(t, err)

		assert.Equal(t, []byte(dumpSource), tree.Source())
	})

	t.Run("no dump", func(t *testing.T) {
		_, err := adapter.Load(m.Source{Origin: m.Path(origin)})
		require.ErrorIs(t, err, ErrNoTree)
	})

	t.Run("missing dump file", func(t *testing.T) {
		_, err := adapter.Load(m.Source{Origin: m.Path(origin), Tree: m.Path(origin + ".tree.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read tree dump")
	})
}

func TestLocalTreeAdapter_LoadCachesUnchangedDumps(t *testing.T) {
	adapter := NewLocalTreeAdapter(newTestFSAdapter())
	root := tempDir(t)

	origin := filepath.Join(root, "top.sv")
	source := m.Source{Origin: m.Path(origin), Tree: m.Path(origin + ".tree.yaml")}

	writeTestFile(t, origin, dumpSource)
	writeTestFile(t, origin+".tree.yaml", yamlDump)

	first, err := adapter.Load(source)
	require.NoError(t, err)

	second, err := adapter.Load(source)
	require.NoError(t, err)
	assert.Same(t, first, second)

	writeTestFile(t, origin, "module abc ();\nendmodule\n")

	third, err := adapter.Load(source)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, "module abc ();\nendmodule\n", string(third.Source()))
}

func TestNewTreeCache(t *testing.T) {
	cache, err := newTreeCache(treeCacheSize)
	require.NoError(t, err)
	assert.Zero(t, cache.Len())

	_, err = newTreeCache(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tree cache")
}
