package adapter

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/svlint/internal/model"
	"github.com/mouse-blink/svlint/internal/syntax"
)

// ErrNoTree is returned for sources without a companion dump.
var ErrNoTree = errors.New("no syntax tree dump")

// TreeAdapter turns the dump written by the external parser into a syntax
// tree over the source text.
type TreeAdapter interface {
	// Load reads the source and its dump and builds the tree.
	Load(source m.Source) (syntax.Tree, error)
	// Decode builds a tree from an in-memory source and dump.
	Decode(src, dump []byte) (syntax.Tree, error)
}

// treeDump is the document shape of a dump. JSON dumps decode through the
// same path since JSON is valid YAML.
type treeDump struct {
	Root *dumpNode `yaml:"root"`
}

type dumpNode struct {
	Kind     syntax.Kind `yaml:"kind"`
	Start    *int        `yaml:"start"`
	End      *int        `yaml:"end"`
	Children []*dumpNode `yaml:"children"`
}

// treeCacheSize bounds the number of decoded trees kept between runs.
const treeCacheSize = 1024

type cachedTree struct {
	digest [sha256.Size]byte
	tree   syntax.Tree
}

// LocalTreeAdapter reads dumps through a SourceFSAdapter. Decoded trees are
// cached per dump path and reused while source and dump are unchanged.
type LocalTreeAdapter struct {
	fs    SourceFSAdapter
	cache *lru.Cache[m.Path, cachedTree]
}

// NewLocalTreeAdapter constructs a LocalTreeAdapter.
func NewLocalTreeAdapter(fs SourceFSAdapter) *LocalTreeAdapter {
	cache, err := newTreeCache(treeCacheSize)
	if err != nil {
		panic(err)
	}

	return &LocalTreeAdapter{fs: fs, cache: cache}
}

func newTreeCache(size int) (*lru.Cache[m.Path, cachedTree], error) {
	cache, err := lru.New[m.Path, cachedTree](size)
	if err != nil {
		return nil, fmt.Errorf("tree cache: %w", err)
	}

	return cache, nil
}

// Load reads source.Origin and source.Tree and decodes them.
func (a *LocalTreeAdapter) Load(source m.Source) (syntax.Tree, error) {
	if source.Tree == "" {
		return nil, fmt.Errorf("%s: %w", source.Origin, ErrNoTree)
	}

	src, err := a.fs.ReadFile(source.Origin)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	dump, err := a.fs.ReadFile(source.Tree)
	if err != nil {
		return nil, fmt.Errorf("read tree dump: %w", err)
	}

	digest := contentDigest(src, dump)
	if cached, ok := a.cache.Get(source.Tree); ok && cached.digest == digest {
		return cached.tree, nil
	}

	tree, err := a.Decode(src, dump)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source.Tree, err)
	}

	a.cache.Add(source.Tree, cachedTree{digest: digest, tree: tree})

	return tree, nil
}

func contentDigest(src, dump []byte) [sha256.Size]byte {
	return sha256.Sum256(bytes.Join([][]byte{src, dump}, []byte{0}))
}

// Decode parses dump and validates every node span against src. A node
// without a span covers its children.
func (a *LocalTreeAdapter) Decode(src, dump []byte) (syntax.Tree, error) {
	var doc treeDump
	if err := yaml.Unmarshal(dump, &doc); err != nil {
		return nil, fmt.Errorf("decode tree dump: %w", err)
	}

	if doc.Root == nil {
		return nil, errors.New("decode tree dump: missing root")
	}

	b := syntax.NewBuilder(string(src))

	root, err := build(b, doc.Root, "root")
	if err != nil {
		return nil, err
	}

	return b.Tree(root)
}

func build(b *syntax.Builder, n *dumpNode, path string) (*syntax.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("decode tree dump: %s: empty node", path)
	}

	if n.Kind == syntax.KindInvalid {
		return nil, fmt.Errorf("decode tree dump: %s: missing kind", path)
	}

	children := make([]*syntax.Node, 0, len(n.Children))

	for i, c := range n.Children {
		child, err := build(b, c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	switch {
	case n.Start != nil && n.End != nil:
		return b.Node(n.Kind, *n.Start, *n.End, children...), nil
	case n.Start == nil && n.End == nil && len(children) > 0:
		return b.Wrap(n.Kind, children...), nil
	default:
		return nil, fmt.Errorf("decode tree dump: %s (%s): incomplete span", path, n.Kind)
	}
}
