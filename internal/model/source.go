package model

// Path represents a file system path.
type Path string

// Source represents a hardware description source file paired with the
// syntax tree dump produced for it by the external parser.
type Source struct {
	Hash   string `yaml:"hash,omitempty"`
	Origin Path   `yaml:"origin"`
	// Tree is the companion dump (foo.sv.tree.yaml or foo.sv.tree.json).
	// Empty when no dump exists; such sources are not linted.
	Tree Path `yaml:"tree,omitempty"`
}
