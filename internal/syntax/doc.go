// Package syntax is the boundary to the external hardware description
// parser.
//
// The linter never builds syntax trees itself. A parser run outside this
// module dumps the tree of every source file, and this package exposes such
// a tree through the minimal surface the rules rely on:
//
//   - Tree.Events yields one depth-first traversal as balanced Enter/Leave
//     events, restartable per run;
//   - Tree.TextOf returns the exact source text spanned by a node. Operator
//     nodes span their trailing trivia up to the next token, identifier
//     nodes span the identifier alone;
//   - Find locates the identifier child of a declaration node.
//
// Node kinds form a closed enumeration. Kinds that no rule inspects decode
// as KindOther so dumps from richer grammars load unchanged.
package syntax
