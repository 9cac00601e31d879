// Package rules implements the lint rules and the primitives they share.
//
// A rule is a small state machine driven by the Enter/Leave events of one
// depth-first traversal. Each rule instance lives for one run over one tree
// and owns all of its state: a pattern compiled on first use and, for
// contextual rules, a Scope counting the open containers around the current
// node. Rules never see each other.
//
// Three primitives carry the logic:
//
//   - Evaluate applies a naming policy. A required pattern fails identifiers
//     that do not match it in full; a forbidden pattern fails identifiers
//     that do.
//   - Scope gates a check to the inside of a container node kind. It counts
//     depth so that nested containers of the same kind keep the outer scope
//     open when an inner one closes.
//   - OperatorSpacing splits an operator node into its symbol and successor
//     text and accepts the successor only when it is empty, starts with a
//     line break, or is a single space followed by nothing or a comment.
//
// A pattern that does not compile is a ConfigError. It is returned on the
// first event the rule sees and on every later one, and the engine drops the
// rule for the rest of the run. A declaration without its identifier child
// is a syntax.ContractError, reported as an internal error rather than a
// failure.
package rules
