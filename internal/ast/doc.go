// Package ast defines the Expression and Statement abstract syntax
// trees produced by pkg/parser and consumed by pkg/eval.
//
// Expr is a tagged sum in the teacher's style (internal/types in the
// original Nix interpreter this repo is adapted from): a small
// interface implemented by one struct per variant, each carrying a
// baseNode for source-position tracking and a String() method for
// debugging. The variants are exactly those the spec's expression
// grammar names: Value, Variable, Unary, Binary, Assignment, Cast and
// Comma — no more, since this dialect has no function calls, lists, or
// attribute sets to add further cases for.
//
// Statement is the equivalent tagged sum one level up: Declaration,
// ExpressionStatement and Print. A parsed Statement also carries the
// stripped source text the driver echoes back after a mutating
// evaluation, per spec.md §4.4.
package ast
