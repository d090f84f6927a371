// Package parser turns one statement's worth of tokens into an
// internal/ast.Statement. It is consumed one statement at a time: the
// driver slices the input stream on ';' and hands each slice to a fresh
// lexer/parser pair (spec.md §4.2, "consumes tokens for one statement at
// a time").
//
// Expressions are parsed with a Shunting-Yard algorithm over two
// operator stacks (prefix-unary markers, binary/assignment operators)
// and one operand stack, rather than the teacher's Pratt
// (cur/peek-precedence-climbing) style, because the source this dialect
// was distilled from is itself Shunting-Yard shaped and spec.md asks for
// that algorithm explicitly (§4.2.2, §9). The cur/peek two-token window
// is kept from the teacher's pkg/parser; diagnostics accumulate through
// Diagnostics, positioned the same way internal/ast positions nodes.
package parser
