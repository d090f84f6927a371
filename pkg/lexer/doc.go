// Package lexer implements the single-token pull scanner described in
// spec.md §4.1: given a cursor into a character buffer, NextToken
// returns the next Token and advances the cursor, or returns TokenEOF.
//
// The lexer recognizes identifiers and keywords, decimal and 0x-prefixed
// hexadecimal integer literals, floating literals, and a fixed
// punctuation/operator set; multi-character operators are lexed
// greedily via one-character lookahead, following the same readChar /
// peekChar structure the teacher's pkg/lexer uses for Nix.
//
// Per spec.md §9, identifier overflow (beyond the lexer's maxIdentLen
// bytes, DefaultMaxIdentLen unless config's Limits.MaxIdentLen is passed)
// is rejected rather than silently truncated — the source program this
// dialect was distilled from truncates silently, which the spec lists
// as a bug worth fixing explicitly in a reimplementation.
//
// Character and string literals are not implemented, matching spec.md
// §1's explicit non-goal; encountering a quote character yields an
// ILLEGAL token.
package lexer
