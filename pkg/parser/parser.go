package parser

import (
	"fmt"

	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/pkg/lexer"
)

// Parser consumes one statement's worth of tokens from a lexer and
// produces a single internal/ast.Statement. It keeps the teacher's
// cur/peek two-token lookahead window, but drives expression parsing
// through Shunting-Yard (expressions.go) instead of precedence-climbing.
type Parser struct {
	l             *lexer.Lexer
	cur           lexer.Token
	peek          lexer.Token
	diags         *Diagnostics
	maxDeclFields int
}

// New creates a parser over l, priming the cur/peek window, bounding
// declaration field counts at the spec.md §6 default of 16.
func New(l *lexer.Lexer) *Parser {
	return NewWithMaxDeclFields(l, ast.MaxDeclFields)
}

// NewWithMaxDeclFields creates a parser enforcing a caller-supplied
// declared-fields-per-statement bound, overridable via internal/config.
func NewWithMaxDeclFields(l *lexer.Lexer, maxDeclFields int) *Parser {
	p := &Parser{l: l, diags: &Diagnostics{}, maxDeclFields: maxDeclFields}
	p.advance()
	p.advance()

	return p
}

// Parse parses exactly one statement, consuming through its trailing
// ';'. Returns accumulated parse diagnostics, if any, per spec.md §7
// ("parser returns ERROR").
func (p *Parser) Parse() (ast.Statement, error) {
	stmt := p.parseStatement()
	if p.diags.HasErrors() {
		return nil, p.diags
	}

	return stmt, nil
}

// Errors returns a slice of error messages from parsing failures.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, p.diags.Count())
	for _, e := range p.diags.Entries() {
		msgs = append(msgs, e.Error())
	}

	return msgs
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(tt lexer.TokenType) bool {
	return p.cur.Type == tt
}

// errorf records a diagnostic positioned at p.cur.
func (p *Parser) errorf(format string, args ...interface{}) {
	p.errorAtf(ast.SourcePos{Line: p.cur.Line, Column: p.cur.Column}, format, args...)
}

// errorAtf records a diagnostic positioned at pos, for callers that
// captured a token's position earlier than p.cur now reflects.
func (p *Parser) errorAtf(pos ast.SourcePos, format string, args ...interface{}) {
	p.diags.report(pos, fmt.Sprintf(format, args...))
}

// expectCur requires p.cur to be tt, advancing past it on success or
// recording a diagnostic on mismatch.
func (p *Parser) expectCur(tt lexer.TokenType) bool {
	if p.cur.Type == tt {
		p.advance()

		return true
	}

	p.errorf("expected %s, got %s", tt, p.cur.Type)

	return false
}
