package parser

import (
	"strconv"

	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/pkg/lexer"
)

// parseStatement dispatches on the leading token to one of the three
// statement shapes (spec.md §4.2.4).
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case isTypeStart(p.cur.Type):
		return p.parseDeclStatement()
	case p.curIs(lexer.TokenPrint):
		p.advance()

		expr := p.parseExpr()
		if expr == nil {
			return nil
		}

		if !p.expectCur(lexer.TokenSemicolon) {
			return nil
		}

		return &ast.PrintStatement{Expr: expr}
	default:
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}

		if !p.expectCur(lexer.TokenSemicolon) {
			return nil
		}

		return &ast.ExpressionStatement{Expr: expr}
	}
}

// parseDeclStatement parses a declaration: a shared primitive type
// followed by up to ast.MaxDeclFields comma-separated fields, each with
// its own star-indirection, name, and optional array shape/initializer
// (spec.md §4.2.4, §6).
func (p *Parser) parseDeclStatement() ast.Statement {
	prim, ok := p.parseDeclarationType()
	if !ok {
		return nil
	}

	var fields []ast.DeclField

	for {
		field, ok := p.parseDeclField()
		if !ok {
			return nil
		}

		fields = append(fields, field)

		if len(fields) > p.maxDeclFields {
			p.errorf("too many declared fields (max %d)", p.maxDeclFields)

			return nil
		}

		if p.curIs(lexer.TokenComma) {
			p.advance()

			continue
		}

		break
	}

	if !p.expectCur(lexer.TokenSemicolon) {
		return nil
	}

	return &ast.DeclStatement{Primitive: prim, Fields: fields}
}

// parseDeclField parses one field of a declaration statement, stopping
// before the trailing ',' or ';'.
func (p *Parser) parseDeclField() (ast.DeclField, bool) {
	indirection := 0
	for p.curIs(lexer.TokenStar) {
		indirection++
		p.advance()
	}

	if !p.curIs(lexer.TokenIdent) {
		p.errorf("expected identifier in declaration, got %s", p.cur.Type)

		return ast.DeclField{}, false
	}

	name := p.cur.Literal
	p.advance()

	field := ast.DeclField{Name: name, Indirection: indirection}

	if p.curIs(lexer.TokenLBracket) {
		p.advance()

		if p.curIs(lexer.TokenInt) {
			size, err := parseArraySize(p.cur.Literal)
			if err != nil {
				p.errorf("invalid array size %q", p.cur.Literal)

				return ast.DeclField{}, false
			}

			field.HasArraySize = true
			field.ArraySize = size
			p.advance()
		}

		if !p.expectCur(lexer.TokenRBracket) {
			return ast.DeclField{}, false
		}

		field.IsArray = true

		if p.curIs(lexer.TokenAssign) {
			p.advance()

			if !p.expectCur(lexer.TokenLBrace) {
				return ast.DeclField{}, false
			}

			for {
				item := p.parseSubexpression()
				if item == nil {
					return ast.DeclField{}, false
				}

				field.ArrayInit = append(field.ArrayInit, item)

				if p.curIs(lexer.TokenComma) {
					p.advance()

					continue
				}

				break
			}

			if !p.expectCur(lexer.TokenRBrace) {
				return ast.DeclField{}, false
			}
		}

		return field, true
	}

	if p.curIs(lexer.TokenAssign) {
		p.advance()

		init := p.parseSubexpression()
		if init == nil {
			return ast.DeclField{}, false
		}

		field.ScalarInit = init
	}

	return field, true
}

func parseArraySize(lit string) (int, error) {
	n, err := strconv.ParseUint(lit, 0, 32)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
