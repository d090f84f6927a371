package parser

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/ctype"
	"github.com/nilsen/cinterp/pkg/lexer"
)

// isTypeStart reports whether tt begins a declaration-type run
// (spec.md §4.2.1).
func isTypeStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenVoid, lexer.TokenChar, lexer.TokenShort, lexer.TokenIntKw,
		lexer.TokenLong, lexer.TokenFloatKw, lexer.TokenDouble,
		lexer.TokenSigned, lexer.TokenUnsigned:
		return true
	default:
		return false
	}
}

// typeSpecRun accumulates the type-specifier tokens seen in one run.
type typeSpecRun struct {
	sawVoid, sawChar, sawShort, sawInt bool
	sawFloat, sawDouble                bool
	sawSigned, sawUnsigned             bool
	longCount                          int
}

// parseDeclarationType consumes a run of type-specifier tokens starting
// at p.cur and resolves it to a single Primitive (spec.md §4.2.1).
func (p *Parser) parseDeclarationType() (ctype.Primitive, bool) {
	pos := p.cur
	var run typeSpecRun

	for isTypeStart(p.cur.Type) {
		switch p.cur.Type {
		case lexer.TokenVoid:
			run.sawVoid = true
		case lexer.TokenChar:
			run.sawChar = true
		case lexer.TokenShort:
			run.sawShort = true
		case lexer.TokenIntKw:
			run.sawInt = true
		case lexer.TokenLong:
			run.longCount++
		case lexer.TokenFloatKw:
			run.sawFloat = true
		case lexer.TokenDouble:
			run.sawDouble = true
		case lexer.TokenSigned:
			run.sawSigned = true
		case lexer.TokenUnsigned:
			run.sawUnsigned = true
		}
		p.advance()
	}

	prim, ok := run.resolve()
	if !ok {
		p.errorAtf(ast.SourcePos{Line: pos.Line, Column: pos.Column}, "invalid combination of type specifiers")

		return ctype.Void, false
	}

	return prim, true
}

// resolve implements the acceptance table of spec.md §4.2.1, rejecting
// contradictory specifier combinations.
func (r typeSpecRun) resolve() (ctype.Primitive, bool) {
	if r.sawSigned && r.sawUnsigned {
		return ctype.Void, false
	}

	if r.sawVoid {
		if r.sawChar || r.sawShort || r.sawInt || r.sawFloat || r.sawDouble ||
			r.sawSigned || r.sawUnsigned || r.longCount > 0 {
			return ctype.Void, false
		}

		return ctype.Void, true
	}

	if r.sawFloat || r.sawDouble {
		if r.sawChar || r.sawShort || r.sawInt || r.sawSigned || r.sawUnsigned {
			return ctype.Void, false
		}
		if r.sawFloat && r.sawDouble {
			return ctype.Void, false
		}
		if r.sawDouble {
			if r.longCount > 1 {
				return ctype.Void, false
			}

			return ctype.Double, true
		}
		// sawFloat
		switch r.longCount {
		case 0:
			return ctype.Float, true
		case 1:
			return ctype.Double, true
		default:
			return ctype.Void, false
		}
	}

	if r.sawChar {
		if r.sawShort || r.sawInt || r.longCount > 0 {
			return ctype.Void, false
		}
		if r.sawUnsigned {
			return ctype.UChar, true
		}

		return ctype.Char, true
	}

	if r.sawShort {
		if r.longCount > 0 {
			return ctype.Void, false
		}
		if r.sawUnsigned {
			return ctype.UShort, true
		}

		return ctype.Short, true
	}

	// int / long combinations, with or without an explicit "int" and
	// with or without a bare "signed"/"unsigned" (which alone means int).
	switch r.longCount {
	case 0:
		if r.sawUnsigned {
			return ctype.UInt, true
		}

		return ctype.Int, true
	case 1:
		if r.sawUnsigned {
			return ctype.ULong, true
		}

		return ctype.Long, true
	default:
		if r.sawUnsigned {
			return ctype.ULongLong, true
		}

		return ctype.LongLong, true
	}
}

// parseCastType parses a parenthesized cast's type: a declaration-type
// run followed by zero or more '*' (spec.md §4.2.2 step 1). p.cur must
// be positioned at the first type-specifier token; the caller has
// already consumed the opening '('.
func (p *Parser) parseCastType() (ctype.Type, bool) {
	prim, ok := p.parseDeclarationType()
	if !ok {
		return ctype.Type{}, false
	}

	indirection := 0
	for p.curIs(lexer.TokenStar) {
		indirection++
		p.advance()
	}

	if !p.expectCur(lexer.TokenRParen) {
		return ctype.Type{}, false
	}

	return ctype.Type{Primitive: prim, Indirection: indirection}, true
}
