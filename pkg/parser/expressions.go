package parser

import (
	"strconv"

	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/ctype"
	"github.com/nilsen/cinterp/internal/value"
	"github.com/nilsen/cinterp/pkg/lexer"
)

// opEntry is one binary or assignment operator waiting on the
// Shunting-Yard binary-operator stack.
type opEntry struct {
	isAssign  bool
	bin       ast.BinaryOp
	assign    ast.AssignOp
	priority  int
	leftAssoc bool
	line, col int
}

// reduce pops left/right are supplied by the caller; reduce builds the
// Binary or Assignment node this entry represents.
func (e opEntry) reduce(left, right ast.Expr) ast.Expr {
	if e.isAssign {
		return &ast.AssignExpr{Op: e.assign, LHS: left, RHS: right}
	}

	return &ast.BinaryExpr{Op: e.bin, Left: left, Right: right}
}

// binaryOpTable implements the priority column of spec.md §4.2.2's
// table for non-assignment binary operators (priority 3 through 12;
// subscript is priority 1 but is handled directly in parseOperand, not
// through this stack).
var binaryOpTable = map[lexer.TokenType]opEntry{
	lexer.TokenStar:      {bin: ast.OpMul, priority: 3, leftAssoc: true},
	lexer.TokenSlash:     {bin: ast.OpDiv, priority: 3, leftAssoc: true},
	lexer.TokenPercent:   {bin: ast.OpMod, priority: 3, leftAssoc: true},
	lexer.TokenPlus:      {bin: ast.OpAdd, priority: 4, leftAssoc: true},
	lexer.TokenMinus:     {bin: ast.OpSub, priority: 4, leftAssoc: true},
	lexer.TokenShl:       {bin: ast.OpShl, priority: 5, leftAssoc: true},
	lexer.TokenShr:       {bin: ast.OpShr, priority: 5, leftAssoc: true},
	lexer.TokenLt:        {bin: ast.OpLT, priority: 6, leftAssoc: true},
	lexer.TokenLe:        {bin: ast.OpLE, priority: 6, leftAssoc: true},
	lexer.TokenGt:        {bin: ast.OpGT, priority: 6, leftAssoc: true},
	lexer.TokenGe:        {bin: ast.OpGE, priority: 6, leftAssoc: true},
	lexer.TokenEq:        {bin: ast.OpEq, priority: 7, leftAssoc: true},
	lexer.TokenNotEq:     {bin: ast.OpNE, priority: 7, leftAssoc: true},
	lexer.TokenAmp:       {bin: ast.OpBitAnd, priority: 8, leftAssoc: true},
	lexer.TokenCaret:     {bin: ast.OpBitXor, priority: 9, leftAssoc: true},
	lexer.TokenPipe:      {bin: ast.OpBitOr, priority: 10, leftAssoc: true},
	lexer.TokenAmpAmp:    {bin: ast.OpLAnd, priority: 11, leftAssoc: true},
	lexer.TokenPipePipe:  {bin: ast.OpLOr, priority: 12, leftAssoc: true},
}

// assignOpTable implements priority 13 (non-left, i.e. right-assoc) of
// the same table.
var assignOpTable = map[lexer.TokenType]ast.AssignOp{
	lexer.TokenAssign:    ast.OpAssign,
	lexer.TokenPlusEq:    ast.OpAddAssign,
	lexer.TokenMinusEq:   ast.OpSubAssign,
	lexer.TokenStarEq:    ast.OpMulAssign,
	lexer.TokenSlashEq:   ast.OpDivAssign,
	lexer.TokenPercentEq: ast.OpModAssign,
	lexer.TokenShlEq:     ast.OpShlAssign,
	lexer.TokenShrEq:     ast.OpShrAssign,
	lexer.TokenAmpEq:     ast.OpAndAssign,
	lexer.TokenCaretEq:   ast.OpXorAssign,
	lexer.TokenPipeEq:    ast.OpOrAssign,
}

const assignPriority = 13

// prefixUnaryTable implements priority 2's unary member operators
// (excluding the "(T)" cast form, handled separately since it carries a
// parsed type rather than a fixed opcode).
var prefixUnaryTable = map[lexer.TokenType]ast.UnaryOp{
	lexer.TokenPlusPlus:   ast.OpPreInc,
	lexer.TokenMinusMinus: ast.OpPreDec,
	lexer.TokenPlus:       ast.OpPos,
	lexer.TokenMinus:      ast.OpNeg,
	lexer.TokenNot:        ast.OpNot,
	lexer.TokenTilde:      ast.OpBitNot,
	lexer.TokenStar:       ast.OpDeref,
	lexer.TokenAmp:        ast.OpAddr,
}

// prefixMarker is one entry on the prefix stack: either a plain unary
// operator or a parsed cast type.
type prefixMarker struct {
	isCast   bool
	op       ast.UnaryOp
	castType ctype.Type
	line, col int
}

func (m prefixMarker) wrap(operand ast.Expr) ast.Expr {
	if m.isCast {
		return &ast.CastExpr{Target: m.castType, Operand: operand}
	}

	return &ast.UnaryExpr{Op: m.op, Operand: operand}
}

// parseExpr parses a full top-level expression: a comma-separated
// sequence of one or more subexpressions, bounded by ')', ']', '}', ';'
// or end of input (spec.md §4.2.3). A single subexpression is returned
// unwrapped; two or more are wrapped in a Comma node.
func (p *Parser) parseExpr() ast.Expr {
	first := p.parseSubexpression()
	if first == nil {
		return nil
	}

	items := []ast.Expr{first}
	for p.curIs(lexer.TokenComma) {
		p.advance()

		next := p.parseSubexpression()
		if next == nil {
			return nil
		}

		items = append(items, next)
	}

	if len(items) == 1 {
		return items[0]
	}

	return &ast.CommaExpr{Items: items}
}

// parseSubexpression parses one comma-bounded expression via
// Shunting-Yard: one operand stack, one binary/assignment operator
// stack (spec.md §4.2.2 algorithm, steps 1-6).
func (p *Parser) parseSubexpression() ast.Expr {
	var binStack []opEntry

	operand := p.parseOperand()
	if operand == nil {
		return nil
	}

	operands := []ast.Expr{operand}

	for {
		entry, ok := p.currentOpEntry()
		if !ok {
			break
		}
		p.advance()

		for len(binStack) > 0 {
			top := binStack[len(binStack)-1]
			if (top.leftAssoc && top.priority <= entry.priority) ||
				(!top.leftAssoc && top.priority < entry.priority) {
				binStack = binStack[:len(binStack)-1]
				operands = reduceTop(operands, top)

				continue
			}

			break
		}

		binStack = append(binStack, entry)

		right := p.parseOperand()
		if right == nil {
			return nil
		}

		operands = append(operands, right)
	}

	// Drain: reduce whatever remains on the binary stack.
	for len(binStack) > 0 {
		top := binStack[len(binStack)-1]
		binStack = binStack[:len(binStack)-1]
		operands = reduceTop(operands, top)
	}

	if len(operands) != 1 {
		p.errorf("internal error: shunting-yard drain left %d operands", len(operands))

		return nil
	}

	return operands[0]
}

// reduceTop pops the top two operands and reduces them through entry,
// pushing the result back.
func reduceTop(operands []ast.Expr, entry opEntry) []ast.Expr {
	n := len(operands)
	right := operands[n-1]
	left := operands[n-2]
	result := entry.reduce(left, right)

	return append(operands[:n-2], result)
}

// currentOpEntry reports whether p.cur is a binary or assignment
// operator token, returning the corresponding stack entry.
func (p *Parser) currentOpEntry() (opEntry, bool) {
	if op, ok := assignOpTable[p.cur.Type]; ok {
		return opEntry{
			isAssign: true, assign: op, priority: assignPriority, leftAssoc: false,
			line: p.cur.Line, col: p.cur.Column,
		}, true
	}

	if entry, ok := binaryOpTable[p.cur.Type]; ok {
		entry.line, entry.col = p.cur.Line, p.cur.Column

		return entry, true
	}

	return opEntry{}, false
}

// parseOperand implements steps 1-4 of spec.md §4.2.2: a prefix-marker
// phase, a simple operand (with trailing subscripts folded in), a
// postfix-marker phase, then applying postfix first and prefix LIFO.
func (p *Parser) parseOperand() ast.Expr {
	var prefixes []prefixMarker

	for {
		if p.curIs(lexer.TokenLParen) && isTypeStart(p.peek.Type) {
			line, col := p.cur.Line, p.cur.Column
			p.advance() // consume '('

			castType, ok := p.parseCastType()
			if !ok {
				return nil
			}

			prefixes = append(prefixes, prefixMarker{isCast: true, castType: castType, line: line, col: col})

			continue
		}

		if op, ok := prefixUnaryTable[p.cur.Type]; ok {
			prefixes = append(prefixes, prefixMarker{op: op, line: p.cur.Line, col: p.cur.Column})
			p.advance()

			continue
		}

		break
	}

	operand := p.parseSimpleOperand()
	if operand == nil {
		return nil
	}

	for p.curIs(lexer.TokenLBracket) {
		p.advance()

		index := p.parseExpr()
		if index == nil {
			return nil
		}

		if !p.expectCur(lexer.TokenRBracket) {
			return nil
		}

		operand = &ast.BinaryExpr{Op: ast.OpSubscript, Left: operand, Right: index}
	}

	var postfixes []ast.UnaryOp
	for p.curIs(lexer.TokenPlusPlus) || p.curIs(lexer.TokenMinusMinus) {
		if p.curIs(lexer.TokenPlusPlus) {
			postfixes = append(postfixes, ast.OpPostInc)
		} else {
			postfixes = append(postfixes, ast.OpPostDec)
		}
		p.advance()
	}

	// Postfix first, innermost (closest to the operand) applied first.
	for _, op := range postfixes {
		operand = &ast.UnaryExpr{Op: op, Operand: operand}
	}

	// Prefix LIFO: the last-pushed marker is closest to the operand.
	for i := len(prefixes) - 1; i >= 0; i-- {
		operand = prefixes[i].wrap(operand)
	}

	return operand
}

// parseSimpleOperand parses step 2's "simple expression": an
// identifier, an integer or float literal, or a parenthesized
// subexpression.
func (p *Parser) parseSimpleOperand() ast.Expr {
	switch p.cur.Type {
	case lexer.TokenIdent:
		name := p.cur.Literal
		p.advance()

		return &ast.VariableExpr{Name: name}

	case lexer.TokenInt:
		n, err := strconv.ParseUint(p.cur.Literal, 0, 64)
		if err != nil {
			p.errorf("invalid integer literal %q", p.cur.Literal)

			return nil
		}

		v := value.FromInt(ctype.Value(ctype.LongLong), int64(n))
		p.advance()

		return &ast.ValueExpr{Val: v}

	case lexer.TokenFloat:
		f, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			p.errorf("invalid floating literal %q", p.cur.Literal)

			return nil
		}

		v := value.FromFloat(ctype.Value(ctype.Double), f)
		p.advance()

		return &ast.ValueExpr{Val: v}

	case lexer.TokenLParen:
		p.advance()

		inner := p.parseExpr()
		if inner == nil {
			return nil
		}

		if !p.expectCur(lexer.TokenRParen) {
			return nil
		}

		return inner

	default:
		p.errorf("unexpected token %s in expression", p.cur.Type)

		return nil
	}
}
