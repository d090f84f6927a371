package eval

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/ctype"
	"github.com/nilsen/cinterp/internal/logging"
	"github.com/nilsen/cinterp/internal/value"
)

func (ev *Evaluator) evalBinary(e *ast.BinaryExpr) (value.Value, bool) {
	if e.Op == ast.OpSubscript {
		return ev.evalSubscript(e)
	}

	left, c1 := ev.evalExpr(e.Left)
	if ev.ctx.HasError() {
		return value.Void(), c1
	}

	right, c2 := ev.evalExpr(e.Right)
	changed := c1 || c2
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	return ev.applyBinary(e.Op, left, right), changed
}

// evalSubscript is "[]" as dereferencing base+index, sharing the bounds
// check with "*" (spec.md §4.3.3).
func (ev *Evaluator) evalSubscript(e *ast.BinaryExpr) (value.Value, bool) {
	ptr, changed := ev.subscriptLValue(e)
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	loaded, ok := ev.ctx.LoadValue(ptr.Address(), ptr.Typ.Deref())
	if !ok {
		return ev.ctx.Fail("out-of-bounds subscript access"), changed
	}

	return loaded, changed
}

// applyBinary dispatches an already-evaluated operator/operand pair.
// Shared between evalBinary and compound-assignment desugaring.
func (ev *Evaluator) applyBinary(op ast.BinaryOp, left, right value.Value) value.Value {
	switch op {
	case ast.OpAdd, ast.OpSub:
		return ev.evalAddSub(op, left, right)
	case ast.OpMul, ast.OpDiv, ast.OpMod:
		return ev.evalMulDivMod(op, left, right)
	case ast.OpShl, ast.OpShr:
		return ev.evalShift(op, left, right)
	case ast.OpBitAnd, ast.OpBitXor, ast.OpBitOr:
		return ev.evalBitwise(op, left, right)
	case ast.OpLT, ast.OpLE, ast.OpGT, ast.OpGE, ast.OpEq, ast.OpNE:
		return ev.evalCompare(op, left, right)
	case ast.OpLAnd, ast.OpLOr:
		return ev.evalLogical(op, left, right)
	default:
		logging.Warnf("eval: unreachable binary operator %s", op)

		return ev.ctx.Fail("unsupported binary operator %s", op)
	}
}

func (ev *Evaluator) evalAddSub(op ast.BinaryOp, left, right value.Value) value.Value {
	lp, rp := left.Typ.IsPointer(), right.Typ.IsPointer()

	switch {
	case lp && rp:
		if op != ast.OpSub {
			return ev.ctx.Fail("pointer + pointer is not a valid operation")
		}
		if !left.Typ.Equal(right.Typ) {
			return ev.ctx.Fail("pointer subtraction requires identical pointer types")
		}

		diff := int64(left.Address()) - int64(right.Address())

		return value.FromAddress(left.Typ, uint64(diff))

	case lp && !rp:
		if right.Typ.IsVoid() || ctype.IsFloating(right.Typ.Primitive) {
			return ev.ctx.Fail("invalid pointer arithmetic operand")
		}

		scaled := right.Int64() * int64(left.Typ.ElementFactor())
		if op == ast.OpSub {
			scaled = -scaled
		}

		return value.FromAddress(left.Typ, uint64(int64(left.Address())+scaled))

	case rp && !lp:
		if op == ast.OpSub {
			return ev.ctx.Fail("int - pointer is not a valid operation")
		}
		if left.Typ.IsVoid() || ctype.IsFloating(left.Typ.Primitive) {
			return ev.ctx.Fail("invalid pointer arithmetic operand")
		}

		scaled := left.Int64() * int64(right.Typ.ElementFactor())

		return value.FromAddress(right.Typ, uint64(int64(right.Address())+scaled))

	default:
		ct := ctype.CommonType(left.Typ.Primitive, right.Typ.Primitive)
		t := ctype.Value(ct)

		if ctype.IsFloating(ct) {
			if op == ast.OpAdd {
				return value.FromFloat(t, left.Float64()+right.Float64())
			}

			return value.FromFloat(t, left.Float64()-right.Float64())
		}

		if op == ast.OpAdd {
			return value.FromInt(t, left.Int64()+right.Int64())
		}

		return value.FromInt(t, left.Int64()-right.Int64())
	}
}

func (ev *Evaluator) evalMulDivMod(op ast.BinaryOp, left, right value.Value) value.Value {
	if left.Typ.IsPointer() || right.Typ.IsPointer() {
		return ev.ctx.Fail("operator %s requires non-pointer operands", op)
	}

	ct := ctype.CommonType(left.Typ.Primitive, right.Typ.Primitive)
	t := ctype.Value(ct)

	if ctype.IsFloating(ct) {
		if op == ast.OpMod {
			return ev.ctx.Fail("'%%' requires integer operands")
		}

		lv, rv := left.Float64(), right.Float64()
		if op == ast.OpMul {
			return value.FromFloat(t, lv*rv)
		}
		if rv == 0 {
			return ev.ctx.Fail("division by zero")
		}

		return value.FromFloat(t, lv/rv)
	}

	if ctype.IsUnsigned(ct) {
		lv, rv := left.Uint64(), right.Uint64()
		if op == ast.OpMul {
			return value.FromUint(t, lv*rv)
		}
		if rv == 0 {
			return ev.ctx.Fail("division by zero")
		}
		if op == ast.OpDiv {
			return value.FromUint(t, lv/rv)
		}

		return value.FromUint(t, lv%rv)
	}

	lv, rv := left.Int64(), right.Int64()
	if op == ast.OpMul {
		return value.FromInt(t, lv*rv)
	}
	if rv == 0 {
		return ev.ctx.Fail("division by zero")
	}
	if op == ast.OpDiv {
		return value.FromInt(t, lv/rv)
	}

	return value.FromInt(t, lv%rv)
}

func (ev *Evaluator) evalShift(op ast.BinaryOp, left, right value.Value) value.Value {
	if left.Typ.IsPointer() || right.Typ.IsPointer() ||
		ctype.IsFloating(left.Typ.Primitive) || ctype.IsFloating(right.Typ.Primitive) {
		return ev.ctx.Fail("shift operators require non-pointer, non-floating operands")
	}

	ct := ctype.CommonType(left.Typ.Primitive, right.Typ.Primitive)
	t := ctype.Value(ct)
	amount := right.Uint64()

	if ctype.IsUnsigned(ct) {
		if op == ast.OpShl {
			return value.FromUint(t, left.Uint64()<<amount)
		}

		return value.FromUint(t, left.Uint64()>>amount)
	}

	if op == ast.OpShl {
		return value.FromInt(t, left.Int64()<<amount)
	}

	return value.FromInt(t, left.Int64()>>amount)
}

func (ev *Evaluator) evalBitwise(op ast.BinaryOp, left, right value.Value) value.Value {
	if left.Typ.IsPointer() || right.Typ.IsPointer() ||
		ctype.IsFloating(left.Typ.Primitive) || ctype.IsFloating(right.Typ.Primitive) {
		return ev.ctx.Fail("bitwise operators require non-pointer, non-floating operands")
	}

	ct := ctype.CommonType(left.Typ.Primitive, right.Typ.Primitive)
	t := ctype.Value(ct)
	lv, rv := left.Uint64(), right.Uint64()

	switch op {
	case ast.OpBitAnd:
		return value.FromUint(t, lv&rv)
	case ast.OpBitXor:
		return value.FromUint(t, lv^rv)
	default:
		return value.FromUint(t, lv|rv)
	}
}

func (ev *Evaluator) evalCompare(op ast.BinaryOp, left, right value.Value) value.Value {
	lp, rp := left.Typ.IsPointer(), right.Typ.IsPointer()

	var result bool

	switch {
	case lp && rp:
		if !left.Typ.Equal(right.Typ) {
			return ev.ctx.Fail("pointer comparison requires identical pointer types")
		}

		result = compareUint(op, left.Address(), right.Address())

	case lp != rp:
		return ev.ctx.Fail("cannot compare pointer with non-pointer")

	default:
		ct := ctype.CommonType(left.Typ.Primitive, right.Typ.Primitive)

		switch {
		case ctype.IsFloating(ct):
			result = compareFloat(op, left.Float64(), right.Float64())
		case ctype.IsUnsigned(ct):
			result = compareUint(op, left.Uint64(), right.Uint64())
		default:
			result = compareInt(op, left.Int64(), right.Int64())
		}
	}

	return boolValue(result)
}

// evalLogical implements &&/||; per spec.md §9, neither short-circuits —
// both operands are always evaluated by evalBinary before this is
// called, so this only combines the already-computed truthiness.
func (ev *Evaluator) evalLogical(op ast.BinaryOp, left, right value.Value) value.Value {
	if left.Typ.IsVoid() || right.Typ.IsVoid() {
		return ev.ctx.Fail("logical operators require non-void operands")
	}

	if op == ast.OpLAnd {
		return boolValue(left.IsTruthy() && right.IsTruthy())
	}

	return boolValue(left.IsTruthy() || right.IsTruthy())
}

func compareInt(op ast.BinaryOp, a, b int64) bool {
	switch op {
	case ast.OpLT:
		return a < b
	case ast.OpLE:
		return a <= b
	case ast.OpGT:
		return a > b
	case ast.OpGE:
		return a >= b
	case ast.OpEq:
		return a == b
	default:
		return a != b
	}
}

func compareUint(op ast.BinaryOp, a, b uint64) bool {
	switch op {
	case ast.OpLT:
		return a < b
	case ast.OpLE:
		return a <= b
	case ast.OpGT:
		return a > b
	case ast.OpGE:
		return a >= b
	case ast.OpEq:
		return a == b
	default:
		return a != b
	}
}

func compareFloat(op ast.BinaryOp, a, b float64) bool {
	switch op {
	case ast.OpLT:
		return a < b
	case ast.OpLE:
		return a <= b
	case ast.OpGT:
		return a > b
	case ast.OpGE:
		return a >= b
	case ast.OpEq:
		return a == b
	default:
		return a != b
	}
}
