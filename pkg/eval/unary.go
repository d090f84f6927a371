package eval

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/ctype"
	"github.com/nilsen/cinterp/internal/logging"
	"github.com/nilsen/cinterp/internal/value"
)

func (ev *Evaluator) evalUnary(e *ast.UnaryExpr) (value.Value, bool) {
	switch e.Op {
	case ast.OpPreInc, ast.OpPreDec, ast.OpPostInc, ast.OpPostDec:
		return ev.evalIncDec(e)

	case ast.OpPos:
		return ev.evalExpr(e.Operand)

	case ast.OpNeg:
		v, changed := ev.evalExpr(e.Operand)
		if ev.ctx.HasError() {
			return value.Void(), changed
		}
		if v.Typ.IsPointer() || v.Typ.IsVoid() {
			return ev.ctx.Fail("unary '-' requires a scalar operand"), changed
		}

		return negate(v), changed

	case ast.OpNot:
		v, changed := ev.evalExpr(e.Operand)
		if ev.ctx.HasError() {
			return value.Void(), changed
		}
		if v.Typ.IsVoid() {
			return ev.ctx.Fail("'!' requires a non-void operand"), changed
		}

		return boolValue(!v.IsTruthy()), changed

	case ast.OpBitNot:
		v, changed := ev.evalExpr(e.Operand)
		if ev.ctx.HasError() {
			return value.Void(), changed
		}
		if v.Typ.IsPointer() || v.Typ.IsVoid() || ctype.IsFloating(v.Typ.Primitive) {
			return ev.ctx.Fail("'~' requires an integer operand"), changed
		}

		return value.FromUint(v.Typ, ^v.Uint64()), changed

	case ast.OpAddr:
		return ev.getLValuePtr(e.Operand)

	case ast.OpDeref:
		return ev.evalDeref(e.Operand)

	default:
		logging.Warnf("eval: unreachable unary operator %s", e.Op)

		return ev.ctx.Fail("unsupported unary operator %s", e.Op), false
	}
}

func (ev *Evaluator) evalDeref(operand ast.Expr) (value.Value, bool) {
	ptr, changed := ev.evalExpr(operand)
	if ev.ctx.HasError() {
		return value.Void(), changed
	}
	if !ptr.Typ.IsPointer() {
		return ev.ctx.Fail("cannot dereference a non-pointer value"), changed
	}

	loaded, ok := ev.ctx.LoadValue(ptr.Address(), ptr.Typ.Deref())
	if !ok {
		return ev.ctx.Fail("out-of-bounds read through pointer"), changed
	}

	return loaded, changed
}

// evalIncDec implements prefix/postfix ++/-- (spec.md §4.3.3): acquire
// the operand's lvalue, load the current value, step it by +-1 (scaled
// by elementFactor when the lvalue is a pointer), store it back, and
// return the post-value for prefix forms or the pre-value for postfix.
func (ev *Evaluator) evalIncDec(e *ast.UnaryExpr) (value.Value, bool) {
	ptr, changed := ev.getLValuePtr(e.Operand)
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	pointee := ptr.Typ.Deref()

	oldVal, ok := ev.ctx.LoadValue(ptr.Address(), pointee)
	if !ok {
		return ev.ctx.Fail("out-of-bounds access"), changed
	}

	delta := int64(1)
	if e.Op == ast.OpPreDec || e.Op == ast.OpPostDec {
		delta = -1
	}

	newVal := step(oldVal, delta)

	if !ev.ctx.StoreValue(ptr.Address(), newVal) {
		return ev.ctx.Fail("out-of-bounds write"), changed
	}

	if e.Op == ast.OpPreInc || e.Op == ast.OpPreDec {
		return newVal, true
	}

	return oldVal, true
}

// step advances v by delta, scaling by the pointer's elementFactor when
// v itself is a pointer value (e.g. a declared int* variable holding the
// address being incremented).
func step(v value.Value, delta int64) value.Value {
	switch {
	case v.Typ.IsPointer():
		scaled := delta * int64(v.Typ.ElementFactor())

		return value.FromAddress(v.Typ, uint64(int64(v.Address())+scaled))
	case ctype.IsFloating(v.Typ.Primitive):
		return value.FromFloat(v.Typ, v.Float64()+float64(delta))
	default:
		return value.FromInt(v.Typ, v.Int64()+delta)
	}
}

func negate(v value.Value) value.Value {
	if ctype.IsFloating(v.Typ.Primitive) {
		return value.FromFloat(v.Typ, -v.Float64())
	}

	return value.FromInt(v.Typ, -v.Int64())
}

// boolValue yields the int-tagged 0/1 result spec.md §4.3.3 requires for
// '!' and the comparison/logical operators.
func boolValue(b bool) value.Value {
	if b {
		return value.FromInt(ctype.Value(ctype.Int), 1)
	}

	return value.FromInt(ctype.Value(ctype.Int), 0)
}
