package eval

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/value"
)

// evalAssign implements plain and compound assignment (spec.md §4.3.3).
// Compound forms are rewritten as "LHS = (*lvalue(LHS)) op RHS" and
// re-dispatched through the same cast/bounds-check/store path as plain
// assignment, per the spec; the lvalue is computed exactly once either
// way, satisfying the "up to one evaluation of each operand" equivalence
// property (spec.md §8).
func (ev *Evaluator) evalAssign(e *ast.AssignExpr) (value.Value, bool) {
	if e.Op != ast.OpAssign {
		return ev.evalCompoundAssign(e)
	}

	rhs, c1 := ev.evalExpr(e.RHS)
	if ev.ctx.HasError() {
		return value.Void(), c1
	}

	ptr, c2 := ev.getLValuePtr(e.LHS)
	changed := c1 || c2
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	return ev.storeThrough(ptr, rhs, changed)
}

func (ev *Evaluator) evalCompoundAssign(e *ast.AssignExpr) (value.Value, bool) {
	ptr, changed := ev.getLValuePtr(e.LHS)
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	pointee := ptr.Typ.Deref()

	current, ok := ev.ctx.LoadValue(ptr.Address(), pointee)
	if !ok {
		return ev.ctx.Fail("out-of-bounds access"), changed
	}

	rhs, c2 := ev.evalExpr(e.RHS)
	changed = changed || c2
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	combined := ev.applyBinary(e.Op.BaseOp(), current, rhs)
	if ev.ctx.HasError() {
		return value.Void(), changed
	}

	return ev.storeThrough(ptr, combined, changed)
}

// storeThrough casts rhs to ptr's pointee type, bounds-checks, stores,
// and returns the stored (possibly truncated) value.
func (ev *Evaluator) storeThrough(ptr, rhs value.Value, changed bool) (value.Value, bool) {
	pointee := ptr.Typ.Deref()

	casted := value.CastTo(pointee, rhs)
	if casted.IsVoid() && !pointee.IsVoid() {
		return ev.ctx.Fail("cannot convert assigned value to %s", pointee), changed
	}

	if !ev.ctx.StoreValue(ptr.Address(), casted) {
		return ev.ctx.Fail("out-of-bounds write"), changed
	}

	return casted, true
}
