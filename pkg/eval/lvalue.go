package eval

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/ctype"
	"github.com/nilsen/cinterp/internal/value"
)

// getLValuePtr implements spec.md §4.3.2: it returns a pointer-typed
// Value whose address equals the storage of expr, for the three
// lvalue-shaped expression forms. Any other shape is "not an lvalue".
func (ev *Evaluator) getLValuePtr(expr ast.Expr) (value.Value, bool) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		v, ok := ev.ctx.LookupVariable(e.Name)
		if !ok {
			return ev.ctx.Fail("undeclared variable %q", e.Name), false
		}

		return value.FromAddress(ctype.Pointer(v.Typ), v.Addr), false

	case *ast.UnaryExpr:
		if e.Op != ast.OpDeref {
			return ev.ctx.Fail("expression is not an lvalue"), false
		}

		ptr, changed := ev.evalExpr(e.Operand)
		if ev.ctx.HasError() {
			return value.Void(), changed
		}
		if !ptr.Typ.IsPointer() {
			return ev.ctx.Fail("cannot dereference a non-pointer value"), changed
		}

		return ptr, changed

	case *ast.BinaryExpr:
		if e.Op != ast.OpSubscript {
			return ev.ctx.Fail("expression is not an lvalue"), false
		}

		return ev.subscriptLValue(e)

	default:
		return ev.ctx.Fail("expression is not an lvalue"), false
	}
}

// subscriptLValue implements "base[index]" as "base + index*elementFactor"
// with indirection unchanged: still a pointer to the element type.
func (ev *Evaluator) subscriptLValue(e *ast.BinaryExpr) (value.Value, bool) {
	base, c1 := ev.evalExpr(e.Left)
	if ev.ctx.HasError() {
		return value.Void(), c1
	}
	if !base.Typ.IsPointer() {
		return ev.ctx.Fail("subscript requires a pointer base"), c1
	}

	index, c2 := ev.evalExpr(e.Right)
	changed := c1 || c2
	if ev.ctx.HasError() {
		return value.Void(), changed
	}
	if index.Typ.IsPointer() || ctype.IsFloating(index.Typ.Primitive) {
		return ev.ctx.Fail("subscript index must be a non-pointer, non-floating value"), changed
	}

	offset := index.Int64() * int64(base.Typ.ElementFactor())
	addr := uint64(int64(base.Address()) + offset)

	return value.FromAddress(base.Typ, addr), changed
}
