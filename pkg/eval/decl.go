package eval

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/ctype"
	"github.com/nilsen/cinterp/internal/value"
)

// evalDecl implements spec.md §4.3.4's Declaration statement. A non-nil
// return is always an allocation failure; ordinary violations (void
// field, duplicate name, excess initializers) are reported through
// ctx.Fail and stop processing further fields in this statement.
func (ev *Evaluator) evalDecl(s *ast.DeclStatement) error {
	for _, field := range s.Fields {
		t := ctype.Type{Primitive: s.Primitive, Indirection: field.Indirection}

		if t.IsVoid() {
			ev.ctx.Fail("cannot declare %q with type void", field.Name)

			return nil
		}

		var err error
		if field.IsArray {
			err = ev.declareArray(field, t)
		} else {
			err = ev.declareScalar(field, t)
		}
		if err != nil {
			return err
		}

		if ev.ctx.HasError() {
			return nil
		}
	}

	return nil
}

func (ev *Evaluator) declareScalar(field ast.DeclField, t ctype.Type) error {
	init := zeroValue(t)

	if field.ScalarInit != nil {
		v, _ := ev.evalExpr(field.ScalarInit)
		if ev.ctx.HasError() {
			return nil
		}

		init = value.CastTo(t, v)
		if init.IsVoid() && !t.IsVoid() {
			ev.ctx.Fail("cannot convert initializer to %s for %q", t, field.Name)

			return nil
		}
	}

	if _, err := ev.ctx.DeclareVariable(field.Name, t, init); err != nil {
		if value.IsAllocationError(err) {
			return err
		}

		ev.ctx.Fail(err.Error())
	}

	return nil
}

// declareArray allocates the backing buffer, writes each initializer
// into it, and binds field.Name to a pointer-typed variable holding the
// buffer's base address — the array-to-pointer decay C uses whenever an
// array name is referenced as a value (spec.md §3, §4.3.4).
func (ev *Evaluator) declareArray(field ast.DeclField, elemType ctype.Type) error {
	size := field.ArraySize
	if !field.HasArraySize || size == 0 {
		size = len(field.ArrayInit)
	}

	if len(field.ArrayInit) > size {
		ev.ctx.Fail("too many initializers for array %q", field.Name)

		return nil
	}

	addr, err := ev.ctx.AllocArray(elemType, size)
	if err != nil {
		if value.IsAllocationError(err) {
			return err
		}

		ev.ctx.Fail(err.Error())

		return nil
	}

	elemSize := uint64(elemType.PayloadSize())
	for i, initExpr := range field.ArrayInit {
		v, _ := ev.evalExpr(initExpr)
		if ev.ctx.HasError() {
			return nil
		}

		casted := value.CastTo(elemType, v)
		if casted.IsVoid() && !elemType.IsVoid() {
			ev.ctx.Fail("cannot convert array initializer %d for %q", i, field.Name)

			return nil
		}

		if !ev.ctx.StoreValue(addr+uint64(i)*elemSize, casted) {
			ev.ctx.Fail("out-of-bounds write initializing %q[%d]", field.Name, i)

			return nil
		}
	}

	ptrType := ctype.Pointer(elemType)
	if _, err := ev.ctx.DeclareVariable(field.Name, ptrType, value.FromAddress(ptrType, addr)); err != nil {
		if value.IsAllocationError(err) {
			return err
		}

		ev.ctx.Fail(err.Error())
	}

	return nil
}

func zeroValue(t ctype.Type) value.Value {
	if !t.IsPointer() && ctype.IsFloating(t.Primitive) {
		return value.FromFloat(t, 0)
	}

	return value.FromInt(t, 0)
}
