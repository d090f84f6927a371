package value

import "github.com/nilsen/cinterp/internal/ctype"

// CastTo implements castTo(target, source) from the spec:
//
//   - pointer -> pointer: reinterpret the address bits; new type = target.
//   - integer -> pointer: reject (return Void) if source is void, float or
//     double; otherwise sign-extend/truncate the source's integer value to
//     an address-sized payload under the target pointer type.
//   - anything -> value: take the numeric payload of the source (through
//     its signed/unsigned/float accessor as appropriate) and assign it to
//     the target's representation, truncating or widening to the target's
//     width.
//
// Failures yield the void sentinel rather than an error, matching the
// spec's evaluator-level error model (the caller observes Value.IsVoid
// and is responsible for setting the evaluation error flag).
func CastTo(target ctype.Type, src Value) Value {
	if target.IsPointer() {
		return castToPointer(target, src)
	}

	return castToScalar(target, src)
}

func castToPointer(target ctype.Type, src Value) Value {
	if src.Typ.IsPointer() {
		return Value{Typ: target, ival: src.ival}
	}

	if src.Typ.Primitive == ctype.Void || ctype.IsFloating(src.Typ.Primitive) {
		return Void()
	}

	var addr uint64
	if src.signed() {
		addr = uint64(signExtend(src.ival, src.Typ.PayloadSize()))
	} else {
		addr = src.ival
	}

	return Value{Typ: target, ival: addr}
}

func castToScalar(target ctype.Type, src Value) Value {
	if ctype.IsFloating(target.Primitive) {
		return FromFloat(target, numericFloat(src))
	}

	var raw uint64
	switch {
	case src.Typ.IsPointer():
		raw = src.ival
	case src.isFloating():
		raw = uint64(int64(src.fval))
	case src.signed():
		raw = uint64(signExtend(src.ival, src.Typ.PayloadSize()))
	default:
		raw = src.ival
	}

	return Value{Typ: target, ival: maskTo(raw, target.PayloadSize())}
}

func numericFloat(src Value) float64 {
	switch {
	case src.Typ.IsPointer():
		return float64(src.ival)
	case src.isFloating():
		return src.fval
	case src.signed():
		return float64(signExtend(src.ival, src.Typ.PayloadSize()))
	default:
		return float64(src.ival)
	}
}
