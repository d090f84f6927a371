package value

import (
	"strconv"

	"github.com/nilsen/cinterp/internal/ctype"
)

// Value is a typed runtime scalar: a ctype.Type plus a payload that the
// Type alone determines how to interpret (see package doc). Value is
// small and copied by value throughout the evaluator — no Expression
// ever holds a pointer to one stored elsewhere, matching the spec's "no
// Expression references a ValueExpression stored elsewhere" invariant.
type Value struct {
	Typ  ctype.Type
	ival uint64  // raw bits for integer and pointer payloads, masked to width
	fval float64 // float/double payload (Float narrowed to float32 precision)
}

// Void is the sentinel "evaluation produced no value" Value: type
// {void, 0}. probablyError-style checks should use Value.IsVoid.
func Void() Value {
	return Value{Typ: ctype.Value(ctype.Void)}
}

// IsVoid reports whether v is the void sentinel.
func (v Value) IsVoid() bool {
	return v.Typ.IsVoid()
}

// FromInt builds a Value of an integer or pointer-indirection-0 integer
// type from a signed 64-bit source, masking to the type's width.
func FromInt(t ctype.Type, v int64) Value {
	return Value{Typ: t, ival: maskTo(uint64(v), t.PayloadSize())}
}

// FromUint builds an integer Value from an unsigned 64-bit source.
func FromUint(t ctype.Type, v uint64) Value {
	return Value{Typ: t, ival: maskTo(v, t.PayloadSize())}
}

// FromFloat builds a float or double Value, narrowing to float32
// precision first when t's primitive is Float.
func FromFloat(t ctype.Type, f float64) Value {
	if t.Primitive == ctype.Float {
		f = float64(float32(f))
	}

	return Value{Typ: t, fval: f}
}

// FromAddress builds a pointer Value from a raw address. t must satisfy
// t.IsPointer().
func FromAddress(t ctype.Type, addr uint64) Value {
	return Value{Typ: t, ival: addr}
}

func (v Value) isFloating() bool {
	return ctype.IsFloating(v.Typ.Primitive)
}

// signed reports whether v's integer payload should be sign-extended.
// Pointers and floating types are never "signed" in this sense.
func (v Value) signed() bool {
	return !v.Typ.IsPointer() && ctype.IsInteger(v.Typ.Primitive) && !ctype.IsUnsigned(v.Typ.Primitive)
}

// Int64 returns v's numeric value as a signed 64-bit integer, truncating
// toward zero if v is floating point.
func (v Value) Int64() int64 {
	if v.isFloating() {
		return int64(v.fval)
	}
	if v.signed() {
		return signExtend(v.ival, v.Typ.PayloadSize())
	}

	return int64(v.ival)
}

// Uint64 returns v's numeric value as an unsigned 64-bit integer.
func (v Value) Uint64() uint64 {
	if v.isFloating() {
		return uint64(int64(v.fval))
	}

	return v.ival
}

// Float64 returns v's numeric value widened to float64.
func (v Value) Float64() float64 {
	if v.isFloating() {
		return v.fval
	}
	if v.signed() {
		return float64(v.Int64())
	}

	return float64(v.ival)
}

// Address returns v's raw pointer payload. Meaningful only when
// v.Typ.IsPointer().
func (v Value) Address() uint64 {
	return v.ival
}

// IsTruthy implements the evaluator's notion of C truthiness: value != 0.
func (v Value) IsTruthy() bool {
	if v.isFloating() {
		return v.fval != 0
	}

	return v.ival != 0
}

// String renders v the way the driver's print directive does: pointer
// values in hex, scalars in a kind-appropriate format (integer decimal,
// float/double via Go's shortest round-trip form).
func (v Value) String() string {
	if v.Typ.IsPointer() {
		return "0x" + strconv.FormatUint(v.ival, 16)
	}

	switch {
	case v.isFloating():
		return strconv.FormatFloat(v.fval, 'g', -1, 64)
	case v.signed():
		return strconv.FormatInt(v.Int64(), 10)
	default:
		return strconv.FormatUint(v.Uint64(), 10)
	}
}

func maskTo(raw uint64, widthBytes int) uint64 {
	if widthBytes <= 0 || widthBytes >= 8 {
		return raw
	}
	bits := uint(widthBytes * 8)

	return raw & (uint64(1)<<bits - 1)
}

func signExtend(raw uint64, widthBytes int) int64 {
	if widthBytes <= 0 || widthBytes >= 8 {
		return int64(raw)
	}
	shift := 64 - uint(widthBytes*8)

	return int64(raw<<shift) >> shift
}
