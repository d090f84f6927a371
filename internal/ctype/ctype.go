package ctype

import "fmt"

// Primitive is the closed enumeration of scalar kinds the dialect
// supports. The declaration order is load-bearing: CommonType promotes
// to whichever tag sorts later, which is a deliberate simplification of
// C's usual arithmetic conversion (see package doc).
type Primitive byte

const (
	Void Primitive = iota
	Char
	UChar
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Float
	Double
)

// primitiveNames mirrors the lexer's tokenNames map idiom: a single
// lookup table backing the Stringer implementation.
var primitiveNames = map[Primitive]string{
	Void:      "void",
	Char:      "char",
	UChar:     "unsigned char",
	Short:     "short",
	UShort:    "unsigned short",
	Int:       "int",
	UInt:      "unsigned int",
	Long:      "long",
	ULong:     "unsigned long",
	LongLong:  "long long",
	ULongLong: "unsigned long long",
	Float:     "float",
	Double:    "double",
}

func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Primitive(%d)", byte(p))
}

// AddressSize is the width, in bytes, of a pointer value. Used both as
// the payload width for indirection>=1 values and as the element factor
// for pointer arithmetic when indirection>=2 (see Type.ElementFactor).
const AddressSize = 8

// sizeofTable gives the storage size in bytes of each primitive value
// representation. Void has no storage; indexing it is a caller bug.
var sizeofTable = map[Primitive]int{
	Char:      1,
	UChar:     1,
	Short:     2,
	UShort:    2,
	Int:       4,
	UInt:      4,
	Long:      8,
	ULong:     8,
	LongLong:  8,
	ULongLong: 8,
	Float:     4,
	Double:    8,
}

// Sizeof returns the storage width of a primitive's value representation.
// Returns 0 for Void, which has no representation.
func Sizeof(p Primitive) int {
	return sizeofTable[p]
}

// IsInteger reports whether p is one of the ten integer primitives.
func IsInteger(p Primitive) bool {
	return p >= Char && p <= ULongLong
}

// IsUnsigned reports whether p is an unsigned integer primitive.
func IsUnsigned(p Primitive) bool {
	switch p {
	case UChar, UShort, UInt, ULong, ULongLong:
		return true
	default:
		return false
	}
}

// IsFloating reports whether p is float or double.
func IsFloating(p Primitive) bool {
	return p == Float || p == Double
}

// Type is a primitive tag together with a pointer indirection level.
// Indirection 0 means a value of Primitive; indirection N>=1 means a
// pointer whose pointee has indirection N-1 of the same Primitive.
type Type struct {
	Primitive   Primitive
	Indirection int
}

// Value constructs a non-pointer Type.
func Value(p Primitive) Type { return Type{Primitive: p, Indirection: 0} }

// Pointer constructs a Type one indirection level deeper than pointee.
func Pointer(pointee Type) Type {
	return Type{Primitive: pointee.Primitive, Indirection: pointee.Indirection + 1}
}

// Deref returns the type one indirection level shallower than t.
// Callers must have already checked t.IsPointer().
func (t Type) Deref() Type {
	return Type{Primitive: t.Primitive, Indirection: t.Indirection - 1}
}

// IsPointer reports whether t has indirection >= 1.
func (t Type) IsPointer() bool { return t.Indirection > 0 }

// IsVoid reports whether t is the bare void value type (the sentinel
// "no value" type — void* is a legal pointer type and is not void here).
func (t Type) IsVoid() bool { return t.Primitive == Void && t.Indirection == 0 }

// Equal reports whether t and o name the same type.
func (t Type) Equal(o Type) bool {
	return t.Primitive == o.Primitive && t.Indirection == o.Indirection
}

// PayloadSize returns the width of the storage cell a value of this type
// occupies: AddressSize for any pointer, Sizeof(Primitive) otherwise.
func (t Type) PayloadSize() int {
	if t.IsPointer() {
		return AddressSize
	}

	return Sizeof(t.Primitive)
}

// ElementFactor returns the pointer-arithmetic scaling factor for a
// pointer type: the pointee's size when indirection == 1 (a pointer to
// a scalar), else AddressSize (a pointer to a pointer, which always
// steps by one address width regardless of what it ultimately points
// to). t must satisfy t.IsPointer().
func (t Type) ElementFactor() int {
	if t.Indirection == 1 {
		return Sizeof(t.Primitive)
	}

	return AddressSize
}

func (t Type) String() string {
	stars := ""
	for range t.Indirection {
		stars += "*"
	}

	if stars == "" {
		return t.Primitive.String()
	}

	return t.Primitive.String() + stars
}

// CommonType implements commonType(t1, t2) from the spec: the maximum
// of the two primitive tags in enumeration order, with indirection 0.
// This is only meaningful for non-pointer operands; pointer-involving
// arithmetic is handled separately by the evaluator before CommonType is
// ever consulted.
func CommonType(a, b Primitive) Primitive {
	if a > b {
		return a
	}

	return b
}
