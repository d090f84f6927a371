// Package value implements the runtime value representation and the
// execution Context of the C-dialect evaluator.
//
// A Value pairs a ctype.Type with a raw payload: integer and pointer
// payloads are kept as masked-to-width bit patterns in a uint64, float
// and double payloads are kept in a float64 (narrowed to float32
// precision when the type is Float). Which field is authoritative is
// always determined by the Value's Type, matching the tagged-union
// payload the spec describes — Go has no native union, so this package
// picks the representation that makes the width-truncating and
// sign-extending conversions (CastTo) straightforward bit arithmetic
// instead of a 12-armed type switch.
//
// Context owns the interpreter's address space: a single growable byte
// arena (Memory) that variable cells and array buffers are carved out
// of, plus a registry of the regions carved out of it. Every lvalue the
// evaluator computes is an address into this arena, and every indirect
// load or store is checked against the region registry before touching
// the arena — not just checked against the arena's overall length, since
// a pointer can be in-bounds for the arena as a whole while still
// stepping outside the one variable or array it was derived from.
package value
