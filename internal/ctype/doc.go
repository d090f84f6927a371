// Package ctype defines the primitive type system of the interpreted
// C dialect: the closed enumeration of scalar kinds, the pointer
// indirection wrapper around it, and the conversion rules the evaluator
// uses to reconcile two operand types into one ("usual arithmetic
// conversion", coarsely approximated).
//
// A Type is a Primitive tag paired with an indirection level: level 0 is
// a value of that primitive, level N>=1 is an N-star pointer to a value
// one indirection level lower. The enumeration order of Primitive is
// itself meaningful — CommonType picks the larger of two tags in
// declaration order, which approximates (but does not fully model) C's
// integer promotion and usual arithmetic conversion rules.
package ctype
