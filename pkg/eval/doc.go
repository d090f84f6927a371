// Package eval implements the tree-walking evaluator described in
// spec.md §4.3: value conversions and usual-arithmetic-conversion
// (internal/ctype.CommonType), lvalue computation, memory-region
// bounds-checked indirect access, and compound-assignment desugaring.
//
// Evaluator methods operate against an internal/value.Context, which
// owns variable bindings and the memory-region registry; the evaluator
// itself is stateless across statements beyond that Context. Every
// expression-evaluating method returns a "changed" bool alongside its
// value.Value, mirroring the spec's per-entry-point changesAnyLValue
// flag that the driver uses to decide whether to echo a statement.
package eval
