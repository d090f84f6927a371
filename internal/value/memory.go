package value

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/nilsen/cinterp/internal/ctype"
)

// AllocationError marks a failure to acquire memory for a declaration.
// The driver maps this kind of error to exit code 2, distinct from a
// parse error (1) or an ordinary evaluation error (which halts the
// program but exits 0, per spec.md §4.4/§7).
type AllocationError struct {
	cause error
}

func (e *AllocationError) Error() string { return e.cause.Error() }
func (e *AllocationError) Unwrap() error { return e.cause }

func newAllocationError(format string, args ...interface{}) error {
	return &AllocationError{cause: errors.Errorf(format, args...)}
}

// IsAllocationError reports whether err is (or wraps) an AllocationError.
func IsAllocationError(err error) bool {
	var ae *AllocationError

	return errors.As(err, &ae)
}

// MaxAllocBytes bounds a single declaration's backing allocation. The
// original C source has no such bound (malloc simply fails under
// memory pressure); Go's allocator does not expose a recoverable
// allocation-failure signal, so this repo models the original's
// MALLOC_ERROR path by rejecting declarations that would need an
// unreasonably large or negative buffer. Overridable via internal/config.
var MaxAllocBytes = 64 << 20

// Region is a half-open interval [Start, Start+Size) of addresses that
// the evaluator will honor for indirect reads and writes.
type Region struct {
	Start uint64
	Size  int
}

func (r Region) end() uint64 { return r.Start + uint64(r.Size) }

func (r Region) covers(addr uint64, size int) bool {
	return addr >= r.Start && addr+uint64(size) <= r.end()
}

// Memory is the interpreter's single address space: a growable byte
// arena that variable cells and array buffers are carved out of.
// Addresses are plain offsets into this arena, which gives every
// declared variable and array element a stable integer "address" for
// the lifetime of the Context, matching the spec's lvalue-stability
// invariant without needing unsafe.Pointer tricks.
type Memory struct {
	bytes []byte
}

// nullGuardBytes reserves address 0 (and a few bytes past it) so that a
// zero-initialized ("null") pointer never accidentally aliases a real
// variable's cell — the first real allocation starts at offset
// nullGuardBytes, and no region is ever registered over [0, nullGuardBytes),
// so dereferencing an uninitialized pointer always fails the bounds check
// (spec.md §8 scenario 6).
const nullGuardBytes = 8

func newMemory() *Memory {
	return &Memory{bytes: make([]byte, nullGuardBytes, 256)}
}

// alloc reserves and zero-fills n bytes, returning their start address.
// Returns an error wrapped as AllocationError if n is out of bounds.
func (m *Memory) alloc(n int) (uint64, error) {
	if n < 0 {
		return 0, newAllocationError("negative allocation size %d", n)
	}
	if n > MaxAllocBytes {
		return 0, newAllocationError("allocation of %d bytes exceeds limit of %d", n, MaxAllocBytes)
	}

	start := uint64(len(m.bytes))
	m.bytes = append(m.bytes, make([]byte, n)...)

	return start, nil
}

func (m *Memory) read(addr uint64, n int) ([]byte, bool) {
	if n < 0 || addr+uint64(n) > uint64(len(m.bytes)) || addr+uint64(n) < addr {
		return nil, false
	}

	return m.bytes[addr : addr+uint64(n)], true
}

func (m *Memory) write(addr uint64, data []byte) bool {
	dst, ok := m.read(addr, len(data))
	if !ok {
		return false
	}
	copy(dst, data)

	return true
}

// encode serializes v into its in-memory byte representation (little
// endian), sized according to v.Typ.PayloadSize().
func encode(v Value) []byte {
	size := v.Typ.PayloadSize()
	buf := make([]byte, size)

	switch {
	case v.Typ.IsPointer():
		binary.LittleEndian.PutUint64(buf, v.ival)
	case v.Typ.Primitive == ctype.Float:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v.fval)))
	case v.Typ.Primitive == ctype.Double:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v.fval))
	default:
		putUintWidth(buf, v.ival)
	}

	return buf
}

// decode interprets raw bytes as a Value of type t.
func decode(t ctype.Type, raw []byte) Value {
	switch {
	case t.IsPointer():
		return Value{Typ: t, ival: binary.LittleEndian.Uint64(pad8(raw))}
	case t.Primitive == ctype.Float:
		bits := binary.LittleEndian.Uint32(raw)

		return Value{Typ: t, fval: float64(math.Float32frombits(bits))}
	case t.Primitive == ctype.Double:
		bits := binary.LittleEndian.Uint64(raw)

		return Value{Typ: t, fval: math.Float64frombits(bits)}
	default:
		return Value{Typ: t, ival: getUintWidth(raw)}
	}
}

func putUintWidth(buf []byte, v uint64) {
	for i := range buf {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

func getUintWidth(raw []byte) uint64 {
	var v uint64
	for i, b := range raw {
		v |= uint64(b) << (8 * uint(i))
	}

	return v
}

func pad8(raw []byte) []byte {
	if len(raw) >= 8 {
		return raw
	}
	buf := make([]byte, 8)
	copy(buf, raw)

	return buf
}
