package value

import (
	"github.com/pkg/errors"

	"github.com/nilsen/cinterp/internal/ctype"
)

// Variable is a declared binding: a name, its declared type, and the
// address of its payload cell in the owning Context's Memory.
type Variable struct {
	Name string
	Typ  ctype.Type
	Addr uint64
}

// Context is the evaluator's execution state: variable bindings, the
// registry of readable/writable memory regions those bindings (and any
// array buffers) carved out of the backing Memory, and the sticky
// per-statement evaluation error flag.
//
// Context owns all addresses it hands out as lvalues; they remain valid
// for the lifetime of the Context (program run), matching the spec's "no
// scope nesting" execution model.
type Context struct {
	mem      *Memory
	byName   map[string]*Variable
	regions  []Region
	hasError bool
	errMsg   string
}

// NewContext creates an empty execution context with a fresh address
// space.
func NewContext() *Context {
	return &Context{
		mem:    newMemory(),
		byName: make(map[string]*Variable),
	}
}

// ClearError resets the sticky per-statement evaluation error flag.
// pkg/eval's EvalStatement calls this at the start of every statement.
func (c *Context) ClearError() {
	c.hasError = false
	c.errMsg = ""
}

// Fail sets the evaluation error flag with a diagnostic message and
// returns the void sentinel, so call sites can write
// `return ctx.Fail("...")` directly as an expression's result.
func (c *Context) Fail(format string, args ...interface{}) Value {
	c.hasError = true
	c.errMsg = errors.Errorf(format, args...).Error()

	return Void()
}

// HasError reports whether the evaluation error flag is set.
func (c *Context) HasError() bool { return c.hasError }

// ErrorMessage returns the diagnostic recorded by the most recent Fail
// call, or "" if the flag is not set.
func (c *Context) ErrorMessage() string { return c.errMsg }

// LookupVariable finds a declared variable by name. Duplicate
// declaration is itself rejected by DeclareVariable, so a name never
// has more than one live binding and a plain map lookup is sufficient.
func (c *Context) LookupVariable(name string) (Variable, bool) {
	v, ok := c.byName[name]
	if !ok {
		return Variable{}, false
	}

	return *v, true
}

// DeclareVariable registers a new scalar variable of type t, allocates
// its payload cell, registers the cell as a memory region, and stores
// init (which must already be of type t) into it. Duplicate names are
// rejected, matching the spec's "duplicate declaration is an error".
func (c *Context) DeclareVariable(name string, t ctype.Type, init Value) (Variable, error) {
	if _, exists := c.byName[name]; exists {
		return Variable{}, errors.Errorf("variable %q already declared", name)
	}

	addr, err := c.mem.alloc(t.PayloadSize())
	if err != nil {
		return Variable{}, err
	}
	c.RegisterRegion(addr, t.PayloadSize())

	v := &Variable{Name: name, Typ: t, Addr: addr}
	c.byName[name] = v

	if !c.StoreValue(addr, Value{Typ: t, ival: init.ival, fval: init.fval}) {
		return Variable{}, errors.Errorf("failed to initialize variable %q", name)
	}

	return *v, nil
}

// AllocArray reserves a contiguous buffer for count elements of
// elemType and registers it as a memory region, returning its base
// address.
func (c *Context) AllocArray(elemType ctype.Type, count int) (uint64, error) {
	if count < 0 {
		return 0, errors.Errorf("negative array size %d", count)
	}

	size := count * elemType.PayloadSize()

	addr, err := c.mem.alloc(size)
	if err != nil {
		return 0, err
	}
	c.RegisterRegion(addr, size)

	return addr, nil
}

// RegisterRegion adds [addr, addr+size) to the set of regions the
// evaluator will honor for indirect access.
func (c *Context) RegisterRegion(addr uint64, size int) {
	c.regions = append(c.regions, Region{Start: addr, Size: size})
}

// Covered reports whether [addr, addr+size) lies entirely within some
// registered region. A read or write that merely lies within the
// backing arena's overall length, but straddles or escapes the one
// region it was derived from, is NOT covered.
func (c *Context) Covered(addr uint64, size int) bool {
	for _, r := range c.regions {
		if r.covers(addr, size) {
			return true
		}
	}

	return false
}

// LoadValue performs a bounds-checked read of a value of type t at
// addr. ok is false if no registered region covers the read.
func (c *Context) LoadValue(addr uint64, t ctype.Type) (Value, bool) {
	size := t.PayloadSize()
	if !c.Covered(addr, size) {
		return Value{}, false
	}

	raw, ok := c.mem.read(addr, size)
	if !ok {
		return Value{}, false
	}

	return decode(t, raw), true
}

// StoreValue performs a bounds-checked write of v at addr, using v.Typ
// to determine the write width. Returns false if no registered region
// covers the write.
func (c *Context) StoreValue(addr uint64, v Value) bool {
	size := v.Typ.PayloadSize()
	if !c.Covered(addr, size) {
		return false
	}

	return c.mem.write(addr, encode(v))
}
