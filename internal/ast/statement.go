package ast

import (
	"fmt"
	"strings"

	"github.com/nilsen/cinterp/internal/ctype"
)

// Statement is implemented by every statement node: Declaration,
// ExpressionStatement and Print (spec.md §3, "Statement").
type Statement interface {
	Node
	stmtNode()
	SourceText() string
	SetSourceText(string)
}

type baseStmt struct {
	baseNode
	source string
}

func (s *baseStmt) SourceText() string        { return s.source }
func (s *baseStmt) SetSourceText(text string) { s.source = text }

// DeclField is one field of a Declaration statement: a name, its
// indirection level (stars past the statement's shared primitive), and
// either a scalar initializer or an array size plus brace-enclosed
// initializer list. Up to MaxDeclFields fields share one primitive type
// per spec.md §3 ("Declarations hold up to 16 fields").
type DeclField struct {
	Name        string
	Indirection int

	IsArray      bool
	ArraySize    int  // 0 means "infer from ArrayInit length"
	HasArraySize bool // true if an explicit (possibly zero) size was written
	ArrayInit    []Expr
	ScalarInit   Expr // nil if uninitialized
}

// MaxDeclFields is the bound named in spec.md §6.
const MaxDeclFields = 16

// DeclStatement declares one or more variables sharing a primitive
// type.
type DeclStatement struct {
	baseStmt
	Primitive ctype.Primitive
	Fields    []DeclField
}

func (s *DeclStatement) stmtNode() {}
func (s *DeclStatement) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = declFieldString(f)
	}

	return fmt.Sprintf("%s %s;", s.Primitive, strings.Join(parts, ", "))
}

func declFieldString(f DeclField) string {
	stars := strings.Repeat("*", f.Indirection)
	switch {
	case f.IsArray:
		return fmt.Sprintf("%s%s[%d]", stars, f.Name, f.ArraySize)
	case f.ScalarInit != nil:
		return fmt.Sprintf("%s%s = %s", stars, f.Name, f.ScalarInit)
	default:
		return stars + f.Name
	}
}

// ExpressionStatement evaluates an expression and discards its value;
// only its side effects (if any) are observable.
type ExpressionStatement struct {
	baseStmt
	Expr Expr
}

func (s *ExpressionStatement) stmtNode()      {}
func (s *ExpressionStatement) String() string { return s.Expr.String() + ";" }

// PrintStatement evaluates an expression and emits a value line.
type PrintStatement struct {
	baseStmt
	Expr Expr
}

func (s *PrintStatement) stmtNode()      {}
func (s *PrintStatement) String() string { return "print " + s.Expr.String() + ";" }
