package parser

import (
	"testing"

	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/pkg/lexer"
)

func parseOneStatement(t *testing.T, src string) ast.Statement {
	t.Helper()

	p := New(lexer.New(src))
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}

	return stmt
}

func TestPrecedenceMultiplyBindsTighterThanAdd(t *testing.T) {
	stmt := parseOneStatement(t, "2 + 3 * 4;")

	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ExpressionStatement", stmt)
	}

	want := "(2 + (3 * 4))"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAssignmentIsRightAssociativeAndLoosest(t *testing.T) {
	stmt := parseOneStatement(t, "a = b + c;")

	es := stmt.(*ast.ExpressionStatement)
	want := "(a = (b + c))"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestChainedAssignmentIsRightAssociative(t *testing.T) {
	stmt := parseOneStatement(t, "a = b = c;")

	es := stmt.(*ast.ExpressionStatement)
	want := "(a = (b = c))"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnaryPrefixNestingAppliesLIFO(t *testing.T) {
	stmt := parseOneStatement(t, "- + x;")

	es := stmt.(*ast.ExpressionStatement)
	want := "(-(+x))"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPostfixBindsBeforePrefix(t *testing.T) {
	stmt := parseOneStatement(t, "-x++;")

	es := stmt.(*ast.ExpressionStatement)
	want := "(-(x++))"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCastBindsAsPrefix(t *testing.T) {
	stmt := parseOneStatement(t, "(int)x;")

	es := stmt.(*ast.ExpressionStatement)
	want := "(int)x"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParenthesizedExpressionIsNotACast(t *testing.T) {
	stmt := parseOneStatement(t, "(a + b) * c;")

	es := stmt.(*ast.ExpressionStatement)
	want := "((a + b) * c)"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSubscriptBindsTighterThanUnary(t *testing.T) {
	stmt := parseOneStatement(t, "*a[0];")

	es := stmt.(*ast.ExpressionStatement)
	want := "(*a[0])"
	if got := es.Expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCommaOperatorProducesCommaNode(t *testing.T) {
	stmt := parseOneStatement(t, "print a, b, a+b;")

	ps, ok := stmt.(*ast.PrintStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.PrintStatement", stmt)
	}

	comma, ok := ps.Expr.(*ast.CommaExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.CommaExpr", ps.Expr)
	}

	if len(comma.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(comma.Items))
	}
}

func TestCompoundAssignmentKeptUndesugaredByParser(t *testing.T) {
	stmt := parseOneStatement(t, "x += 3;")

	es := stmt.(*ast.ExpressionStatement)
	assign, ok := es.Expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.AssignExpr", es.Expr)
	}

	if assign.Op != ast.OpAddAssign {
		t.Fatalf("op = %s, want +=", assign.Op)
	}
}

func TestDeclarationWithPointerFieldAndAddressInit(t *testing.T) {
	stmt := parseOneStatement(t, "int a, *b = &a;")

	decl, ok := stmt.(*ast.DeclStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.DeclStatement", stmt)
	}

	if len(decl.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(decl.Fields))
	}

	if decl.Fields[1].Indirection != 1 {
		t.Fatalf("second field indirection = %d, want 1", decl.Fields[1].Indirection)
	}

	if decl.Fields[1].ScalarInit == nil {
		t.Fatalf("second field has no initializer")
	}
}

func TestDeclarationArrayWithInferredSize(t *testing.T) {
	stmt := parseOneStatement(t, "int arr[] = {10, 20, 30};")

	decl := stmt.(*ast.DeclStatement)
	field := decl.Fields[0]
	if !field.IsArray || field.HasArraySize {
		t.Fatalf("field = %+v, want IsArray true, HasArraySize false", field)
	}

	if len(field.ArrayInit) != 3 {
		t.Fatalf("len(ArrayInit) = %d, want 3", len(field.ArrayInit))
	}
}

func TestLongLongUnsignedTypeCombination(t *testing.T) {
	stmt := parseOneStatement(t, "unsigned long long x;")

	decl := stmt.(*ast.DeclStatement)
	if decl.Primitive.String() != "unsigned long long" {
		t.Fatalf("primitive = %s, want unsigned long long", decl.Primitive)
	}
}

func TestContradictoryTypeSpecifiersIsParseError(t *testing.T) {
	p := New(lexer.New("char float x;"))
	if _, err := p.Parse(); err == nil {
		t.Fatalf("expected parse error for contradictory type specifiers")
	}
}

func TestDeclarationFieldLimitIsEnforced(t *testing.T) {
	src := "int "
	for i := 0; i < ast.MaxDeclFields+1; i++ {
		if i > 0 {
			src += ", "
		}
		src += "v" + string(rune('a'+i))
	}
	src += ";"

	p := New(lexer.New(src))
	if _, err := p.Parse(); err == nil {
		t.Fatalf("expected parse error for too many declared fields")
	}
}
