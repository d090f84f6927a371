package eval

import (
	"github.com/nilsen/cinterp/internal/ast"
	"github.com/nilsen/cinterp/internal/logging"
	"github.com/nilsen/cinterp/internal/value"
)

// Evaluator walks Statement and Expr trees against a shared Context.
type Evaluator struct {
	ctx *value.Context
}

// New creates an Evaluator bound to ctx.
func New(ctx *value.Context) *Evaluator {
	return &Evaluator{ctx: ctx}
}

// Result is the outcome of evaluating one Statement.
type Result struct {
	// Changed reports whether the statement modified any lvalue,
	// including any declaration (spec.md §4.3's changesAnyLValue flag,
	// consumed by the driver to decide whether to echo the statement).
	Changed bool
	// PrintLine is non-empty only for a Print statement that evaluated
	// without error.
	PrintLine string
}

// EvalStatement clears the sticky evaluation-error flag, evaluates stmt,
// and reports the result. A non-nil error here is always an allocation
// failure (value.IsAllocationError), which is fatal to the whole run
// (spec.md §7 item 3); an ordinary dynamic violation is instead recorded
// on the Context's error flag and observed by the caller via HasError.
func (ev *Evaluator) EvalStatement(stmt ast.Statement) (Result, error) {
	ev.ctx.ClearError()

	switch s := stmt.(type) {
	case *ast.DeclStatement:
		if err := ev.evalDecl(s); err != nil {
			return Result{}, err
		}

		return Result{Changed: true}, nil

	case *ast.ExpressionStatement:
		_, changed := ev.evalExpr(s.Expr)

		return Result{Changed: changed}, nil

	case *ast.PrintStatement:
		v, changed := ev.evalExpr(s.Expr)
		if ev.ctx.HasError() {
			return Result{Changed: changed}, nil
		}

		return Result{Changed: changed, PrintLine: formatPrint(v)}, nil

	default:
		logging.Warnf("eval: unreachable statement kind %T", stmt)
		ev.ctx.Fail("unknown statement kind %T", stmt)

		return Result{}, nil
	}
}

// formatPrint renders a Value the way the driver's print directive
// requires (spec.md §6): "--print-- Value: (<type>[*…]) <payload>".
func formatPrint(v value.Value) string {
	return "--print-- Value: (" + v.Typ.String() + ") " + v.String()
}

// evalExpr is the expression dispatcher. It returns the computed value
// and whether evaluating expr stored into any lvalue.
func (ev *Evaluator) evalExpr(expr ast.Expr) (value.Value, bool) {
	switch e := expr.(type) {
	case *ast.ValueExpr:
		return e.Val, false

	case *ast.VariableExpr:
		return ev.evalVariable(e), false

	case *ast.UnaryExpr:
		return ev.evalUnary(e)

	case *ast.BinaryExpr:
		return ev.evalBinary(e)

	case *ast.AssignExpr:
		return ev.evalAssign(e)

	case *ast.CastExpr:
		operand, changed := ev.evalExpr(e.Operand)
		if ev.ctx.HasError() {
			return value.Void(), changed
		}

		casted := value.CastTo(e.Target, operand)
		if casted.IsVoid() && !e.Target.IsVoid() {
			return ev.ctx.Fail("cannot cast %s to %s", operand.Typ, e.Target), changed
		}

		return casted, changed

	case *ast.CommaExpr:
		return ev.evalComma(e)

	default:
		logging.Warnf("eval: unreachable expression kind %T", expr)

		return ev.ctx.Fail("unknown expression kind %T", expr), false
	}
}

func (ev *Evaluator) evalVariable(e *ast.VariableExpr) value.Value {
	v, ok := ev.ctx.LookupVariable(e.Name)
	if !ok {
		return ev.ctx.Fail("undeclared variable %q", e.Name)
	}

	loaded, ok := ev.ctx.LoadValue(v.Addr, v.Typ)
	if !ok {
		return ev.ctx.Fail("out-of-bounds read of variable %q", e.Name)
	}

	return loaded
}

// evalComma evaluates each item in order unconditionally, returning the
// last item's value (spec.md §4.2.3, §8 "comma selects last").
func (ev *Evaluator) evalComma(e *ast.CommaExpr) (value.Value, bool) {
	var last value.Value

	changed := false
	for _, item := range e.Items {
		v, c := ev.evalExpr(item)
		changed = changed || c
		last = v

		if ev.ctx.HasError() {
			return value.Void(), changed
		}
	}

	return last, changed
}
