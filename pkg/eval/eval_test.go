package eval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsen/cinterp/internal/value"
	"github.com/nilsen/cinterp/pkg/eval"
	"github.com/nilsen/cinterp/pkg/lexer"
	"github.com/nilsen/cinterp/pkg/parser"
)

// runProgram splits src on ';' the way the driver does, parsing and
// evaluating each statement in turn against a single shared Context. It
// stops at the first evaluation error, matching spec.md §4.4.
func runProgram(t *testing.T, ctx *value.Context, src string) []eval.Result {
	t.Helper()

	ev := eval.New(ctx)

	var results []eval.Result
	for _, chunk := range splitStatements(src) {
		p := parser.New(lexer.New(chunk + ";"))
		stmt, err := p.Parse()
		require.NoError(t, err, "parse %q", chunk)

		res, err := ev.EvalStatement(stmt)
		require.False(t, value.IsAllocationError(err), "unexpected allocation failure on %q", chunk)
		results = append(results, res)

		if ctx.HasError() {
			break
		}
	}

	return results
}

func splitStatements(src string) []string {
	var out []string
	for _, part := range strings.Split(src, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

func TestScenarioConstantFolding(t *testing.T) {
	ctx := value.NewContext()
	results := runProgram(t, ctx, "int a = 2 + 3 * 4; print a;")

	require.False(t, ctx.HasError())
	require.Len(t, results, 2)
	assert.Equal(t, "--print-- Value: (int) 14", results[1].PrintLine)

	v, ok := ctx.LookupVariable("a")
	require.True(t, ok)
	val, ok := ctx.LoadValue(v.Addr, v.Typ)
	require.True(t, ok)
	assert.Equal(t, int64(14), val.Int64())
}

func TestScenarioCompoundAssignmentChain(t *testing.T) {
	ctx := value.NewContext()
	results := runProgram(t, ctx, "int x = 5; x += 3; x *= 2; print x;")

	require.False(t, ctx.HasError())
	require.Len(t, results, 4)
	assert.True(t, results[0].Changed)
	assert.True(t, results[1].Changed)
	assert.True(t, results[2].Changed)
	assert.Equal(t, "--print-- Value: (int) 16", results[3].PrintLine)
}

func TestScenarioArrayPointerAliasing(t *testing.T) {
	ctx := value.NewContext()
	results := runProgram(t, ctx,
		"int arr[] = {10, 20, 30}; int* p = arr; print p[2]; p[1] = 99; print arr[1];")

	require.False(t, ctx.HasError())
	require.Len(t, results, 5)
	assert.Equal(t, "--print-- Value: (int) 30", results[2].PrintLine)
	assert.Equal(t, "--print-- Value: (int) 99", results[4].PrintLine)
}

func TestScenarioCommaSelectsLast(t *testing.T) {
	ctx := value.NewContext()
	results := runProgram(t, ctx, "int a = 1; int b = 2; print a, b, a+b;")

	require.False(t, ctx.HasError())
	require.Len(t, results, 3)
	assert.Equal(t, "--print-- Value: (int) 3", results[2].PrintLine)
}

func TestScenarioPostIncrementReturnsPreValue(t *testing.T) {
	ctx := value.NewContext()
	runProgram(t, ctx, "int i = 0; int j = i++;")

	require.False(t, ctx.HasError())

	iv, _ := ctx.LookupVariable("i")
	ival, _ := ctx.LoadValue(iv.Addr, iv.Typ)
	assert.Equal(t, int64(1), ival.Int64())

	jv, _ := ctx.LookupVariable("j")
	jval, _ := ctx.LoadValue(jv.Addr, jv.Typ)
	assert.Equal(t, int64(0), jval.Int64())
}

func TestScenarioUninitializedPointerDereferenceIsEvaluationError(t *testing.T) {
	ctx := value.NewContext()
	runProgram(t, ctx, "int* p; print *p;")

	assert.True(t, ctx.HasError())
}

func TestDuplicateDeclarationIsEvaluationError(t *testing.T) {
	ctx := value.NewContext()
	runProgram(t, ctx, "int a = 1; int a = 2;")

	assert.True(t, ctx.HasError())
}

func TestAssignmentReturnsStoredValue(t *testing.T) {
	ctx := value.NewContext()
	runProgram(t, ctx, "int a = 1; int b = (a = 7);")

	require.False(t, ctx.HasError())
	bv, _ := ctx.LookupVariable("b")
	bval, _ := ctx.LoadValue(bv.Addr, bv.Typ)
	assert.Equal(t, int64(7), bval.Int64())
}

func TestUnsignedOverflowWrapsModuloWidth(t *testing.T) {
	ctx := value.NewContext()
	runProgram(t, ctx, "unsigned char a = 255; a = a + 1;")

	require.False(t, ctx.HasError())
	av, _ := ctx.LookupVariable("a")
	aval, _ := ctx.LoadValue(av.Addr, av.Typ)
	assert.Equal(t, uint64(0), aval.Uint64())
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	// Both sides of && are always evaluated per spec.md §9; with an
	// assignment side-effect on the right, the side effect must land even
	// though the left side is false.
	ctx := value.NewContext()
	runProgram(t, ctx, "int a = 0; int b = 0; int r = a && (b = 1);")

	require.False(t, ctx.HasError())
	bv, _ := ctx.LookupVariable("b")
	bval, _ := ctx.LoadValue(bv.Addr, bv.Typ)
	assert.Equal(t, int64(1), bval.Int64())
}

func TestPointerElementScalingForIntStar(t *testing.T) {
	ctx := value.NewContext()
	results := runProgram(t, ctx, "int arr[] = {1, 2, 3}; int* p = arr; p = p + 1; print *p;")

	require.False(t, ctx.HasError())
	assert.Equal(t, "--print-- Value: (int) 2", results[len(results)-1].PrintLine)
}
