package driver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsen/cinterp/internal/config"
	"github.com/nilsen/cinterp/internal/driver"
)

func run(t *testing.T, src string) (out, errOut string, code int) {
	t.Helper()

	var outBuf, errBuf strings.Builder
	d := driver.New(config.DefaultConfig(), &outBuf, &errBuf)
	code = d.Run(strings.NewReader(src))

	return outBuf.String(), errBuf.String(), code
}

func TestRunEchoesDeclarationAndPrintsValue(t *testing.T) {
	out, _, code := run(t, "int a = 2 + 3 * 4; print a;")

	assert.Equal(t, driver.ExitClean, code)
	assert.Contains(t, out, "int a = 2 + 3 * 4;")
	assert.Contains(t, out, "--print-- Value: (int) 14")
}

func TestRunHaltsOnEvaluationErrorButExitsClean(t *testing.T) {
	out, errOut, code := run(t, "int* p; print *p; print 1;")

	assert.Equal(t, driver.ExitClean, code)
	assert.NotContains(t, out, "--print-- Value: (long long) 1")
	assert.Contains(t, errOut, "statement 2")
}

func TestRunExitsOneOnParseError(t *testing.T) {
	_, errOut, code := run(t, "int a = ;")

	assert.Equal(t, driver.ExitParse, code)
	require.NotEmpty(t, errOut)
}

func TestRunCompoundAssignmentScenario(t *testing.T) {
	out, _, code := run(t, "int x = 5; x += 3; x *= 2; print x;")

	assert.Equal(t, driver.ExitClean, code)
	assert.Contains(t, out, "x += 3;")
	assert.Contains(t, out, "x *= 2;")
	assert.Contains(t, out, "--print-- Value: (int) 16")
}
