// Package driver implements the CLI-facing read-parse-evaluate-echo loop
// described in spec.md §4.4/§6/§7: read statements up to ';', parse and
// evaluate each in turn against one shared Context, echo the source text
// of any statement that changed an lvalue, print the value line for any
// Print statement, and halt on the first evaluation error while still
// reporting which statement failed.
package driver

import (
	"fmt"
	"io"

	"github.com/nilsen/cinterp/internal/config"
	"github.com/nilsen/cinterp/internal/logging"
	"github.com/nilsen/cinterp/internal/value"
	"github.com/nilsen/cinterp/pkg/eval"
	"github.com/nilsen/cinterp/pkg/lexer"
	"github.com/nilsen/cinterp/pkg/parser"
)

// Exit codes per spec.md §6/§7.
const (
	ExitClean    = 0
	ExitParse    = 1
	ExitAllocate = 2
)

// Driver owns the Context for one program run.
type Driver struct {
	ctx *value.Context
	ev  *eval.Evaluator
	cfg *config.Config
	out io.Writer
	err io.Writer
}

// New creates a Driver that writes the run report to out and
// diagnostics to errw.
func New(cfg *config.Config, out, errw io.Writer) *Driver {
	ctx := value.NewContext()
	value.MaxAllocBytes = cfg.Limits.MaxAllocBytes

	return &Driver{ctx: ctx, ev: eval.New(ctx), cfg: cfg, out: out, err: errw}
}

// Run executes one program read from in and returns the process exit
// code spec.md §6 specifies.
func (d *Driver) Run(in io.Reader) int {
	fmt.Fprint(d.out, "> ")

	stmts, err := readStatements(in, d.cfg.Limits.MaxStatementLen)
	if err != nil {
		fmt.Fprintln(d.err, err)

		return ExitParse
	}

	fmt.Fprintln(d.out, "----")

	for i, text := range stmts {
		code, halt := d.runOne(i+1, text)
		if code != ExitClean {
			return code
		}
		if halt {
			break
		}
	}

	fmt.Fprintln(d.out, "----")

	return ExitClean
}

// runOne parses and evaluates a single statement. A parse error returns
// exit code 1; an allocation failure terminates the process immediately
// through logging.Fatalf (spec.md §7 item 3, exit code 2) rather than
// returning. An ordinary evaluation error is reported and signaled via
// halt so the caller stops the loop while still exiting 0 (spec.md §7
// item 2 is not among the fatal exit conditions listed in §6).
func (d *Driver) runOne(index int, text string) (code int, halt bool) {
	p := parser.NewWithMaxDeclFields(lexer.NewWithLimit(text, d.cfg.Limits.MaxIdentLen), d.cfg.Limits.MaxDeclFields)

	stmt, err := p.Parse()
	if err != nil {
		fmt.Fprintln(d.err, err)

		return ExitParse, true
	}
	stmt.SetSourceText(text)

	res, err := d.ev.EvalStatement(stmt)
	if err != nil {
		logging.Fatalf(ExitAllocate, "allocation failure: %v", err)

		return ExitAllocate, true
	}

	if res.Changed {
		fmt.Fprintln(d.out, stmt.SourceText())
	}
	if res.PrintLine != "" {
		fmt.Fprintln(d.out, res.PrintLine)
	}

	if d.ctx.HasError() {
		fmt.Fprintf(d.err, "statement %d: %s\n", index, d.ctx.ErrorMessage())

		return ExitClean, true
	}

	return ExitClean, false
}
