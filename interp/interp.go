// Package interp wires the AST, symbol table, evaluator, executor, and
// print dispatcher into a single runnable Interpreter — the thing a front
// end hands a parsed program to. Several constructors cover different
// injection points: New for the default setup, NewWithSink to capture
// output, NewWithConfig to override tunables.
package interp

import (
	"os"

	"yapl/ast"
	"yapl/config"
	"yapl/control"
	"yapl/eval"
	"yapl/exec"
	"yapl/printer"
	"yapl/symtab"
)

// Interpreter bundles the pieces a running yapl program needs.
type Interpreter struct {
	Symtab *symtab.Table
	Eval   *eval.Evaluator
	Exec   *exec.Executor
	Sink   printer.Sink
}

// New creates an interpreter with a fresh symbol table, printing to
// os.Stdout/os.Stderr, using default configuration.
func New() *Interpreter {
	return NewWithSink(printer.NewStdSink(os.Stdout, os.Stderr))
}

// NewWithSink creates an interpreter writing through a caller-supplied
// Sink, e.g. one that captures output in tests.
func NewWithSink(sink printer.Sink) *Interpreter {
	return build(config.Default(), sink)
}

// NewWithConfig creates an interpreter honoring cfg (symbol table capacity,
// short-circuit logical operators, ...), printing to os.Stdout/os.Stderr.
func NewWithConfig(cfg config.Config) *Interpreter {
	return build(cfg, printer.NewStdSink(os.Stdout, os.Stderr))
}

func build(cfg config.Config, sink printer.Sink) *Interpreter {
	tbl := symtab.NewWithCapacity(cfg.MaxVars)
	evaluator := eval.New(tbl, sink)
	evaluator.ShortCircuitLogical = cfg.ShortCircuitLogical
	return &Interpreter{
		Symtab: tbl,
		Eval:   evaluator,
		Exec:   exec.New(evaluator, sink),
		Sink:   sink,
	}
}

// Run executes a parsed program's root statement to completion. A break
// that escapes every enclosing loop/switch (malformed input — break
// outside any loop or switch) is simply treated as the end of the program,
// matching the source's top-level setjmp-catches-everything posture.
func (in *Interpreter) Run(root ast.Stmt) {
	in.Exec.ExecStmt(root)
}

// RunStatements executes a slice of top-level statements in order.
func (in *Interpreter) RunStatements(stmts []ast.Stmt) control.Flow {
	return in.Exec.ExecStatements(stmts)
}
