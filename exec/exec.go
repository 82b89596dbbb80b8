// Package exec implements yapl's statement executor: the dispatch over
// statement kinds, the for/while/if/switch control machinery, and the
// break landing pads that catch the control.Broke signal.
package exec

import (
	"yapl/ast"
	"yapl/control"
	"yapl/eval"
	"yapl/printer"
	"yapl/trace"
)

// Executor runs statements against a shared Evaluator and output Sink.
type Executor struct {
	Eval *eval.Evaluator
	Sink printer.Sink
}

// New creates a statement executor.
func New(e *eval.Evaluator, sink printer.Sink) *Executor {
	return &Executor{Eval: e, Sink: sink}
}

func (x *Executor) yyerror(msg string) {
	x.Sink.YYError(msg)
}

// ExecStatements runs a slice of statements in order. A
// Broke signal from any statement stops the walk and propagates
// immediately — it is not swallowed here; only a loop or switch driver
// catches it.
func (x *Executor) ExecStatements(stmts []ast.Stmt) control.Flow {
	for _, s := range stmts {
		if flow := x.ExecStmt(s); flow == control.Broke {
			return control.Broke
		}
	}
	return control.Normal
}

// ExecStmt executes a single statement and returns whether a break is
// propagating out of it.
func (x *Executor) ExecStmt(stmt ast.Stmt) control.Flow {
	if stmt == nil {
		return control.Normal
	}

	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return x.execExprStmt(s)
	case *ast.IfStmt:
		return x.execIf(s)
	case *ast.ForStmt:
		return x.execFor(s)
	case *ast.WhileStmt:
		return x.execWhile(s)
	case *ast.SwitchStmt:
		return x.execSwitch(s)
	case *ast.BreakStmt:
		trace.Stmt("Break")
		return control.Broke
	case *ast.PrintStmt:
		x.execPrint(s.Expr, x.Sink.Yapping)
		return control.Normal
	case *ast.ErrorStmt:
		x.execPrint(s.Expr, x.Sink.Baka)
		return control.Normal
	case *ast.StatementList:
		return x.ExecStatements(s.Items)
	default:
		x.yyerror("Unknown statement type")
		return control.Normal
	}
}

// execExprStmt evaluates an expression for its side effects, discarding the
// result, except
// that a FuncCallExpr is routed to the three print built-ins instead of
// the general expression evaluator.
func (x *Executor) execExprStmt(s *ast.ExprStmt) control.Flow {
	if s.Expr == nil {
		return control.Normal
	}
	if call, ok := s.Expr.(*ast.FuncCallExpr); ok {
		x.execFuncCall(call)
		return control.Normal
	}
	x.Eval.Eval(s.Expr)
	return control.Normal
}

func (x *Executor) execFuncCall(call *ast.FuncCallExpr) {
	var which printer.Builtin
	switch call.Callee {
	case "yapping":
		which = printer.Yapping
	case "yappin":
		which = printer.Yappin
	case "baka":
		which = printer.Baka
	default:
		x.yyerror("Unknown function call")
		return
	}
	printer.Dispatch(x.Eval, x.Sink, which, call.Args)
}

// execPrint implements the fixed PrintStmt/ErrorStmt dispatch: a string literal argument is emitted verbatim with a trailing
// newline; any other expression is evaluated to an integer and emitted as
// "%d\n". This is deliberately simpler than the rich yapping/yappin/baka
// call dispatch in printer.Dispatch — PrintStmt/ErrorStmt are yapl's
// plain print statement, not a call to a built-in with a format string.
func (x *Executor) execPrint(expr ast.Expr, emit func(string, ...any)) {
	if lit, ok := expr.(*ast.StringLiteralExpr); ok {
		emit("%s\n", lit.Value)
		return
	}
	v := x.Eval.Eval(expr)
	emit("%d\n", v)
}

func (x *Executor) execIf(s *ast.IfStmt) control.Flow {
	if x.Eval.Eval(s.Cond) != 0 {
		return x.ExecStmt(s.Then)
	}
	if s.Else != nil {
		return x.ExecStmt(s.Else)
	}
	return control.Normal
}

// execFor implements the for loop: init runs once, then while cond != 0 {
// body; incr }. Any of the four parts may be nil. A break
// raised anywhere in body is caught here — this loop's own landing pad —
// and converted back to control.Normal before returning to the caller.
func (x *Executor) execFor(s *ast.ForStmt) control.Flow {
	if s.Init != nil {
		x.ExecStmt(s.Init)
	}
	for s.Cond == nil || x.Eval.Eval(s.Cond) != 0 {
		if flow := x.ExecStmt(s.Body); flow == control.Broke {
			trace.Break("for")
			return control.Normal
		}
		if s.Incr != nil {
			x.ExecStmt(s.Incr)
		}
	}
	return control.Normal
}

// execWhile implements the while loop, with its own break landing pad.
func (x *Executor) execWhile(s *ast.WhileStmt) control.Flow {
	for x.Eval.Eval(s.Cond) != 0 {
		if flow := x.ExecStmt(s.Body); flow == control.Broke {
			trace.Break("while")
			return control.Normal
		}
	}
	return control.Normal
}
