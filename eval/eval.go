// Package eval implements yapl's expression evaluator: the integer-context
// and float-context evaluators, the type-inference predicate that chooses
// between them, and the arithmetic/comparison/logical operators both
// contexts share. Evaluation is split into two explicit entry points,
// EvalInt and EvalFloat, rather than a single polymorphic Eval, since
// yapl's value domain is a closed int64/float64 pair rather than an open
// set of runtime types.
package eval

import (
	"yapl/ast"
	"yapl/symtab"
)

// ErrorReporter receives yyerror-style diagnostics for recoverable semantic
// errors. Evaluation always substitutes a neutral value and
// continues after reporting.
type ErrorReporter interface {
	YYError(msg string)
}

// Evaluator evaluates expression subtrees against a symbol table, reporting
// soft errors to an ErrorReporter.
type Evaluator struct {
	Symtab *symtab.Table
	Errors ErrorReporter

	// ShortCircuitLogical selects whether && and || skip evaluating their
	// right operand once the left operand already determines the result.
	// Defaults to false (both operands always evaluated), matching the
	// source. See config.Config.ShortCircuitLogical.
	ShortCircuitLogical bool
}

// New creates an evaluator bound to the given symbol table and error sink,
// with the source's non-short-circuit && / || behavior.
func New(tbl *symtab.Table, errors ErrorReporter) *Evaluator {
	return &Evaluator{Symtab: tbl, Errors: errors}
}

func (e *Evaluator) yyerror(msg string) {
	if e.Errors != nil {
		e.Errors.YYError(msg)
	}
}

// IsFloatExpression recursively classifies an expression as float or
// non-float. It has no side effects on variables but may
// report an error for unknown identifiers.
func (e *Evaluator) IsFloatExpression(node ast.Expr) bool {
	switch n := node.(type) {
	case *ast.FloatExpr:
		return true
	case *ast.NumberExpr, *ast.CharExpr, *ast.BooleanExpr:
		return false
	case *ast.IdentifierExpr:
		entry, ok := e.Symtab.Get(n.Name)
		if !ok {
			e.yyerror("Undefined variable")
			return false
		}
		return entry.IsFloat
	case *ast.BinaryExpr:
		return e.IsFloatExpression(n.Left) || e.IsFloatExpression(n.Right)
	default:
		return false
	}
}

// Eval evaluates node, choosing the integer or float evaluator via
// IsFloatExpression, and returns an int64 result. When the expression is
// float-typed, the float result is truncated toward zero.
func (e *Evaluator) Eval(node ast.Expr) int64 {
	if e.IsFloatExpression(node) {
		return int64(e.EvalFloat(node))
	}
	return e.EvalInt(node)
}

// EvalInt evaluates node in integer context.
func (e *Evaluator) EvalInt(node ast.Expr) int64 {
	switch n := node.(type) {
	case *ast.NumberExpr:
		return n.Value
	case *ast.CharExpr:
		return n.Value
	case *ast.BooleanExpr:
		return n.Value
	case *ast.FloatExpr:
		// Reached when a float literal is evaluated in integer context,
		// e.g. via a direct EvalInt call or as the operand of a UnaryExpr
		// (which IsFloatExpression never classifies as float); truncate
		// toward zero.
		return int64(n.Value)
	case *ast.IdentifierExpr:
		entry, ok := e.Symtab.Get(n.Name)
		if !ok {
			e.yyerror("Undefined variable")
			return 0
		}
		if entry.IsFloat {
			e.yyerror("Cannot use float variable in integer context")
			return int64(entry.FloatVal)
		}
		return entry.IntVal
	case *ast.SizeofExpr:
		return wordSizeBytes
	case *ast.AssignmentExpr:
		return e.evalAssignInt(n)
	case *ast.BinaryExpr:
		return e.evalBinaryInt(n)
	case *ast.UnaryExpr:
		return e.evalUnaryInt(n)
	case *ast.StringLiteralExpr:
		e.yyerror("Cannot evaluate a string literal as an integer")
		return 0
	case *ast.FuncCallExpr:
		// Built-in calls are dispatched by the statement executor, not by
		// the expression evaluator; reaching here means a call appeared
		// nested inside another expression, which this language does not
		// support.
		e.yyerror("Unknown expression type")
		return 0
	default:
		e.yyerror("Unknown expression type")
		return 0
	}
}

// EvalFloat evaluates node in float context.
func (e *Evaluator) EvalFloat(node ast.Expr) float64 {
	switch n := node.(type) {
	case *ast.FloatExpr:
		return n.Value
	case *ast.NumberExpr:
		return float64(n.Value)
	case *ast.CharExpr:
		return float64(n.Value)
	case *ast.BooleanExpr:
		return float64(n.Value)
	case *ast.IdentifierExpr:
		entry, ok := e.Symtab.Get(n.Name)
		if !ok {
			e.yyerror("Undefined variable")
			return 0
		}
		if entry.IsFloat {
			return entry.FloatVal
		}
		// Integer variable promoted to float in a float context.
		return float64(entry.IntVal)
	case *ast.AssignmentExpr:
		return e.evalAssignFloat(n)
	case *ast.BinaryExpr:
		return e.evalBinaryFloat(n)
	case *ast.UnaryExpr:
		return e.evalUnaryFloat(n)
	case *ast.StringLiteralExpr:
		e.yyerror("Cannot evaluate a string literal as a float")
		return 0
	case *ast.SizeofExpr:
		return float64(wordSizeBytes)
	default:
		e.yyerror("Unknown expression type")
		return 0
	}
}

// wordSizeBytes is the machine word size sizeof(name) reports, matching a
// 64-bit host int.
const wordSizeBytes = 8

// evalAssignInt evaluates an assignment in integer context: classify the
// RHS, evaluate in the matching numeric context, store. This mirrors the
// store behavior the statement executor performs for assignment statements,
// but is also reachable here because AssignmentExpr is an Expr: `x = y + 1`
// may itself be used as a sub-expression's value.
func (e *Evaluator) evalAssignInt(n *ast.AssignmentExpr) int64 {
	if e.IsFloatExpression(n.Value) {
		v := e.EvalFloat(n.Value)
		e.store(n, true, int64(v), v)
		return int64(v)
	}
	v := e.EvalInt(n.Value)
	e.store(n, false, v, 0)
	return v
}

func (e *Evaluator) evalAssignFloat(n *ast.AssignmentExpr) float64 {
	if e.IsFloatExpression(n.Value) {
		v := e.EvalFloat(n.Value)
		e.store(n, true, 0, v)
		return v
	}
	v := e.EvalInt(n.Value)
	e.store(n, false, v, float64(v))
	return float64(v)
}

// store commits an assignment's result to the symbol table. rhsIsFloat
// selects which of SetInt/SetFloat actually records the value — this is the
// RHS expression's own type, independent of whether the caller
// (evalAssignInt or evalAssignFloat) was asked to evaluate in int or float
// context.
func (e *Evaluator) store(n *ast.AssignmentExpr, rhsIsFloat bool, intVal int64, floatVal float64) {
	if rhsIsFloat {
		if !e.Symtab.SetFloat(n.Name, floatVal, n.Mods) {
			e.yyerror("Symbol table full")
		}
	} else {
		if !e.Symtab.SetInt(n.Name, intVal, n.Mods) {
			e.yyerror("Symbol table full")
		}
	}
	if e.IsBoolean(n.Value) {
		e.Symtab.MarkBoolean(n.Name)
	}
}

// isBooleanExpr reports whether expr is boolean-tagged by its shape alone: a
// Boolean literal, or an assignment whose RHS is itself such an expression.
// Identifiers need the symbol table and are handled by IsBoolean.
func isBooleanExpr(expr ast.Expr) bool {
	switch n := expr.(type) {
	case *ast.BooleanExpr:
		return true
	case *ast.AssignmentExpr:
		return isBooleanExpr(n.Value)
	default:
		_ = n
		return false
	}
}

// IsBoolean reports whether expr is boolean-tagged: isBooleanExpr's cases,
// plus an identifier whose stored modifier record has boolean set. Used by
// the print dispatcher and by assignment stores.
func (e *Evaluator) IsBoolean(expr ast.Expr) bool {
	if isBooleanExpr(expr) {
		return true
	}
	if id, ok := expr.(*ast.IdentifierExpr); ok {
		return e.Symtab.GetModifiers(id.Name).Boolean
	}
	return false
}
