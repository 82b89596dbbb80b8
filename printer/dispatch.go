package printer

import (
	"strings"

	"yapl/ast"
)

// Evaluator is the subset of eval.Evaluator the print dispatcher needs.
// Declared locally (rather than importing yapl/eval directly) so this
// package stays a leaf with no dependency on eval; *eval.Evaluator
// satisfies it structurally.
type Evaluator interface {
	EvalInt(node ast.Expr) int64
	EvalFloat(node ast.Expr) float64
	IsFloatExpression(node ast.Expr) bool
	IsBoolean(node ast.Expr) bool
}

// Builtin identifies which of the three print built-ins is being invoked.
type Builtin int

const (
	Yapping Builtin = iota
	Yappin
	Baka
)

// Dispatch implements the shared argument handling for yapping/yappin/baka.
// The first argument must be a string literal format template; violations
// are reported via sink.YYError and the call is skipped. Only the first
// extra argument is rendered; further arguments are ignored.
func Dispatch(e Evaluator, sink Sink, which Builtin, args []ast.Expr) {
	if len(args) == 0 {
		emit(sink, which, "\n")
		return
	}

	formatNode, ok := args[0].(*ast.StringLiteralExpr)
	if !ok {
		sink.YYError("First argument to yapping must be a string literal")
		return
	}
	format := formatNode.Value

	if len(args) == 1 {
		// No extra arguments: emit the format string verbatim. Passed
		// through "%s" rather than as the format itself so stray '%'
		// characters in the template are never reinterpreted.
		emit(sink, which, "%s", format)
		return
	}

	x := args[1]

	switch {
	case isSizeof(x) || (isIdentifier(x) && containsPercentLU(format)):
		val := uint64(e.EvalInt(x))
		emit(sink, which, translateUnsignedVerb(format), val)

	case e.IsFloatExpression(x):
		emit(sink, which, format, e.EvalFloat(x))

	case e.IsBoolean(x):
		if containsPercentD(format) {
			emit(sink, which, format, e.EvalInt(x))
		} else {
			word := "no"
			if e.EvalInt(x) != 0 {
				word = "yes"
			}
			emit(sink, which, format, word)
		}

	default:
		emit(sink, which, format, e.EvalInt(x))
	}
}

func emit(sink Sink, which Builtin, format string, args ...any) {
	switch which {
	case Yapping:
		sink.Yapping(format, args...)
	case Yappin:
		sink.Yappin(format, args...)
	case Baka:
		sink.Baka(format, args...)
	}
}

func isSizeof(x ast.Expr) bool {
	_, ok := x.(*ast.SizeofExpr)
	return ok
}

func isIdentifier(x ast.Expr) bool {
	_, ok := x.(*ast.IdentifierExpr)
	return ok
}

func containsPercentLU(format string) bool {
	return strings.Contains(format, "%lu")
}

func containsPercentD(format string) bool {
	return strings.Contains(format, "%d")
}

// translateUnsignedVerb rewrites the C-style "%lu" length-modified verb to
// Go's "%d", which renders an unsigned operand in decimal the same way —
// Go's fmt has no length-modifier syntax, so the template is translated
// rather than passed through verbatim.
func translateUnsignedVerb(format string) string {
	return strings.ReplaceAll(format, "%lu", "%d")
}
