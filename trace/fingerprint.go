package trace

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ripemd160"

	"yapl/ast"
)

// Fingerprint computes a short content hash of a program's node-kind
// signature, for labeling a trace session the same way a production
// system tags logs with a build or program hash so related runs can be
// correlated.
//
// Fingerprint walks the tree once, accumulating a label per node (its kind,
// plus the identifier, variable, operator or callee name where the node has
// one; literal values are not included), and returns the first 8 hex characters of the ripemd160 digest of that
// accumulated signature. It is not a cryptographic integrity check — just
// a stable, short label.
func Fingerprint(root ast.Node) string {
	h := ripemd160.New()
	walk(root, func(label string) {
		fmt.Fprint(h, label)
	})
	return hex.EncodeToString(h.Sum(nil))[:8]
}

// walk visits every node reachable from root, in a fixed traversal order,
// invoking visit with a short label for each. It does not evaluate
// anything — it only inspects shape, so it is safe to call on any program
// regardless of symbol table state.
func walk(node ast.Node, visit func(label string)) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.NumberExpr:
		visit("Number")
	case *ast.FloatExpr:
		visit("Float")
	case *ast.CharExpr:
		visit("Char")
	case *ast.BooleanExpr:
		visit("Boolean")
	case *ast.StringLiteralExpr:
		visit("StringLiteral")
	case *ast.IdentifierExpr:
		visit("Identifier:" + n.Name)
	case *ast.SizeofExpr:
		visit("Sizeof:" + n.Name)
	case *ast.AssignmentExpr:
		visit("Assignment:" + n.Name)
		walk(n.Value, visit)
	case *ast.BinaryExpr:
		visit("BinaryOp:" + n.Operator.String())
		walk(n.Left, visit)
		walk(n.Right, visit)
	case *ast.UnaryExpr:
		visit("UnaryOp:" + n.Operator.String())
		walk(n.Operand, visit)
	case *ast.IfStmt:
		visit("If")
		walk(n.Cond, visit)
		walk(n.Then, visit)
		walk(n.Else, visit)
	case *ast.ForStmt:
		visit("For")
		walk(n.Init, visit)
		walk(n.Cond, visit)
		walk(n.Incr, visit)
		walk(n.Body, visit)
	case *ast.WhileStmt:
		visit("While")
		walk(n.Cond, visit)
		walk(n.Body, visit)
	case *ast.SwitchStmt:
		visit("Switch")
		walk(n.Discriminant, visit)
		for c := n.Cases; c != nil; c = c.Next {
			if c.IsDefault() {
				visit("DefaultCase")
			} else {
				visit("Case")
				walk(c.Value, visit)
			}
			for _, stmt := range c.Body {
				walk(stmt, visit)
			}
		}
	case *ast.BreakStmt:
		visit("Break")
	case *ast.PrintStmt:
		visit("Print")
		walk(n.Expr, visit)
	case *ast.ErrorStmt:
		visit("Error")
		walk(n.Expr, visit)
	case *ast.ExprStmt:
		visit("ExprStmt")
		walk(n.Expr, visit)
	case *ast.StatementList:
		visit("StatementList")
		for _, s := range n.Items {
			walk(s, visit)
		}
	case *ast.FuncCallExpr:
		visit("FuncCall:" + n.Callee)
		for _, a := range n.Args {
			walk(a, visit)
		}
	}
}
