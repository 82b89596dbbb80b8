package trace

import (
	"testing"

	"yapl/ast"
)

func TestFingerprintIsStableAndEightHexChars(t *testing.T) {
	pos := ast.Position{}
	tree := ast.NewExprStmt(pos, ast.NewAssignment(pos, "x", ast.NewNumber(pos, 41), ast.Modifiers{}))

	first := Fingerprint(tree)
	second := Fingerprint(tree)
	if first != second {
		t.Fatalf("Fingerprint not stable across calls: %q vs %q", first, second)
	}
	if len(first) != 8 {
		t.Fatalf("Fingerprint() = %q, want 8 hex characters", first)
	}
}

func TestFingerprintDiffersForDifferentPrograms(t *testing.T) {
	pos := ast.Position{}
	a := ast.NewExprStmt(pos, ast.NewAssignment(pos, "x", ast.NewNumber(pos, 1), ast.Modifiers{}))
	b := ast.NewExprStmt(pos, ast.NewAssignment(pos, "y", ast.NewNumber(pos, 1), ast.Modifiers{}))

	if Fingerprint(a) == Fingerprint(b) {
		t.Fatal("distinct programs produced the same fingerprint")
	}
}

func TestFingerprintHandlesNilNode(t *testing.T) {
	// walk(nil, ...) must be a no-op, not a panic; Fingerprint(nil) is still
	// a valid (if degenerate) hash of the empty signature.
	got := Fingerprint(nil)
	if len(got) != 8 {
		t.Fatalf("Fingerprint(nil) = %q, want 8 hex characters", got)
	}
}
