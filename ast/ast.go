// Package ast defines the tagged AST node model for yapl programs.
//
// A front end (lexer + grammar-driven parser) is expected to build trees out
// of these nodes by calling the New* constructors in the order dictated by
// its grammar. Nothing in this package parses text.
package ast

// Position records where a node came from in source text. Front ends that
// have no notion of source position may leave it zero-valued; nothing here
// depends on it for evaluation.
type Position struct {
	Line   int
	Column int
}

// Node is the base interface every AST node implements.
type Node interface {
	Position() Position
}

// Expr is a Node that produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that is executed for effect.
type Stmt interface {
	Node
	stmtNode()
}

// Modifiers is the type-modifier record attached to declarations and
// expressions. signed and unsigned are mutually exclusive by
// construction, though this package does not itself enforce that — it is a
// parser-level invariant, same as the C original's current_modifiers.
type Modifiers struct {
	Volatile bool
	Signed   bool
	Unsigned bool
	Boolean  bool
}

// Merge computes the modifier record for a binary operation result from its
// operand modifiers: unsigned propagates via OR, signed is
// always cleared, volatile propagates via OR, and boolean is never inherited.
func Merge(left, right Modifiers) Modifiers {
	return Modifiers{
		Volatile: left.Volatile || right.Volatile,
		Unsigned: left.Unsigned || right.Unsigned,
		Signed:   false,
		Boolean:  false,
	}
}

// ModifierStage is the process-wide "current modifiers" staging record a
// parser accumulates modifier tokens into before a declaration consumes
// them. Consume atomically returns the staged record and
// clears it, matching get_current_modifiers() in the original C parser.
//
// The constructors of nodes that carry modifiers (NewAssignment and
// NewBinaryOp) take them explicitly, so ModifierStage is opt-in: a front end
// may thread modifiers itself, or
// stage them here and call Consume() right before constructing a node,
// whichever matches its own grammar actions more naturally.
type ModifierStage struct {
	staged Modifiers
}

// Stage records a modifier token seen by the parser.
func (s *ModifierStage) Stage(m Modifiers) {
	s.staged.Volatile = s.staged.Volatile || m.Volatile
	s.staged.Signed = s.staged.Signed || m.Signed
	s.staged.Unsigned = s.staged.Unsigned || m.Unsigned
	s.staged.Boolean = s.staged.Boolean || m.Boolean
}

// Consume returns the staged record and resets it to zero.
func (s *ModifierStage) Consume() Modifiers {
	m := s.staged
	s.staged = Modifiers{}
	return m
}
