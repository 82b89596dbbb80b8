package ast

import "testing"

func TestMergeDropsSignedAndBoolean(t *testing.T) {
	left := Modifiers{Unsigned: true, Signed: true, Boolean: true}
	right := Modifiers{Volatile: true}

	got := Merge(left, right)
	want := Modifiers{Volatile: true, Unsigned: true, Signed: false, Boolean: false}
	if got != want {
		t.Fatalf("Merge(%+v, %+v) = %+v, want %+v", left, right, got, want)
	}
}

func TestNewBinaryOpComputesMods(t *testing.T) {
	pos := Position{Line: 1}
	left := NewNumber(pos, 1)
	right := NewNumber(pos, 2)

	n := NewBinaryOp(pos, OpAdd, left, right, Modifiers{Unsigned: true}, Modifiers{Volatile: true})
	if !n.Mods.Unsigned || !n.Mods.Volatile {
		t.Fatalf("expected propagated unsigned/volatile, got %+v", n.Mods)
	}
	if n.Mods.Signed || n.Mods.Boolean {
		t.Fatalf("signed/boolean must never propagate, got %+v", n.Mods)
	}
}

func TestBooleanExprModifiers(t *testing.T) {
	b := NewBoolean(Position{}, true)
	if b.Value != 1 {
		t.Fatalf("NewBoolean(true).Value = %d, want 1", b.Value)
	}
	if !b.Modifiers().Boolean {
		t.Fatal("BooleanExpr.Modifiers() must always set Boolean")
	}
}

func TestCaseClauseIsDefault(t *testing.T) {
	value := NewCase(Position{}, NewNumber(Position{}, 1), nil)
	def := NewDefaultCase(Position{}, nil)

	if value.IsDefault() {
		t.Fatal("value-bearing case reported as default")
	}
	if !def.IsDefault() {
		t.Fatal("default case not reported as default")
	}
}

func TestAppendCasePreservesOrder(t *testing.T) {
	first := NewCase(Position{}, NewNumber(Position{}, 1), nil)
	second := NewCase(Position{}, NewNumber(Position{}, 2), nil)
	third := NewDefaultCase(Position{}, nil)

	list := AppendCase(nil, first)
	list = AppendCase(list, second)
	list = AppendCase(list, third)

	var order []Expr
	for c := list; c != nil; c = c.Next {
		order = append(order, c.Value)
	}
	if len(order) != 3 || order[0] != first.Value || order[1] != second.Value || order[2] != nil {
		t.Fatalf("AppendCase did not preserve source order: %+v", order)
	}
}

func TestStatementListAppend(t *testing.T) {
	var list *StatementList
	list = list.Append(NewExprStmt(Position{}, nil))
	if len(list.Items) != 1 {
		t.Fatalf("Append on nil list: got %d items, want 1", len(list.Items))
	}

	list.Append(NewExprStmt(Position{}, nil))
	if len(list.Items) != 2 {
		t.Fatalf("Append on existing list: got %d items, want 2", len(list.Items))
	}
}

func TestModifierStageConsumeResets(t *testing.T) {
	var stage ModifierStage
	stage.Stage(Modifiers{Unsigned: true})
	stage.Stage(Modifiers{Volatile: true})

	got := stage.Consume()
	if !got.Unsigned || !got.Volatile {
		t.Fatalf("Consume() = %+v, want both Unsigned and Volatile set", got)
	}

	again := stage.Consume()
	if again != (Modifiers{}) {
		t.Fatalf("second Consume() = %+v, want zero value after reset", again)
	}
}
