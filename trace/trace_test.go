package trace

import (
	"strings"
	"testing"
)

func TestStmtNoopWhenDisabled(t *testing.T) {
	var buf strings.Builder
	Init(false, nil, &buf)
	Stmt("For")
	if buf.Len() != 0 {
		t.Fatalf("expected no output while disabled, got %q", buf.String())
	}
}

func TestStmtWritesWhenEnabled(t *testing.T) {
	var buf strings.Builder
	Init(true, nil, &buf)
	Stmt("For")
	if !strings.Contains(buf.String(), "For") {
		t.Fatalf("buf = %q, want it to mention %q", buf.String(), "For")
	}
}

func TestFilterRestrictsLabels(t *testing.T) {
	var buf strings.Builder
	Init(true, []string{"For"}, &buf)
	Stmt("While")
	if buf.Len() != 0 {
		t.Fatalf("filtered-out label produced output: %q", buf.String())
	}
	Stmt("For")
	if !strings.Contains(buf.String(), "For") {
		t.Fatalf("matching label produced no output: %q", buf.String())
	}
}

func TestIsEnabledReflectsInit(t *testing.T) {
	Init(true, nil, &strings.Builder{})
	if !IsEnabled() {
		t.Fatal("IsEnabled() = false after Init(true, ...)")
	}
	Init(false, nil, &strings.Builder{})
	if IsEnabled() {
		t.Fatal("IsEnabled() = true after Init(false, ...)")
	}
}

func TestSwitchEnterAndBreakWriteWhenEnabled(t *testing.T) {
	var buf strings.Builder
	Init(true, nil, &buf)
	SwitchEnter(3)
	Break("switch")
	out := buf.String()
	if !strings.Contains(out, "SWITCH on=3") || !strings.Contains(out, "BREAK in switch") {
		t.Fatalf("buf = %q, missing expected markers", out)
	}
}
