package exec

import (
	"yapl/ast"
	"yapl/control"
	"yapl/trace"
)

// execSwitch implements switch/case fall-through:
//
//  1. Evaluate the discriminant once.
//  2. Walk cases in source order, tracking whether a prior case has
//     matched.
//  3. A value-bearing case executes its body once matched is true or its
//     own value equals the discriminant; matching sticks (fall-through —
//     there is no implicit break between cases).
//  4. A default case executes its body unconditionally and then stops the
//     walk, even if it appears before a case that would otherwise have
//     matched later. This is a deliberate deviation from C switch
//     semantics, not a bug: default always wins the walk the moment it is
//     reached, regardless of where it sits among the other cases.
//  5. A break anywhere in a case body unwinds the whole switch; this
//     function is the switch's own break landing pad.
func (x *Executor) execSwitch(s *ast.SwitchStmt) control.Flow {
	discriminant := x.Eval.Eval(s.Discriminant)
	trace.SwitchEnter(discriminant)

	matched := false
	for c := s.Cases; c != nil; c = c.Next {
		if c.IsDefault() {
			if flow := x.ExecStatements(c.Body); flow == control.Broke {
				trace.Break("switch")
				return control.Normal
			}
			break
		}

		caseValue := x.Eval.Eval(c.Value)
		if matched || caseValue == discriminant {
			matched = true
			if flow := x.ExecStatements(c.Body); flow == control.Broke {
				trace.Break("switch")
				return control.Normal
			}
		}
	}

	return control.Normal
}
