package logic

import "strings"

// A Formula is a propositional formula over single-letter variables.
// The set of implementations is closed: a formula is a literal, a truth
// constant, a negation, a conjunction, a disjunction or an implication.
// Rewrite rules type-switch exhaustively over this set.
type Formula interface {
	// String renders the formula in the surface notation accepted by Parse.
	String() string
	// clone returns a deep copy sharing no nodes with the receiver.
	clone() Formula
}

// A lit is a propositional variable, named by a single uppercase letter.
type lit byte

// Var generates a named variable in a formula. The name must be a single
// uppercase letter.
func Var(name byte) Formula { return lit(name) }

func (l lit) String() string { return string(rune(l)) }
func (l lit) clone() Formula { return l }

// A boolConst is a truth constant. Constants are produced by the evaluator
// when substituting assignments, never by the parser.
type boolConst bool

// True is the constant denoting a tautology.
var True Formula = boolConst(true)

// False is the constant denoting a contradiction.
var False Formula = boolConst(false)

func (b boolConst) String() string {
	if b {
		return "⊤"
	}
	return "⊥"
}

func (b boolConst) clone() Formula { return b }

// A not negates its single subformula.
type not [1]Formula

// Not negates the given subformula. A double negation cancels out.
func Not(f Formula) Formula { return negate(f) }

// negate builds the negation of f, cancelling double negations.
func negate(f Formula) Formula {
	if n, ok := f.(not); ok {
		return n[0]
	}
	return not{f}
}

func (n not) String() string {
	if l, ok := n[0].(lit); ok {
		return "!" + l.String()
	}
	return "!(" + n[0].String() + ")"
}

func (n not) clone() Formula { return not{n[0].clone()} }

// An and is an n-ary conjunction.
type and []Formula

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula { return and(subs) }

func (a and) String() string { return joinSubs([]Formula(a), "a") }
func (a and) clone() Formula { return and(cloneSubs(a)) }

// An or is an n-ary disjunction.
type or []Formula

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula { return or(subs) }

func (o or) String() string { return joinSubs([]Formula(o), "v") }
func (o or) clone() Formula { return or(cloneSubs(o)) }

// An implication only appears before implication elimination; no normal
// form contains one.
type implication [2]Formula

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula { return implication{f1, f2} }

func (i implication) String() string {
	return wrapSub(i[0]) + "->" + wrapSub(i[1])
}

func (i implication) clone() Formula { return implication{i[0].clone(), i[1].clone()} }

// wrapSub renders a nested subformula, parenthesizing connectives and
// implications so the output parses back to the same tree.
func wrapSub(f Formula) string {
	switch f.(type) {
	case and, or, implication:
		return "(" + f.String() + ")"
	}
	return f.String()
}

func joinSubs(subs []Formula, op string) string {
	strs := make([]string, len(subs))
	for i, s := range subs {
		strs[i] = wrapSub(s)
	}
	return strings.Join(strs, op)
}

func cloneSubs(subs []Formula) []Formula {
	res := make([]Formula, len(subs))
	for i, s := range subs {
		res[i] = s.clone()
	}
	return res
}
