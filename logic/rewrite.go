package logic

import (
	"sort"
	"strings"

	"github.com/propkit/propkit/debug"
)

// ToCNF rewrites f into conjunctive normal form: a conjunction of
// disjunctive clauses, each clause free of duplicate literals, with no
// repeated clause. ToCNF never mutates its input and is idempotent.
func ToCNF(f Formula) Formula { return normalize(f, true) }

// ToDNF rewrites f into disjunctive normal form, the dual of ToCNF.
func ToDNF(f Formula) Formula { return normalize(f, false) }

// quietPassBudget is the number of consecutive full passes that must leave
// the tree untouched before it is declared to be in normal form.
const quietPassBudget = 4

// normalize drives the rewrite loop. Implications are eliminated up front;
// the remaining equivalences are then retried from the top after every
// successful rewrite until a full cycle changes nothing. The rule set is
// confluent, so the application order only affects the number of steps.
func normalize(f Formula, cnf bool) Formula {
	f = elimImplications(f)
	steps := []struct {
		name string
		fn   func(Formula) (Formula, bool)
	}{
		{"unwrapped redundant groups", unwrapSingletons},
		{"moved negations inwards", pushNegations},
		{"flattened conjunctions", flattenAnds},
		{"flattened disjunctions", flattenOrs},
		{"removed duplicates", dropDuplicates},
	}
	if cnf {
		steps = append(steps, struct {
			name string
			fn   func(Formula) (Formula, bool)
		}{"moved disjunctions inwards", distributeOrs})
	} else {
		steps = append(steps, struct {
			name string
			fn   func(Formula) (Formula, bool)
		}{"moved conjunctions inwards", distributeAnds})
	}
	quiet := 0
	for quiet < quietPassBudget {
		changed := false
		for _, step := range steps {
			var ch bool
			if f, ch = step.fn(f); ch {
				debug.Logf("%s: %s", step.name, f)
				changed = true
				break
			}
		}
		if changed {
			quiet = 0
		} else {
			quiet++
		}
	}
	return f
}

// elimImplications applies A->B == !AvB depth-first until no implication
// remains anywhere in the tree.
func elimImplications(f Formula) Formula {
	switch f := f.(type) {
	case implication:
		return or{negate(elimImplications(f[0])), elimImplications(f[1])}
	case not:
		return not{elimImplications(f[0])}
	case and:
		subs := make([]Formula, len(f))
		for i, s := range f {
			subs[i] = elimImplications(s)
		}
		return and(subs)
	case or:
		subs := make([]Formula, len(f))
		for i, s := range f {
			subs[i] = elimImplications(s)
		}
		return or(subs)
	default: // lit, boolConst
		return f
	}
}

// pushNegations applies !!A == A, !(AaB) == !Av!B and !(AvB) == !Aa!B,
// innermost subtrees first.
func pushNegations(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case not:
		sub, changed := pushNegations(f[0])
		switch sub := sub.(type) {
		case not:
			return sub[0], true
		case and:
			os := make([]Formula, len(sub))
			for i, s := range sub {
				os[i] = negate(s)
			}
			return or(os), true
		case or:
			as := make([]Formula, len(sub))
			for i, s := range sub {
				as[i] = negate(s)
			}
			return and(as), true
		case boolConst:
			return boolConst(!sub), true
		default:
			return not{sub}, changed
		}
	case and:
		subs, changed := pushNegationsAll(f)
		return and(subs), changed
	case or:
		subs, changed := pushNegationsAll(f)
		return or(subs), changed
	case implication:
		left, ch1 := pushNegations(f[0])
		right, ch2 := pushNegations(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

func pushNegationsAll(subs []Formula) ([]Formula, bool) {
	changed := false
	res := make([]Formula, len(subs))
	for i, s := range subs {
		var ch bool
		res[i], ch = pushNegations(s)
		changed = changed || ch
	}
	return res, changed
}

// unwrapSingletons collapses connectives wrapping a single operand into
// that operand, the tree form of removing redundant brackets. An empty
// conjunction is vacuously true and an empty disjunction vacuously false.
func unwrapSingletons(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case and:
		if len(f) == 0 {
			return True, true
		}
		if len(f) == 1 {
			sub, _ := unwrapSingletons(f[0])
			return sub, true
		}
		subs, changed := unwrapSingletonsAll(f)
		return and(subs), changed
	case or:
		if len(f) == 0 {
			return False, true
		}
		if len(f) == 1 {
			sub, _ := unwrapSingletons(f[0])
			return sub, true
		}
		subs, changed := unwrapSingletonsAll(f)
		return or(subs), changed
	case not:
		sub, changed := unwrapSingletons(f[0])
		return not{sub}, changed
	case implication:
		left, ch1 := unwrapSingletons(f[0])
		right, ch2 := unwrapSingletons(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

func unwrapSingletonsAll(subs []Formula) ([]Formula, bool) {
	changed := false
	res := make([]Formula, len(subs))
	for i, s := range subs {
		var ch bool
		res[i], ch = unwrapSingletons(s)
		changed = changed || ch
	}
	return res, changed
}

// flattenAnds splices conjunctions nested directly inside a conjunction
// into their parent: (AaB)aC and Aa(BaC) both become AaBaC.
func flattenAnds(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case and:
		changed := false
		res := make(and, 0, len(f))
		for _, s := range f {
			sub, ch := flattenAnds(s)
			changed = changed || ch
			if nested, ok := sub.(and); ok {
				res = append(res, nested...)
				changed = true
			} else {
				res = append(res, sub)
			}
		}
		return res, changed
	case or:
		subs, changed := flattenAll(f, flattenAnds)
		return or(subs), changed
	case not:
		sub, changed := flattenAnds(f[0])
		return not{sub}, changed
	case implication:
		left, ch1 := flattenAnds(f[0])
		right, ch2 := flattenAnds(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

// flattenOrs is the disjunctive dual of flattenAnds.
func flattenOrs(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case or:
		changed := false
		res := make(or, 0, len(f))
		for _, s := range f {
			sub, ch := flattenOrs(s)
			changed = changed || ch
			if nested, ok := sub.(or); ok {
				res = append(res, nested...)
				changed = true
			} else {
				res = append(res, sub)
			}
		}
		return res, changed
	case and:
		subs, changed := flattenAll(f, flattenOrs)
		return and(subs), changed
	case not:
		sub, changed := flattenOrs(f[0])
		return not{sub}, changed
	case implication:
		left, ch1 := flattenOrs(f[0])
		right, ch2 := flattenOrs(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

func flattenAll(subs []Formula, fn func(Formula) (Formula, bool)) ([]Formula, bool) {
	changed := false
	res := make([]Formula, len(subs))
	for i, s := range subs {
		var ch bool
		res[i], ch = fn(s)
		changed = changed || ch
	}
	return res, changed
}

// operandKey gives an operand a comparison key for duplicate elimination.
// A flat clause keys as the set of its signed literals, so AvB and BvA
// compare equal. An operand nesting a further connective has no set form
// and falls back to its order-sensitive rendering, which deliberately
// leaves set-equivalent but differently ordered non-flat clauses alone.
func operandKey(f Formula) string {
	key, ok := clauseSet(f)
	if ok {
		return "set:" + key
	}
	return "raw:" + f.String()
}

func clauseSet(f Formula) (string, bool) {
	signed := func(f Formula) (string, bool) {
		switch f := f.(type) {
		case lit:
			return f.String(), true
		case not:
			if l, ok := f[0].(lit); ok {
				return "!" + l.String(), true
			}
		}
		return "", false
	}
	if s, ok := signed(f); ok {
		return s, true
	}
	var subs []Formula
	switch f := f.(type) {
	case and:
		subs = f
	case or:
		subs = f
	default:
		return "", false
	}
	seen := make(map[string]bool, len(subs))
	labels := make([]string, 0, len(subs))
	for _, s := range subs {
		label, ok := signed(s)
		if !ok {
			return "", false
		}
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return strings.Join(labels, "|"), true
}

// dropDuplicates removes, within every connective, later operands whose
// key equals an earlier one: AvA becomes A and (AvB)a(BvA) becomes AvB.
func dropDuplicates(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case and:
		subs, changed := dropDuplicatesIn(f)
		return and(subs), changed
	case or:
		subs, changed := dropDuplicatesIn(f)
		return or(subs), changed
	case not:
		sub, changed := dropDuplicates(f[0])
		return not{sub}, changed
	case implication:
		left, ch1 := dropDuplicates(f[0])
		right, ch2 := dropDuplicates(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

func dropDuplicatesIn(subs []Formula) ([]Formula, bool) {
	changed := false
	seen := make(map[string]bool, len(subs))
	res := make([]Formula, 0, len(subs))
	for _, s := range subs {
		sub, ch := dropDuplicates(s)
		changed = changed || ch
		key := operandKey(sub)
		if seen[key] {
			changed = true
			continue
		}
		seen[key] = true
		res = append(res, sub)
	}
	return res, changed
}

// distributeOrs applies Av(BaC) == (AvB)a(AvC) and its left-hand mirror,
// working on innermost subtrees first. Distributing over an n-ary
// conjunction pairs the neighboring operand with every conjunct.
func distributeOrs(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case or:
		subs, changed := distributeAll(f, distributeOrs)
		subs, ch := distributeInto(subs, true)
		if len(subs) == 1 {
			return subs[0], true
		}
		return or(subs), changed || ch
	case and:
		subs, changed := distributeAll(f, distributeOrs)
		return and(subs), changed
	case not:
		sub, changed := distributeOrs(f[0])
		return not{sub}, changed
	case implication:
		left, ch1 := distributeOrs(f[0])
		right, ch2 := distributeOrs(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

// distributeAnds is the disjunctive dual of distributeOrs, used for DNF:
// Aa(BvC) == (AaB)v(AaC).
func distributeAnds(f Formula) (Formula, bool) {
	switch f := f.(type) {
	case and:
		subs, changed := distributeAll(f, distributeAnds)
		subs, ch := distributeInto(subs, false)
		if len(subs) == 1 {
			return subs[0], true
		}
		return and(subs), changed || ch
	case or:
		subs, changed := distributeAll(f, distributeAnds)
		return or(subs), changed
	case not:
		sub, changed := distributeAnds(f[0])
		return not{sub}, changed
	case implication:
		left, ch1 := distributeAnds(f[0])
		right, ch2 := distributeAnds(f[1])
		return implication{left, right}, ch1 || ch2
	default:
		return f, false
	}
}

func distributeAll(subs []Formula, fn func(Formula) (Formula, bool)) ([]Formula, bool) {
	changed := false
	res := make([]Formula, len(subs))
	for i, s := range subs {
		var ch bool
		res[i], ch = fn(s)
		changed = changed || ch
	}
	return res, changed
}

// distributeInto repeatedly merges an opposite-kind operand with its
// neighbor until none remains at this level. For CNF the operands are
// disjuncts and the opposite kind is a conjunction; for DNF the dual.
// Each merge replaces the pair with a single connective of pairings,
// shrinking the operand list by one, so the loop terminates.
func distributeInto(subs []Formula, cnf bool) ([]Formula, bool) {
	changed := false
	for len(subs) >= 2 {
		target := -1
		for i, s := range subs {
			var isOpp bool
			if cnf {
				_, isOpp = s.(and)
			} else {
				_, isOpp = s.(or)
			}
			if isOpp {
				target = i
				break
			}
		}
		if target < 0 {
			break
		}
		partner := target - 1
		if target == 0 {
			partner = 1
		}
		var pieces []Formula
		if cnf {
			for _, p := range subs[target].(and) {
				pieces = append(pieces, or{subs[partner], p})
			}
		} else {
			for _, p := range subs[target].(or) {
				pieces = append(pieces, and{subs[partner], p})
			}
		}
		var merged Formula
		if cnf {
			merged = and(pieces)
		} else {
			merged = or(pieces)
		}
		lo, hi := partner, target
		if lo > hi {
			lo, hi = hi, lo
		}
		res := make([]Formula, 0, len(subs)-1)
		res = append(res, subs[:lo]...)
		res = append(res, merged)
		res = append(res, subs[hi+1:]...)
		subs = res
		changed = true
	}
	return subs, changed
}
