package logic

import "github.com/propkit/propkit/debug"

// Interpretations holds the outcome of exhaustive truth-table enumeration:
// the distinct literal symbols of a formula, in discovery order, and every
// assignment over them that satisfies the formula. Each model aligns
// positionally with Symbols.
type Interpretations struct {
	Symbols []byte
	Models  [][]bool
}

// TrueInterpretations normalizes f to CNF and enumerates all 2^n truth
// assignments over its n distinct literals, recording the satisfying ones.
// The cost is deliberately exponential in the literal count; callers
// wanting a bound must reject wide formulas themselves.
func TrueInterpretations(f Formula) Interpretations {
	cnf := ToCNF(f)
	syms := symbols(cnf)
	res := Interpretations{Symbols: syms}
	n := uint(len(syms))
	model := make(map[byte]bool, n)
	for mask := 0; mask < 1<<n; mask++ {
		assignment := make([]bool, n)
		for i, s := range syms {
			v := (mask>>uint(i))&1 == 0
			model[s] = v
			assignment[i] = v
		}
		// Each assignment substitutes into its own deep copy so the
		// normalized tree stays reusable for the next one.
		if satisfied(substitute(cnf.clone(), model)) {
			debug.Logf("satisfying interpretation: %v over %s", assignment, string(syms))
			res.Models = append(res.Models, assignment)
		}
	}
	return res
}

// IsSatisfiable reports whether at least one truth assignment satisfies f.
func IsSatisfiable(f Formula) bool {
	return len(TrueInterpretations(f).Models) > 0
}

// IsContradiction reports whether no truth assignment satisfies f.
func IsContradiction(f Formula) bool {
	return len(TrueInterpretations(f).Models) == 0
}

// IsTautology reports whether every truth assignment satisfies f.
func IsTautology(f Formula) bool {
	res := TrueInterpretations(f)
	return len(res.Models) == 1<<uint(len(res.Symbols))
}

// symbols collects the distinct literal symbols of a tree, in the order
// they are first encountered.
func symbols(f Formula) []byte {
	var order []byte
	seen := make(map[byte]bool)
	var walk func(Formula)
	walk = func(f Formula) {
		switch f := f.(type) {
		case lit:
			if !seen[byte(f)] {
				seen[byte(f)] = true
				order = append(order, byte(f))
			}
		case not:
			walk(f[0])
		case and:
			for _, s := range f {
				walk(s)
			}
		case or:
			for _, s := range f {
				walk(s)
			}
		case implication:
			walk(f[0])
			walk(f[1])
		case boolConst:
		}
	}
	walk(f)
	return order
}

// substitute destructively replaces every literal in f with its binding,
// folding negated literals directly into constants. The caller passes a
// clone when the original must survive.
func substitute(f Formula, model map[byte]bool) Formula {
	switch f := f.(type) {
	case lit:
		return boolConst(model[byte(f)])
	case not:
		if l, ok := f[0].(lit); ok {
			return boolConst(!model[byte(l)])
		}
		f[0] = substitute(f[0], model)
		return f
	case and:
		for i, s := range f {
			f[i] = substitute(s, model)
		}
		return f
	case or:
		for i, s := range f {
			f[i] = substitute(s, model)
		}
		return f
	case implication:
		f[0] = substitute(f[0], model)
		f[1] = substitute(f[1], model)
		return f
	default:
		return f
	}
}

// satisfied reduces a fully substituted CNF tree to its truth value. A
// lone top-level disjunction, the whole CNF being one clause, reduces
// without the conjunction wrapper.
func satisfied(f Formula) bool {
	switch f := f.(type) {
	case boolConst:
		return bool(f)
	case or:
		b, ok := reduceOr(f).(boolConst)
		return ok && bool(b)
	case and:
		for i, s := range f {
			if clause, ok := s.(or); ok {
				f[i] = reduceOr(clause)
			}
		}
		b, ok := reduceAnd(f).(boolConst)
		return ok && bool(b)
	default:
		return false
	}
}

// reduceOr simplifies a disjunctive clause: false operands drop out, any
// true operand makes the clause true, and a clause left empty is false.
// Operands that are not yet constants survive as a partial clause.
func reduceOr(o or) Formula {
	res := make(or, 0, len(o))
	for _, s := range o {
		if b, ok := s.(boolConst); ok {
			if bool(b) {
				return True
			}
			continue
		}
		res = append(res, s)
	}
	switch len(res) {
	case 0:
		return False
	case 1:
		return res[0]
	}
	return res
}

// reduceAnd simplifies a conjunction: any false operand makes it false,
// all-true operands make it true.
func reduceAnd(a and) Formula {
	res := make(and, 0, len(a))
	for _, s := range a {
		if b, ok := s.(boolConst); ok {
			if !bool(b) {
				return False
			}
			continue
		}
		res = append(res, s)
	}
	switch len(res) {
	case 0:
		return True
	case 1:
		return res[0]
	}
	return res
}
