// Package logic manipulates propositional formulas: parsing them from
// text, rewriting them into conjunctive or disjunctive normal form through
// repeated application of logical equivalences, deciding satisfiability by
// exhaustive truth-table enumeration, and answering backward-chaining
// queries against a base of definite rules.
//
// Formulas are written over single uppercase letters, with "!" for
// negation, "a" for conjunction, "v" for disjunction, "->" for implication
// and parentheses for grouping:
//
//	Av(BaC)
//	!(AvB)->C
//
// There is no operator precedence beyond parentheses; adjacent connectives
// combine strictly left to right.
//
// Normalization rewrites with the usual equivalences: implication
// elimination (A->B == !AvB), negation push-down (De Morgan), associative
// flattening, duplicate elimination and distribution. The satisfiability
// checks are deliberately naive, enumerating all 2^n assignments; this is
// not a SAT solver.
//
// A RuleBase extracts Horn-style definite rules from CNF clauses with
// exactly one positive literal and resolves queries by backward chaining.
// Resolution has no cycle detection beyond a recursion ceiling: a circular
// rule set without a base case fails with ErrCycleSuspected.
package logic
