package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/propkit/propkit/debug"
)

// A Rule is one way to derive its head: every premise must hold. A Rule
// with no premises is a fact, unconditionally derivable.
type Rule struct {
	Premises []byte
	Head     byte
}

func (r Rule) String() string {
	if len(r.Premises) == 0 {
		return fmt.Sprintf("-> %c", r.Head)
	}
	ps := make([]string, len(r.Premises))
	for i, p := range r.Premises {
		ps[i] = string(rune(p))
	}
	return fmt.Sprintf("%s -> %c", strings.Join(ps, ","), r.Head)
}

// A derivation gathers every known way to derive one head: either it is an
// established fact, or it has alternative conjunctive premise lists.
type derivation struct {
	fact   bool
	bodies [][]byte
}

// DefaultMaxDepth bounds query recursion. The backward chainer has no
// cycle detection, so a circular rule set without a base case would
// otherwise recurse forever.
const DefaultMaxDepth = 4096

// A RuleBase accumulates definite rules and answers backward-chaining
// queries against them. It also tracks every literal symbol ever
// mentioned, derivable or not. A RuleBase is not safe for concurrent use.
type RuleBase struct {
	rules map[byte]*derivation
	known map[byte]bool

	// MaxDepth is the recursion ceiling for queries; exceeding it fails
	// with ErrCycleSuspected.
	MaxDepth int
}

// NewRuleBase returns an empty rule base with the default recursion
// ceiling.
func NewRuleBase() *RuleBase {
	return &RuleBase{
		rules:    make(map[byte]*derivation),
		known:    make(map[byte]bool),
		MaxDepth: DefaultMaxDepth,
	}
}

// Extract converts f to CNF and turns every definite clause, every clause
// with exactly one positive literal, into a rule. A lone positive literal
// becomes a fact. Clauses with zero or several positive literals
// contribute no rule, but their symbols still register as known.
func (rb *RuleBase) Extract(f Formula) {
	cnf := ToCNF(f)
	debug.Logf("CNF form of the given formula: %s", cnf)
	if conj, ok := cnf.(and); ok {
		for _, clause := range conj {
			rb.extractClause(clause)
		}
		return
	}
	rb.extractClause(cnf)
}

func (rb *RuleBase) extractClause(clause Formula) {
	operands := []Formula{clause}
	if disj, ok := clause.(or); ok {
		operands = disj
	}
	var positives, negatives []byte
	for _, op := range operands {
		switch op := op.(type) {
		case lit:
			rb.known[byte(op)] = true
			positives = append(positives, byte(op))
		case not:
			if l, ok := op[0].(lit); ok {
				rb.known[byte(l)] = true
				negatives = append(negatives, byte(l))
			}
		}
	}
	if len(positives) != 1 {
		return
	}
	rb.addDerivation(positives[0], negatives)
}

// addDerivation records one way to derive head. An empty body establishes
// a fact; a conditional body never overwrites an established fact.
func (rb *RuleBase) addDerivation(head byte, body []byte) {
	if len(body) == 0 {
		rb.rules[head] = &derivation{fact: true}
		return
	}
	d := rb.rules[head]
	if d == nil {
		rb.rules[head] = &derivation{bodies: [][]byte{body}}
		return
	}
	if !d.fact {
		d.bodies = append(d.bodies, body)
	}
}

// AddRule parses a textual rule and adds it to the base. Valid forms are
// "A" (a fact), "A->B" and "A,B->C", all literals single uppercase
// letters. Spaces are ignored. The base is only mutated once the whole
// rule has validated.
func (rb *RuleBase) AddRule(rule string) error {
	rule = strings.ReplaceAll(rule, " ", "")
	head, body, err := parseRule(rule)
	if err != nil {
		return err
	}
	rb.known[head] = true
	for _, p := range body {
		rb.known[p] = true
	}
	rb.addDerivation(head, body)
	return nil
}

func parseRule(rule string) (head byte, body []byte, err error) {
	bad := &FormatError{Reason: `invalid rule, expected forms like "A", "A->B" or "A,B->C"`}
	if !strings.Contains(rule, "->") {
		if len(rule) != 1 || !isUpper(rule[0]) {
			return 0, nil, bad
		}
		return rule[0], nil, nil
	}
	if strings.Count(rule, "-") != 1 || strings.Count(rule, ">") != 1 {
		return 0, nil, bad
	}
	arrow := strings.Index(rule, "->")
	after := rule[arrow+2:]
	if len(after) != 1 || !isUpper(after[0]) {
		return 0, nil, bad
	}
	for _, p := range strings.Split(rule[:arrow], ",") {
		if len(p) != 1 || !isUpper(p[0]) {
			return 0, nil, bad
		}
		body = append(body, p[0])
	}
	return after[0], body, nil
}

// Query reports whether the given literal is definitely derivable from the
// known rules. Absence of any rule for a literal is failure, not an error.
func (rb *RuleBase) Query(query string) (bool, error) {
	if len(query) != 1 || !isUpper(query[0]) {
		return false, &FormatError{Reason: "queries must be a single uppercase letter"}
	}
	return rb.resolve([]byte{query[0]}, 0)
}

// resolve answers a conjunctive goal list by backward chaining, left to
// right. A rule body under trial is spliced in front of the remaining
// goals. An empty goal list trivially succeeds.
func (rb *RuleBase) resolve(goals []byte, depth int) (bool, error) {
	if depth > rb.maxDepth() {
		return false, ErrCycleSuspected
	}
	if len(goals) == 0 {
		return true, nil
	}
	head, rest := goals[0], goals[1:]
	d := rb.rules[head]
	if d == nil {
		return false, nil
	}
	if d.fact {
		return rb.resolve(rest, depth+1)
	}
	for _, body := range d.bodies {
		next := make([]byte, 0, len(body)+len(rest))
		next = append(next, body...)
		next = append(next, rest...)
		ok, err := rb.resolve(next, depth+1)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (rb *RuleBase) maxDepth() int {
	if rb.MaxDepth > 0 {
		return rb.MaxDepth
	}
	return DefaultMaxDepth
}

// Shortcuts promotes every known literal that currently queries true to a
// fact. This is pure memoization: derivability is monotonic, rules are
// never retracted short of a full Clear, so a promoted literal can never
// become underivable again.
func (rb *RuleBase) Shortcuts() {
	for _, sym := range rb.knownSymbols() {
		if d := rb.rules[sym]; d != nil && d.fact {
			continue
		}
		ok, err := rb.resolve([]byte{sym}, 0)
		if err == nil && ok {
			debug.Logf("shortcut: %c now derives unconditionally", sym)
			rb.rules[sym] = &derivation{fact: true}
		}
	}
}

// Clear drops every rule and every known literal.
func (rb *RuleBase) Clear() {
	rb.rules = make(map[byte]*derivation)
	rb.known = make(map[byte]bool)
}

// Rules lists the current rules, facts first for each head, ordered by
// head symbol.
func (rb *RuleBase) Rules() []Rule {
	heads := lo.Keys(rb.rules)
	sort.Slice(heads, func(i, j int) bool { return heads[i] < heads[j] })
	var out []Rule
	for _, h := range heads {
		d := rb.rules[h]
		if d.fact {
			out = append(out, Rule{Head: h})
			continue
		}
		for _, b := range d.bodies {
			out = append(out, Rule{Premises: append([]byte(nil), b...), Head: h})
		}
	}
	return out
}

func (rb *RuleBase) knownSymbols() []byte {
	syms := lo.Keys(rb.known)
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
