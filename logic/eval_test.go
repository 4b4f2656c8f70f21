package logic

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrueInterpretations(t *testing.T) {
	got := TrueInterpretations(mustParse(t, "A->B"))
	want := Interpretations{
		Symbols: []byte("AB"),
		Models: [][]bool{
			{true, true},
			{false, true},
			{false, false},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interpretations of A->B mismatch (-want +got):\n%s", diff)
	}
}

func TestTrueInterpretationsSingleLiteral(t *testing.T) {
	got := TrueInterpretations(mustParse(t, "!A"))
	want := Interpretations{
		Symbols: []byte("A"),
		Models:  [][]bool{{false}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interpretations of !A mismatch (-want +got):\n%s", diff)
	}
}

func TestSatisfiability(t *testing.T) {
	tests := []struct {
		expr          string
		satisfiable   bool
		tautology     bool
		contradiction bool
	}{
		{"A", true, false, false},
		{"A->B", true, false, false},
		{"Av!A", true, true, false},
		{"Aa!A", false, false, true},
		{"(AvB)a(!Aa!B)", false, false, true},
		{"(A->B)v(B->A)", true, true, false},
		{"(AaB)vC", true, false, false},
		{"!(Av!A)", false, false, true},
	}
	for _, tt := range tests {
		f := mustParse(t, tt.expr)
		if got := IsSatisfiable(f); got != tt.satisfiable {
			t.Errorf("IsSatisfiable(%q) = %t, want %t", tt.expr, got, tt.satisfiable)
		}
		if got := IsTautology(f); got != tt.tautology {
			t.Errorf("IsTautology(%q) = %t, want %t", tt.expr, got, tt.tautology)
		}
		if got := IsContradiction(f); got != tt.contradiction {
			t.Errorf("IsContradiction(%q) = %t, want %t", tt.expr, got, tt.contradiction)
		}
	}
}

// A formula is a tautology exactly when its negation is a contradiction.
func TestTautologyContradictionDuality(t *testing.T) {
	for expr := range exprToCNF {
		f := mustParse(t, expr)
		if IsTautology(f) != IsContradiction(Not(f)) {
			t.Errorf("duality broken for %q", expr)
		}
	}
}

func TestSymbolCoverage(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"A", "A"},
		{"(AvB)a(BvC)", "ABC"},
		{"!Xv(Ya(ZvX))", "XYZ"},
	}
	for _, tt := range tests {
		got := TrueInterpretations(mustParse(t, tt.expr)).Symbols
		if diff := cmp.Diff([]byte(tt.want), got); diff != "" {
			t.Errorf("symbols of %q mismatch (-want +got):\n%s", tt.expr, diff)
		}
	}
}

// modelSet flattens interpretations into an order-independent set of
// assignment descriptions, so results over differently ordered symbol
// lists still compare equal.
func modelSet(in Interpretations) map[string]bool {
	set := make(map[string]bool, len(in.Models))
	order := append([]byte(nil), in.Symbols...)
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, m := range in.Models {
		byName := make(map[byte]bool, len(in.Symbols))
		for i, s := range in.Symbols {
			byName[s] = m[i]
		}
		desc := ""
		for _, s := range order {
			desc += fmt.Sprintf("%c=%t ", s, byName[s])
		}
		set[desc] = true
	}
	return set
}

// Normalization preserves meaning: a formula and its CNF and DNF forms
// satisfy exactly the same assignments.
func TestNormalFormsEquivalent(t *testing.T) {
	for expr := range exprToCNF {
		f := mustParse(t, expr)
		base := modelSet(TrueInterpretations(f))
		cnf := modelSet(TrueInterpretations(ToCNF(f)))
		dnf := modelSet(TrueInterpretations(ToDNF(f)))
		if diff := cmp.Diff(base, cnf); diff != "" {
			t.Errorf("CNF of %q changed its models (-want +got):\n%s", expr, diff)
		}
		if diff := cmp.Diff(base, dnf); diff != "" {
			t.Errorf("DNF of %q changed its models (-want +got):\n%s", expr, diff)
		}
	}
}

func ExampleIsSatisfiable() {
	f, _ := Parse("A->B")
	fmt.Println(IsSatisfiable(f))
	// Output: true
}

func ExampleIsContradiction() {
	f, _ := Parse("Aa!A")
	fmt.Println(IsContradiction(f))
	// Output: true
}
