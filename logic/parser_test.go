package logic

import (
	"errors"
	"fmt"
	"testing"
)

// To each expression, associate its expected rendering. Connectives fold
// strictly left to right when parentheses are absent.
var exprToString = map[string]string{
	"A":            "A",
	"!A":           "!A",
	"AvB":          "AvB",
	"AaB":          "AaB",
	"A->B":         "A->B",
	"!(AvB)":       "!(AvB)",
	"Av(BaC)":      "Av(BaC)",
	"(AvB)aC":      "(AvB)aC",
	"AvBaC":        "(AvB)aC",
	"A->B->C":      "(A->B)->C",
	"((A))vB":      "AvB",
	"!(AvB)aC":     "!(AvB)aC",
	"(Av!B)->!C":   "(Av!B)->!C",
	"Qv!Tv!W":      "(Qv!T)v!W",
	"A->(BvC)":     "A->(BvC)",
	"!(!(AvB))":    "AvB",
	"(AaB)v(CaD)":  "(AaB)v(CaD)",
	"Xa(Yv(ZaW))":  "Xa(Yv(ZaW))",
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToString {
		f, err := Parse(expr)
		if err != nil {
			t.Errorf("could not parse expression %q: %v", expr, err)
		} else if f.String() != expected {
			t.Errorf("for expression %q, expected %q, got %q", expr, expected, f.String())
		}
	}
}

var invalidExprs = map[string]string{
	"":        "empty formula",
	"(AvB":    "unbalanced brackets or implication signs",
	"A>B":     "unbalanced brackets or implication signs",
	"A-B":     "unbalanced brackets or implication signs",
	"xvB":     "illegal character",
	"A vB":    "illegal character",
	"A+B":     "illegal character",
	"(A)(B)":  "invalid use of brackets",
	"Av()":    "invalid use of brackets",
	"(A))v(B": "invalid use of brackets",
	"A->":     "invalid use of implication signs",
	"A-!>B":   "invalid use of implication signs",
	"->A":     "invalid use of implication signs",
	"!!A":     "invalid use of negations",
	"A!":      "invalid right neighbor",
	"!aB":     "invalid use of negations",
	"aAvB":    `'a' connective lacks a valid left operand`,
	"Av":      `'v' connective lacks a valid right operand`,
	"AB":      `literal 'A' has an invalid right neighbor`,
	"A!B":     `literal 'A' has an invalid right neighbor`,
	"(A)B":    `literal 'B' has an invalid left neighbor`,
}

func TestParseInvalid(t *testing.T) {
	for expr, reason := range invalidExprs {
		f, err := Parse(expr)
		if err == nil {
			t.Errorf("expression %q parsed to %q, expected an error", expr, f)
			continue
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("expression %q: expected a *FormatError, got %T", expr, err)
			continue
		}
		if !contains(ferr.Reason, reason) {
			t.Errorf("expression %q: expected reason %q, got %q", expr, reason, ferr.Reason)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestParseRoundTrip(t *testing.T) {
	for expr := range exprToString {
		f, err := Parse(expr)
		if err != nil {
			t.Fatalf("could not parse %q: %v", expr, err)
		}
		back, err := Parse(f.String())
		if err != nil {
			t.Errorf("rendering of %q does not parse: %v", expr, err)
		} else if back.String() != f.String() {
			t.Errorf("round trip of %q: got %q, want %q", expr, back.String(), f.String())
		}
	}
}

func ExampleParse() {
	f, err := Parse("!(AvB)->C")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f)
	// Output: !(AvB)->C
}
