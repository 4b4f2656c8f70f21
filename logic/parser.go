package logic

import (
	"fmt"
	"strings"
)

// Parse validates the given formula string and turns it into its formula
// tree. Formulas are written with single uppercase letters for variables,
// "!" for negation, "a" for conjunction, "v" for disjunction, "->" for
// implication and parentheses for grouping. There is no operator
// precedence: adjacent connectives combine strictly left to right, so
// "AvBaC" reads as "(AvB)aC".
func Parse(s string) (Formula, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	// A double negation cancels before parsing even starts.
	for strings.Contains(s, "!!") {
		s = strings.ReplaceAll(s, "!!", "")
	}
	return fold(tokenize(s)), nil
}

// validate checks a formula string against the surface grammar. The checks
// run in a fixed order so that the reported reason is stable for a given
// kind of mistake.
func validate(s string) error {
	if s == "" {
		return &FormatError{Reason: "empty formula"}
	}
	if strings.Count(s, "(") != strings.Count(s, ")") || strings.Count(s, "-") != strings.Count(s, ">") {
		return &FormatError{Reason: "unbalanced brackets or implication signs"}
	}
	for _, c := range s {
		if !isUpper(byte(c)) && !strings.ContainsRune("!av->()", c) {
			return &FormatError{Reason: fmt.Sprintf("illegal character %q", c)}
		}
	}
	if strings.Contains(s, ")(") || strings.Contains(s, "()") {
		return &FormatError{Reason: "invalid use of brackets"}
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '-':
			if i+1 == len(s) || s[i+1] != '>' || i == 0 || !(isUpper(s[i-1]) || s[i-1] == ')') {
				return &FormatError{Reason: "invalid use of implication signs"}
			}
		case c == '>':
			if i == 0 || s[i-1] != '-' || i+1 == len(s) || !(isUpper(s[i+1]) || s[i+1] == '(') {
				return &FormatError{Reason: "invalid use of implication signs"}
			}
		case c == '(':
			depth++
		case c == ')':
			if depth--; depth < 0 {
				return &FormatError{Reason: "invalid use of brackets"}
			}
		case c == '!':
			if i+1 == len(s) || !(isUpper(s[i+1]) || s[i+1] == '(') {
				return &FormatError{Reason: "invalid use of negations"}
			}
		case c == 'a' || c == 'v':
			if i == 0 || !(isUpper(s[i-1]) || s[i-1] == ')') {
				return &FormatError{Reason: fmt.Sprintf("%q connective lacks a valid left operand", c)}
			}
			if i+1 == len(s) || !(isUpper(s[i+1]) || s[i+1] == '(' || s[i+1] == '!') {
				return &FormatError{Reason: fmt.Sprintf("%q connective lacks a valid right operand", c)}
			}
		case isUpper(c):
			if i+1 < len(s) && (isUpper(s[i+1]) || !strings.ContainsRune("av)-", rune(s[i+1]))) {
				return &FormatError{Reason: fmt.Sprintf("literal %q has an invalid right neighbor", c)}
			}
			if i > 0 && !strings.ContainsRune("av(!>", rune(s[i-1])) {
				return &FormatError{Reason: fmt.Sprintf("literal %q has an invalid left neighbor", c)}
			}
		}
	}
	return nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// A token is either a parsed operand or an operator marker ("a", "v" or
// "->") sitting between two operands.
type token struct {
	f  Formula
	op string
}

// tokenize turns a validated formula string into its token sequence. It
// recurses on the outermost bracket pair: the first unmatched "(" and its
// match are located by depth counting, the interior becomes a single
// operand token (negated when the pair is prefixed by "!") and the prefix
// and suffix are tokenized independently, their sequences concatenated.
func tokenize(s string) []token {
	start := strings.IndexByte(s, '(')
	if start < 0 {
		return tokenizeFlat(s)
	}
	depth, end := 0, -1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	inner := fold(tokenize(s[start+1 : end]))
	prefixEnd := start
	if start > 0 && s[start-1] == '!' {
		inner = negate(inner)
		prefixEnd = start - 1
	}
	toks := tokenize(s[:prefixEnd])
	toks = append(toks, token{f: inner})
	return append(toks, tokenize(s[end+1:])...)
}

// tokenizeFlat scans a bracket-free segment left to right. Operator
// characters accumulate until an uppercase letter or "!" starts the next
// operand.
func tokenizeFlat(s string) []token {
	var toks []token
	op := ""
	neg := false
	flushOp := func() {
		if op != "" {
			toks = append(toks, token{op: op})
			op = ""
		}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '!':
			flushOp()
			neg = true
		case isUpper(c):
			flushOp()
			f := Formula(lit(c))
			if neg {
				f = not{f}
				neg = false
			}
			toks = append(toks, token{f: f})
		default:
			op += string(c)
		}
	}
	flushOp()
	return toks
}

// fold combines a token sequence into a tree, strictly left to right.
// Validation guarantees operands and operators alternate once prefix and
// suffix sequences are concatenated around a bracket pair.
func fold(toks []token) Formula {
	var cur Formula
	pending := ""
	for _, t := range toks {
		if t.f == nil {
			pending = t.op
			continue
		}
		if cur == nil {
			cur = t.f
			continue
		}
		switch pending {
		case "a":
			cur = and{cur, t.f}
		case "v":
			cur = or{cur, t.f}
		case "->":
			cur = implication{cur, t.f}
		}
	}
	return cur
}
