// Package gen produces random formula strings in the surface notation the
// logic package parses. It is a pure producer: the core consumes its
// output through the normal parse entry point.
package gen

import (
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

const (
	defaultMinLength = 15
	defaultLiterals  = 3
	maxLiterals      = 26
)

var connectives = []string{"a", "v", "->"}

// Formula generates a random formula string of at least minLength
// characters over numLiterals distinct variables. Out-of-range arguments
// are clamped to the defaults rather than rejected. Every generated string
// is accepted by logic.Parse.
func Formula(r *rand.Rand, minLength, numLiterals int) string {
	if numLiterals < 1 {
		numLiterals = defaultLiterals
	}
	if numLiterals > maxLiterals {
		numLiterals = maxLiterals
	}
	if minLength < 0 {
		minLength = defaultMinLength
	}

	literals := make([]string, numLiterals)
	for i, idx := range r.Perm(maxLiterals)[:numLiterals] {
		literals[i] = string(rune('A' + idx))
	}

	// The building blocks: the literals, their negations, then random
	// parenthesized combinations of existing blocks.
	elements := append([]string{}, literals...)
	for _, l := range literals {
		elements = append(elements, "!"+l)
	}
	for len(elements) < numLiterals*4 {
		pick1 := elements[r.Intn(len(elements))]
		pick2 := elements[r.Intn(len(elements))]
		for pick1 == pick2 {
			pick2 = elements[r.Intn(len(elements))]
		}
		conn := connectives[r.Intn(len(connectives))]
		if r.Intn(4) == 0 && pick1[0] != '!' && len(pick1) > 1 && !lo.Contains(elements, "!("+pick1+")") {
			elements = append(elements, "!("+pick1+")")
		} else {
			elements = append(elements, "("+pick1+conn+pick2+")")
		}
	}

	result := elements[r.Intn(len(elements))]
	for len(result) < minLength {
		addition := elements[r.Intn(len(elements))]
		conn := connectives[r.Intn(len(connectives))]
		if r.Intn(2) == 0 {
			result = "(" + result + ")" + conn + addition
		} else {
			result = addition + conn + "(" + result + ")"
		}
	}

	// Patch in any literal that did not make it, replacing a letter that
	// occurs more than once.
	for _, l := range literals {
		if strings.Contains(result, l) {
			continue
		}
		for i := 0; i < len(result); i++ {
			c := result[i]
			if c >= 'A' && c <= 'Z' && strings.Count(result, string(rune(c))) > 1 {
				result = result[:i] + l + result[i+1:]
				break
			}
		}
	}
	return result
}
