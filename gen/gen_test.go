package gen

import (
	"math/rand"
	"testing"

	"github.com/propkit/propkit/logic"
)

func distinctLetters(s string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' && !seen[c-'A'] {
			seen[c-'A'] = true
			n++
		}
	}
	return n
}

func TestFormulaParses(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := Formula(r, 15, 3)
		if _, err := logic.Parse(s); err != nil {
			t.Errorf("seed %d: generated %q, which does not parse: %v", seed, s, err)
		}
	}
}

func TestFormulaDeterministic(t *testing.T) {
	a := Formula(rand.New(rand.NewSource(42)), 20, 4)
	b := Formula(rand.New(rand.NewSource(42)), 20, 4)
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestFormulaLengthAndLiterals(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		s := Formula(r, 30, 5)
		if len(s) < 30 {
			t.Errorf("generated %q, shorter than requested minimum", s)
		}
		if got := distinctLetters(s); got != 5 {
			t.Errorf("generated %q with %d distinct literals; want 5", s, got)
		}
	}
}

func TestFormulaClampsArguments(t *testing.T) {
	cases := []struct {
		name                   string
		minLength, numLiterals int
		wantMinLen, wantLits   int
	}{
		{"negative length", -5, 3, 15, 3},
		{"zero literals", 15, 0, 15, 3},
		{"negative literals", 15, -2, 15, 3},
		{"too many literals", 15, 100, 15, 26},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(1))
			s := Formula(r, c.minLength, c.numLiterals)
			if len(s) < c.wantMinLen {
				t.Errorf("generated %q, shorter than %d", s, c.wantMinLen)
			}
			if got := distinctLetters(s); got != c.wantLits {
				t.Errorf("generated %q with %d distinct literals; want %d", s, got, c.wantLits)
			}
			if _, err := logic.Parse(s); err != nil {
				t.Errorf("generated %q, which does not parse: %v", s, err)
			}
		})
	}
}

func TestFormulaSingleLiteral(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := Formula(r, 0, 1)
		if got := distinctLetters(s); got != 1 {
			t.Errorf("seed %d: generated %q with %d distinct literals; want 1", seed, s, got)
		}
		if _, err := logic.Parse(s); err != nil {
			t.Errorf("seed %d: generated %q, which does not parse: %v", seed, s, err)
		}
	}
}
