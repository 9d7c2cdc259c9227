package decompose

import (
	"testing"

	"github.com/bfix/sumsquares/factor"
	"github.com/bfix/sumsquares/primetest"
)

func TestPrimeScenario(t *testing.T) {
	x, y, ok := Prime(13)
	if !ok || x != 2 || y != 3 {
		t.Fatalf("Prime(13) = (%d,%d,%v), want (2,3,true)", x, y, ok)
	}
}

func TestPrimeRejectsNonCandidates(t *testing.T) {
	for _, p := range []uint64{2, 3, 7, 11, 4, 1} {
		if _, _, ok := Prime(p); ok {
			t.Fatalf("Prime(%d) should fail (not prime, or not 1 mod 4)", p)
		}
	}
}

func TestPrimeAgreesWithItsPrime(t *testing.T) {
	for p := uint64(5); p < 2000; p++ {
		if !primetest.IsPrime(p) || p%4 != 1 {
			continue
		}
		x, y, ok := Prime(p)
		if !ok {
			t.Fatalf("Prime(%d) found no representation", p)
		}
		if x >= y || x == 0 {
			t.Fatalf("Prime(%d) = (%d,%d) violates 0 < x < y", p, x, y)
		}
		if x*x+y*y != p {
			t.Fatalf("Prime(%d) = (%d,%d), %d*%d+%d*%d = %d", p, x, y, x, x, y, y, x*x+y*y)
		}
	}
}

func containsPair(pairs []Pair, a, b uint64) bool {
	for _, p := range pairs {
		if p.A == a && p.B == b {
			return true
		}
	}
	return false
}

func TestNumberScenarios(t *testing.T) {
	cases := []struct {
		n     uint64
		wants [][2]uint64
	}{
		{50, [][2]uint64{{1, 7}}},
		{325, [][2]uint64{{1, 18}, {6, 17}, {10, 15}}},
		{21, nil},
	}
	for _, c := range cases {
		got := Number(c.n, 0)
		if len(got) != len(c.wants) {
			t.Fatalf("Number(%d) = %v, want %v", c.n, got, c.wants)
		}
		for _, w := range c.wants {
			if !containsPair(got, w[0], w[1]) {
				t.Fatalf("Number(%d) = %v, missing pair (%d,%d)", c.n, got, w[0], w[1])
			}
		}
	}
}

func TestNumberPerfectSquarePrime(t *testing.T) {
	// 25 = 5*5 (5 prime, 1 mod 4): exercises the exponent-2 enumeration
	// path rather than the single-prime shortcut.
	got := Number(25, 0)
	if !containsPair(got, 3, 4) {
		t.Fatalf("Number(25) = %v, want to contain (3,4)", got)
	}
}

func TestNumberPairsSatisfyEquation(t *testing.T) {
	for n := uint64(2); n < 2000; n++ {
		for _, p := range Number(n, 0) {
			if p.A >= p.B {
				t.Fatalf("Number(%d) pair (%d,%d) not canonically ordered", n, p.A, p.B)
			}
			if p.A*p.A+p.B*p.B != n {
				t.Fatalf("Number(%d) pair (%d,%d) does not sum to n", n, p.A, p.B)
			}
		}
	}
}

// bruteForce enumerates every (a,b), a<b, a*a+b*b==n by direct search,
// as an independent oracle for small n.
func bruteForce(n uint64) []Pair {
	var out []Pair
	for a := uint64(1); a*a < n; a++ {
		rem := n - a*a
		b := uint64(0)
		for bb := a + 1; bb*bb <= rem; bb++ {
			b = bb
		}
		if b > a && b*b == rem {
			out = append(out, Pair{A: a, B: b})
		}
	}
	return out
}

func TestNumberAgreesWithBruteForce(t *testing.T) {
	for n := uint64(2); n < 1500; n++ {
		want := bruteForce(n)
		got := Number(n, 0)
		if len(got) != len(want) {
			t.Fatalf("Number(%d) = %v, brute force = %v", n, got, want)
		}
		for _, w := range want {
			if !containsPair(got, w.A, w.B) {
				t.Fatalf("Number(%d) = %v, missing brute-force pair (%d,%d)", n, got, w.A, w.B)
			}
		}
	}
}

func TestNumberCheckCountBudget(t *testing.T) {
	// With an unreachably large checkCount, Number must report no
	// solutions even though unconstrained enumeration would find some.
	if got := Number(325, 1<<20); got != nil {
		t.Fatalf("Number(325, huge checkCount) = %v, want nil", got)
	}
}

func TestNumberZeroAndOne(t *testing.T) {
	if got := Number(0, 0); got != nil {
		t.Fatalf("Number(0) = %v, want nil", got)
	}
	if got := Number(1, 0); got != nil {
		t.Fatalf("Number(1) = %v, want nil", got)
	}
}

func TestNumberNoSolutionForMod3Square(t *testing.T) {
	// 9 = 3^2, 3 = 3 mod 4 with even exponent but no mod-1 prime at
	// all: empty mod1 set must short-circuit to no representation.
	got := Number(9, 0)
	if got != nil {
		t.Fatalf("Number(9) = %v, want nil", got)
	}
}

func TestNumberAgreesWithFactorize(t *testing.T) {
	n := uint64(1105) // 5 * 13 * 17, all 1 mod 4
	f := factor.Factorize(n, 0)
	if len(f) != 3 {
		t.Fatalf("Factorize(%d) = %v, want three distinct prime factors", n, f)
	}
	got := Number(n, 0)
	if len(got) == 0 {
		t.Fatalf("Number(%d) found no representations", n)
	}
	for _, p := range got {
		if p.A*p.A+p.B*p.B != n {
			t.Fatalf("Number(%d) pair (%d,%d) does not sum to n", n, p.A, p.B)
		}
	}
}
