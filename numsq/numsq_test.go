package numsq

import (
	"errors"
	"testing"

	"github.com/bfix/sumsquares/kernelerr"
)

func TestFactorizeFacade(t *testing.T) {
	got := Factorize(360, 0)
	want := map[uint64]uint64{2: 3, 3: 2, 5: 1}
	if len(got) != len(want) {
		t.Fatalf("Factorize(360) = %v, want %v", got, want)
	}
	for p, e := range want {
		if got[p] != e {
			t.Fatalf("Factorize(360) = %v, want %v", got, want)
		}
	}
}

func TestIsPrimeFacade(t *testing.T) {
	if !IsPrime(97) || IsPrime(100) {
		t.Fatalf("IsPrime facade disagrees with expected primality of 97/100")
	}
}

func TestNextPrimeFacade(t *testing.T) {
	if got := NextPrime(14); got != 17 {
		t.Fatalf("NextPrime(14) = %d, want 17", got)
	}
}

func TestPrimeRangeFacade(t *testing.T) {
	r := NewPrimeRange(10, 30)
	var got []uint64
	for {
		p, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	want := []uint64{11, 13, 17, 19, 23, 29}
	if len(got) != len(want) {
		t.Fatalf("PrimeRange(10,30) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PrimeRange(10,30) = %v, want %v", got, want)
		}
	}
}

func TestIntegerNthRootFacade(t *testing.T) {
	r, ok := IntegerNthRoot(1000, 3)
	if !ok || r != 10 {
		t.Fatalf("IntegerNthRoot(1000,3) = (%d,%v), want (10,true)", r, ok)
	}
}

func TestISqrtFacade(t *testing.T) {
	if got := ISqrt(26); got != 5 {
		t.Fatalf("ISqrt(26) = %d, want 5", got)
	}
}

func TestPrimeFacadeSuccess(t *testing.T) {
	x, y, err := Prime(13)
	if err != nil || x != 2 || y != 3 {
		t.Fatalf("Prime(13) = (%d,%d,%v), want (2,3,nil)", x, y, err)
	}
}

func TestPrimeFacadeDomainError(t *testing.T) {
	_, _, err := Prime(7)
	if err == nil || !errors.Is(err, kernelerr.ErrDomain) {
		t.Fatalf("Prime(7) error = %v, want wrapped kernelerr.ErrDomain", err)
	}
}

func TestNumberFacadeSuccess(t *testing.T) {
	pairs, err := Number(50, 0)
	if err != nil || len(pairs) != 1 || pairs[0].A != 1 || pairs[0].B != 7 {
		t.Fatalf("Number(50,0) = (%v,%v), want ([{1 7}],nil)", pairs, err)
	}
}

func TestNumberFacadeNoRepresentation(t *testing.T) {
	_, err := Number(21, 0)
	if err == nil || !errors.Is(err, kernelerr.ErrNoRepresentation) {
		t.Fatalf("Number(21,0) error = %v, want wrapped kernelerr.ErrNoRepresentation", err)
	}
}
