package cryptors

import (
	"testing"

	"github.com/friendsofgo/errors"
)

func TestShuffleIsPermutation(t *testing.T) {
	src := NewSeededSource(42)
	for _, n := range []int{2, 26, 256} {
		p := Shuffle(n, src)
		seen := make(map[int]bool, n)
		for _, v := range p {
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("Shuffle(%d) = %v is not a permutation", n, p)
			}
			seen[v] = true
		}
	}
}

func TestShuffleIsReproducible(t *testing.T) {
	a := Shuffle(26, NewSeededSource(7))
	b := Shuffle(26, NewSeededSource(7))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Shuffle with equal seeds diverged: %v != %v", a, b)
		}
	}
}

func TestCheckContacts(t *testing.T) {
	for _, n := range []int{2, 4, 26, 256} {
		if err := CheckContacts(n); err != nil {
			t.Errorf("CheckContacts(%d) = %v, want = nil", n, err)
		}
	}
	for _, n := range []int{-2, 0, 1, 3, 25} {
		if err := CheckContacts(n); !errors.Is(err, ErrConstruction) {
			t.Errorf("CheckContacts(%d) = %v, want = %v", n, err, ErrConstruction)
		}
	}
}

func TestCheckIndex(t *testing.T) {
	if err := CheckIndex(25, 26); err != nil {
		t.Errorf("CheckIndex(25, 26) = %v, want = nil", err)
	}
	for _, i := range []int{-1, 26, 100} {
		if err := CheckIndex(i, 26); !errors.Is(err, ErrRange) {
			t.Errorf("CheckIndex(%d, 26) = %v, want = %v", i, err, ErrRange)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ a, n, want int }{
		{5, 26, 5},
		{26, 26, 0},
		{27, 26, 1},
		{-1, 26, 25},
		{-27, 26, 25},
	}
	for _, tt := range tests {
		if got := Mod(tt.a, tt.n); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want = %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestPower(t *testing.T) {
	if got, want := Power(26, 3).Int64(), int64(17576); got != want {
		t.Errorf("Power(26, 3) = %d, want = %d", got, want)
	}
	if got, want := Power(26, 0).Int64(), int64(1); got != want {
		t.Errorf("Power(26, 0) = %d, want = %d", got, want)
	}
}
