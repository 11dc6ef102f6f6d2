package rotor

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/friendsofgo/errors"
)

func newTestChain(t *testing.T, n, k int, seed int64) *Chain {
	t.Helper()
	src := cryptors.NewSeededSource(seed)
	rotors := make([]*Rotor, k)
	for i := range rotors {
		r, err := New(n, src)
		if err != nil {
			t.Fatal(err)
		}
		rotors[i] = r
	}
	ref, err := NewReflector(n, src)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewChain(rotors, ref)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestChainKnownAnswer(t *testing.T) {
	r, err := FromWiring([]int{1, 3, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	ref, err := ReflectorFromWiring([]int{1, 0, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewChain([]*Rotor{r}, ref)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{2, 1, 2, 1}
	for i, w := range want {
		if got, err := c.Process(0); err != nil || got != w {
			t.Errorf("Process(0) #%d = %d, %v, want = %d", i, got, err, w)
		}
	}
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("SpinStatus() = %v after a full turn, want = [0]", got)
	}
}

func TestChainSizeMismatch(t *testing.T) {
	r, err := New(4, cryptors.NewSeededSource(1))
	if err != nil {
		t.Fatal(err)
	}
	ref, err := NewReflector(6, cryptors.NewSeededSource(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewChain([]*Rotor{r}, ref); !errors.Is(err, cryptors.ErrConstruction) {
		t.Errorf("NewChain with mismatched sizes = %v, want = %v", err, cryptors.ErrConstruction)
	}
	if _, err := NewChain([]*Rotor{r}, nil); !errors.Is(err, cryptors.ErrConstruction) {
		t.Errorf("NewChain with nil reflector = %v, want = %v", err, cryptors.ErrConstruction)
	}
}

func TestChainOdometer(t *testing.T) {
	tests := []struct {
		name  string
		start []int
		want  []int
	}{
		{"full carry", []int{3, 3, 3}, []int{0, 0, 0}},
		{"no carry", []int{0, 0, 3}, []int{1, 0, 3}},
		{"single carry", []int{3, 0, 0}, []int{0, 1, 0}},
		{"carry stops", []int{3, 2, 3}, []int{0, 3, 3}},
		{"last slot carries", []int{3, 3, 0}, []int{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChain(t, 4, 3, 11)
			if err := c.SetSpinStatus(tt.start); err != nil {
				t.Fatal(err)
			}
			if _, err := c.Process(1); err != nil {
				t.Fatal(err)
			}
			if got := c.SpinStatus(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SpinStatus() = %v, want = %v", got, tt.want)
			}
		})
	}
}

func TestChainPeriod(t *testing.T) {
	c := newTestChain(t, 4, 2, 12)
	first := make([]int, 16)
	for i := range first {
		first[i], _ = c.Process(2)
	}
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{0, 0}) {
		t.Fatalf("SpinStatus() = %v after N**k symbols, want = [0 0]", got)
	}
	for i := range first {
		if got, _ := c.Process(2); got != first[i] {
			t.Errorf("Process(2) #%d = %d on the second period, want = %d", i, got, first[i])
		}
	}
}

func TestChainIsReciprocal(t *testing.T) {
	enc := newTestChain(t, 26, 3, 13)
	dec := newTestChain(t, 26, 3, 13)

	for i := 0; i < 1000; i++ {
		in := i % 26
		c, err := enc.Process(in)
		if err != nil {
			t.Fatal(err)
		}
		if c == in {
			t.Fatalf("Process(%d) = %d, a reflector machine never maps a symbol to itself", in, c)
		}
		if got, err := dec.Process(c); err != nil || got != in {
			t.Fatalf("Process(Process(%d)) = %d, %v", in, got, err)
		}
	}
}

func TestChainProcessRangeLeavesState(t *testing.T) {
	c := newTestChain(t, 6, 2, 14)
	if err := c.SetSpinStatus([]int{2, 5}); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 6} {
		if _, err := c.Process(i); !errors.Is(err, cryptors.ErrRange) {
			t.Errorf("Process(%d) = %v, want = %v", i, err, cryptors.ErrRange)
		}
	}
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{2, 5}) {
		t.Errorf("SpinStatus() = %v after failed Process, want = [2 5]", got)
	}
}

func TestChainSetSpinStatus(t *testing.T) {
	c := newTestChain(t, 6, 3, 15)
	if err := c.SetSpinStatus([]int{1, 2}); !errors.Is(err, cryptors.ErrConstruction) {
		t.Errorf("SetSpinStatus(short) = %v, want = %v", err, cryptors.ErrConstruction)
	}
	if err := c.SetSpinStatus([]int{1, 2, 6}); !errors.Is(err, cryptors.ErrRange) {
		t.Errorf("SetSpinStatus(out of range) = %v, want = %v", err, cryptors.ErrRange)
	}
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{0, 0, 0}) {
		t.Errorf("SpinStatus() = %v after failed SetSpinStatus, want = [0 0 0]", got)
	}

	v := []int{1, 2, 3}
	if err := c.SetSpinStatus(v); err != nil {
		t.Fatal(err)
	}
	v[0] = 5
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("SpinStatus() = %v, want = [1 2 3]", got)
	}

	c.ResetSpinStatus()
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{0, 0, 0}) {
		t.Errorf("SpinStatus() = %v after reset, want = [0 0 0]", got)
	}
}

func TestChainIndex(t *testing.T) {
	c := newTestChain(t, 4, 2, 16)
	if got, want := c.MaximalStates().Int64(), int64(16); got != want {
		t.Errorf("MaximalStates() = %d, want = %d", got, want)
	}

	if err := c.SetSpinStatus([]int{3, 3}); err != nil {
		t.Fatal(err)
	}
	if got := c.Index().Int64(); got != 15 {
		t.Errorf("Index() = %d, want = 15", got)
	}

	if err := c.SetIndex(big.NewInt(17)); err != nil {
		t.Fatal(err)
	}
	if got := c.SpinStatus(); !reflect.DeepEqual(got, []int{1, 0}) {
		t.Errorf("SpinStatus() after SetIndex(17) = %v, want = [1 0]", got)
	}

	if err := c.SetIndex(big.NewInt(-1)); !errors.Is(err, cryptors.ErrRange) {
		t.Errorf("SetIndex(-1) = %v, want = %v", err, cryptors.ErrRange)
	}
}

func TestChainIndexCountsSymbols(t *testing.T) {
	c := newTestChain(t, 6, 3, 17)
	for i := 0; i < 100; i++ {
		if _, err := c.Process(0); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.Index().Int64(); got != 100 {
		t.Errorf("Index() = %d after 100 symbols, want = 100", got)
	}

	d := newTestChain(t, 6, 3, 17)
	if err := d.SetIndex(big.NewInt(100)); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c.SpinStatus(), d.SpinStatus()) {
		t.Errorf("SetIndex(100) = %v, processing 100 symbols = %v", d.SpinStatus(), c.SpinStatus())
	}
}

func TestChainWithoutRotors(t *testing.T) {
	ref, err := ReflectorFromWiring([]int{1, 0, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewChain(nil, ref)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if got, err := c.Process(2); err != nil || got != 3 {
			t.Errorf("Process(2) = %d, %v, want = 3", got, err)
		}
	}
	if got := c.MaximalStates().Int64(); got != 1 {
		t.Errorf("MaximalStates() = %d, want = 1", got)
	}
}
