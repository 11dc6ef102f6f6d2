package bitops

import "testing"

func TestSet(t *testing.T) {
	s := New(20)
	if got, want := len(s), 3; got != want {
		t.Fatalf("len(New(20)) = %d, want = %d", got, want)
	}

	for _, i := range []int{0, 7, 8, 19} {
		if s.Has(i) {
			t.Errorf("Has(%d) = true before Add", i)
		}
		s.Add(i)
		if !s.Has(i) {
			t.Errorf("Has(%d) = false after Add", i)
		}
	}
	if s.Has(1) || s.Has(9) {
		t.Error("Add set a neighbouring bit")
	}
}

func TestTestAndAdd(t *testing.T) {
	s := New(8)
	if s.TestAndAdd(5) {
		t.Error("first TestAndAdd(5) = true, want = false")
	}
	if !s.TestAndAdd(5) {
		t.Error("second TestAndAdd(5) = false, want = true")
	}
}
