// bitops project bitops.go
package bitops

// Set is a fixed size bit set over the indices [0, n).
type Set []byte

// New returns a cleared Set large enough to hold n bits.
func New(n int) Set {
	return make(Set, (n+7)>>3)
}

// Add sets bit i.
func (s Set) Add(i int) Set {
	s[i>>3] |= 1 << (uint(i) & 7)
	return s
}

// Has reports whether bit i is set.
func (s Set) Has(i int) bool {
	return s[i>>3]&(1<<(uint(i)&7)) != 0
}

// TestAndAdd sets bit i and reports whether it was already set.
func (s Set) TestAndAdd(i int) bool {
	if s.Has(i) {
		return true
	}
	s.Add(i)
	return false
}
