// permutator project main.go
package permutator

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
	"github.com/friendsofgo/errors"
)

// Permutation is a bijection over the indices [0, size).  The inverse table
// is built once so both directions are constant time lookups.
type Permutation struct {
	size    int   // Number of contacts.
	wiring  []int // wiring[i] is the contact that i is wired to.
	inverse []int // inverse[wiring[i]] == i
}

// New creates a Permutation of n contacts wired in an order chosen by src.
func New(n int, src cryptors.Source) (*Permutation, error) {
	if err := cryptors.CheckContacts(n); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Wrap(cryptors.ErrConstruction, "nil random source")
	}
	return FromWiring(cryptors.Shuffle(n, src))
}

// FromWiring creates a Permutation from an explicit wiring table.  The table
// is copied.  It must have an even length and hold every index in
// [0, len(wiring)) exactly once.
func FromWiring(wiring []int) (*Permutation, error) {
	n := len(wiring)
	if err := cryptors.CheckContacts(n); err != nil {
		return nil, err
	}

	var p Permutation
	p.size = n
	p.wiring = make([]int, n)
	p.inverse = make([]int, n)
	seen := bitops.New(n)

	for i, v := range wiring {
		if v < 0 || v >= n {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "wiring[%d] = %d is not in [0, %d)", i, v, n)
		}
		if seen.TestAndAdd(v) {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "wiring[%d] = %d is used more than once", i, v)
		}
		p.wiring[i] = v
		p.inverse[v] = i
	}

	return &p, nil
}

// Size returns the number of contacts.
func (p *Permutation) Size() int {
	return p.size
}

// Wiring returns a copy of the wiring table.
func (p *Permutation) Wiring() []int {
	return append([]int(nil), p.wiring...)
}

// Forward returns the contact that i is wired to.
func (p *Permutation) Forward(i int) (int, error) {
	if err := cryptors.CheckIndex(i, p.size); err != nil {
		return 0, err
	}
	return p.wiring[i], nil
}

// Inverse returns the contact that is wired to i.
func (p *Permutation) Inverse(i int) (int, error) {
	if err := cryptors.CheckIndex(i, p.size); err != nil {
		return 0, err
	}
	v := p.inverse[i]
	if v < 0 || v >= p.size || p.wiring[v] != i {
		return 0, errors.Wrapf(cryptors.ErrNotFound, "no contact is wired to %d", i)
	}
	return v, nil
}

// Format writes the wiring as a Go slice literal prefixed by name.
func (p *Permutation) Format(name string) string {
	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("%s([]int{\n", name))

	for i := 0; i < p.size; i += 16 {
		end := i + 16
		if end > p.size {
			end = p.size
		}
		output.WriteString("\t")
		for _, k := range p.wiring[i:end] {
			output.WriteString(fmt.Sprintf("%d, ", k))
		}
		output.WriteString("\n")
	}

	output.WriteString("})")
	return output.String()
}

func (p *Permutation) String() string {
	return p.Format("permutator.FromWiring")
}
