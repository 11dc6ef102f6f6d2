// rotor
package rotor

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Rotor is a wired disk.  Its wiring never changes, the chain holding it
// supplies the offset the disk is currently rotated by.
type Rotor struct {
	perm *permutator.Permutation
}

// New creates a rotor of size contacts with a wiring chosen by src.
func New(size int, src cryptors.Source) (*Rotor, error) {
	p, err := permutator.New(size, src)
	if err != nil {
		return nil, err
	}
	return &Rotor{perm: p}, nil
}

// FromWiring creates a rotor from an explicit wiring table.
func FromWiring(wiring []int) (*Rotor, error) {
	p, err := permutator.FromWiring(wiring)
	if err != nil {
		return nil, err
	}
	return &Rotor{perm: p}, nil
}

func (r *Rotor) Size() int {
	return r.perm.Size()
}

func (r *Rotor) Wiring() []int {
	return r.perm.Wiring()
}

func (r *Rotor) Forward(i int) (int, error) {
	return r.perm.Forward(i)
}

func (r *Rotor) Inverse(i int) (int, error) {
	return r.perm.Inverse(i)
}

// ForwardWithOffset passes i through the rotor turned by offset contacts:
// (Forward((i + offset) mod N) - offset) mod N.
func (r *Rotor) ForwardWithOffset(i, offset int) (int, error) {
	return r.shifted(r.perm.Forward, i, offset)
}

// InverseWithOffset is the inverse of ForwardWithOffset for the same offset.
func (r *Rotor) InverseWithOffset(i, offset int) (int, error) {
	return r.shifted(r.perm.Inverse, i, offset)
}

func (r *Rotor) shifted(f func(int) (int, error), i, offset int) (int, error) {
	n := r.perm.Size()
	if err := cryptors.CheckIndex(i, n); err != nil {
		return 0, err
	}
	b, err := f(cryptors.Mod(i+offset, n))
	if err != nil {
		return 0, err
	}
	return cryptors.Mod(b-offset, n), nil
}

func (r *Rotor) String() string {
	return r.perm.Format("rotor.FromWiring")
}
