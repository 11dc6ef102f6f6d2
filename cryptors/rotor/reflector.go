package rotor

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
	"github.com/friendsofgo/errors"
)

// Reflector is a fixed wiring that pairs every contact with a different
// contact, so reflecting twice returns the original contact.
type Reflector struct {
	perm *permutator.Permutation
}

// NewReflector pairs size contacts at random.  The contacts are shuffled and
// the i'th contact from the front is paired with the i'th from the back.
func NewReflector(size int, src cryptors.Source) (*Reflector, error) {
	if err := cryptors.CheckContacts(size); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Wrap(cryptors.ErrConstruction, "nil random source")
	}

	order := cryptors.Shuffle(size, src)
	wiring := make([]int, size)
	for i := 0; i < size/2; i++ {
		a, b := order[i], order[size-1-i]
		wiring[a], wiring[b] = b, a
	}

	return ReflectorFromWiring(wiring)
}

// ReflectorFromWiring creates a reflector from an explicit wiring table.  The
// table must be a permutation with wiring[wiring[i]] == i and wiring[i] != i.
func ReflectorFromWiring(wiring []int) (*Reflector, error) {
	p, err := permutator.FromWiring(wiring)
	if err != nil {
		return nil, err
	}
	for i, v := range wiring {
		if v == i {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "reflector contact %d is wired to itself", i)
		}
		if wiring[v] != i {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "reflector contact %d is wired to %d but %d is wired to %d", i, v, v, wiring[v])
		}
	}
	return &Reflector{perm: p}, nil
}

func (r *Reflector) Size() int {
	return r.perm.Size()
}

func (r *Reflector) Wiring() []int {
	return r.perm.Wiring()
}

// Forward returns the partner of i.
func (r *Reflector) Forward(i int) (int, error) {
	return r.perm.Forward(i)
}

func (r *Reflector) String() string {
	return r.perm.Format("rotor.ReflectorFromWiring")
}
