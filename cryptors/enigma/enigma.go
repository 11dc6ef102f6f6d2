// Package enigma assembles a plugboard and a rotor chain into a reciprocal
// rotor cipher machine.
//
// Encode is not idempotent: every call turns the rotors.  To decode, set the
// machine back to the spin status (or index) it had before encoding and feed
// it the cipher text.
package enigma

import (
	"math/big"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/friendsofgo/errors"
)

// Machine is not safe for concurrent use.
type Machine struct {
	contacts  int
	chain     *rotor.Chain
	plugboard *plugboard.Plugboard
}

// New builds a machine with rotorCount rotors and a reflector of contacts
// contacts, all wired by src.  A nil src uses a randomly seeded source.  A nil
// pb is an empty plugboard.
func New(contacts, rotorCount int, pb *plugboard.Plugboard, src cryptors.Source) (*Machine, error) {
	if err := cryptors.CheckContacts(contacts); err != nil {
		return nil, err
	}
	if rotorCount < 0 {
		return nil, errors.Wrapf(cryptors.ErrConstruction, "rotor count %d is negative", rotorCount)
	}
	if src == nil {
		src = cryptors.NewSource()
	}

	rotors := make([]*rotor.Rotor, rotorCount)
	for i := range rotors {
		r, err := rotor.New(contacts, src)
		if err != nil {
			return nil, errors.Wrapf(err, "rotor %d", i)
		}
		rotors[i] = r
	}

	reflector, err := rotor.NewReflector(contacts, src)
	if err != nil {
		return nil, errors.Wrap(err, "reflector")
	}

	chain, err := rotor.NewChain(rotors, reflector)
	if err != nil {
		return nil, err
	}

	return FromChain(chain, pb)
}

// FromChain builds a machine around an existing chain.  The machine takes
// ownership of chain.
func FromChain(chain *rotor.Chain, pb *plugboard.Plugboard) (*Machine, error) {
	if chain == nil {
		return nil, errors.Wrap(cryptors.ErrConstruction, "nil rotor chain")
	}
	if m := pb.MaxIndex(); m >= chain.Size() {
		return nil, errors.Wrapf(cryptors.ErrConstruction,
			"plugboard contact %d is not in [0, %d)", m, chain.Size())
	}
	if pb == nil {
		pb = &plugboard.Plugboard{}
	}

	return &Machine{
		contacts:  chain.Size(),
		chain:     chain,
		plugboard: pb,
	}, nil
}

// Contacts returns the size of the index space.
func (m *Machine) Contacts() int {
	return m.contacts
}

// Rotors returns the number of rotors.
func (m *Machine) Rotors() int {
	return m.chain.Len()
}

func (m *Machine) Chain() *rotor.Chain {
	return m.chain
}

func (m *Machine) Plugboard() *plugboard.Plugboard {
	return m.plugboard
}

// Encode enciphers (or deciphers) i and turns the rotors.
func (m *Machine) Encode(i int) (int, error) {
	if err := cryptors.CheckIndex(i, m.contacts); err != nil {
		return 0, err
	}
	o, err := m.chain.Process(m.plugboard.Swap(i))
	if err != nil {
		return 0, err
	}
	return m.plugboard.Swap(o), nil
}

// EncodeAll encodes each index of in, in order.  On error the rotors have
// turned once for every index before the failing one.
func (m *Machine) EncodeAll(in []int) ([]int, error) {
	out := make([]int, len(in))
	for i, v := range in {
		o, err := m.Encode(v)
		if err != nil {
			return nil, errors.Wrapf(err, "symbol %d", i)
		}
		out[i] = o
	}
	return out, nil
}

func (m *Machine) SpinStatus() []int {
	return m.chain.SpinStatus()
}

func (m *Machine) SetSpinStatus(v []int) error {
	return m.chain.SetSpinStatus(v)
}

func (m *Machine) ResetSpinStatus() {
	m.chain.ResetSpinStatus()
}

func (m *Machine) Index() *big.Int {
	return m.chain.Index()
}

func (m *Machine) SetIndex(idx *big.Int) error {
	return m.chain.SetIndex(idx)
}

func (m *Machine) MaximalStates() *big.Int {
	return m.chain.MaximalStates()
}
