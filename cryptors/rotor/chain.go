package rotor

import (
	"math/big"

	"github.com/bgallie/enigma/cryptors"
	"github.com/friendsofgo/errors"
)

// Chain is an ordered set of rotors terminated by a reflector.  spinStatus
// holds the offset of each rotor and is the only mutable state.
type Chain struct {
	rotors     []*Rotor
	reflector  *Reflector
	spinStatus []int
}

// NewChain creates a chain from rotors and reflector with every rotor at
// offset zero.  All rotors must have the same size as the reflector.
func NewChain(rotors []*Rotor, reflector *Reflector) (*Chain, error) {
	if reflector == nil {
		return nil, errors.Wrap(cryptors.ErrConstruction, "nil reflector")
	}
	for idx, r := range rotors {
		if r == nil {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "rotor %d is nil", idx)
		}
		if r.Size() != reflector.Size() {
			return nil, errors.Wrapf(cryptors.ErrConstruction,
				"rotor %d has %d contacts, reflector has %d", idx, r.Size(), reflector.Size())
		}
	}

	return &Chain{
		rotors:     append([]*Rotor(nil), rotors...),
		reflector:  reflector,
		spinStatus: make([]int, len(rotors)),
	}, nil
}

// Size returns the number of contacts.
func (c *Chain) Size() int {
	return c.reflector.Size()
}

// Len returns the number of rotors.
func (c *Chain) Len() int {
	return len(c.rotors)
}

func (c *Chain) Rotors() []*Rotor {
	return append([]*Rotor(nil), c.rotors...)
}

func (c *Chain) Reflector() *Reflector {
	return c.reflector
}

// Process passes i through the rotors, the reflector and back through the
// rotors, then advances the spin status.  Calling Process twice with the same
// input generally gives different outputs.  The spin status is untouched if
// an error is returned.
func (c *Chain) Process(i int) (int, error) {
	if err := cryptors.CheckIndex(i, c.Size()); err != nil {
		return 0, err
	}

	var err error
	cur := i
	for idx, r := range c.rotors {
		if cur, err = r.ForwardWithOffset(cur, c.spinStatus[idx]); err != nil {
			return 0, errors.Wrapf(err, "rotor %d forward", idx)
		}
	}

	if cur, err = c.reflector.Forward(cur); err != nil {
		return 0, errors.Wrap(err, "reflector")
	}

	for idx := len(c.rotors) - 1; idx >= 0; idx-- {
		if cur, err = c.rotors[idx].InverseWithOffset(cur, c.spinStatus[idx]); err != nil {
			return 0, errors.Wrapf(err, "rotor %d inverse", idx)
		}
	}

	c.advance()
	return cur, nil
}

// advance steps the spin status like an odometer.  The first rotor always
// turns, a rotor turning from N-1 back to 0 carries into the next one.
func (c *Chain) advance() {
	n := c.Size()
	for idx := range c.spinStatus {
		c.spinStatus[idx]++
		if c.spinStatus[idx] < n {
			break
		}
		c.spinStatus[idx] = 0
	}
}

// SpinStatus returns a copy of the current rotor offsets.
func (c *Chain) SpinStatus() []int {
	return append([]int(nil), c.spinStatus...)
}

// SetSpinStatus sets the rotor offsets.  v must have one offset per rotor,
// each in [0, N).
func (c *Chain) SetSpinStatus(v []int) error {
	if len(v) != len(c.rotors) {
		return errors.Wrapf(cryptors.ErrConstruction,
			"spin status has %d offsets, chain has %d rotors", len(v), len(c.rotors))
	}
	for idx, o := range v {
		if err := cryptors.CheckIndex(o, c.Size()); err != nil {
			return errors.Wrapf(err, "offset of rotor %d", idx)
		}
	}
	copy(c.spinStatus, v)
	return nil
}

// ResetSpinStatus turns every rotor back to offset zero.
func (c *Chain) ResetSpinStatus() {
	for idx := range c.spinStatus {
		c.spinStatus[idx] = 0
	}
}

// MaximalStates returns the number of distinct spin states, N**k.
func (c *Chain) MaximalStates() *big.Int {
	return cryptors.Power(c.Size(), len(c.rotors))
}

// Index returns the spin status as a number: the offset of rotor 0 is the
// least significant base N digit.  It equals the number of symbols processed
// since offset zero, modulo MaximalStates.
func (c *Chain) Index() *big.Int {
	n := big.NewInt(int64(c.Size()))
	idx := new(big.Int)
	for i := len(c.spinStatus) - 1; i >= 0; i-- {
		idx.Mul(idx, n)
		idx.Add(idx, big.NewInt(int64(c.spinStatus[i])))
	}
	return idx
}

// SetIndex sets the chain to the state it would be in after processing idx
// symbols from offset zero.
func (c *Chain) SetIndex(idx *big.Int) error {
	if idx == nil || idx.Sign() < 0 {
		return errors.Wrapf(cryptors.ErrRange, "index %v is negative", idx)
	}

	n := big.NewInt(int64(c.Size()))
	q := new(big.Int).Mod(idx, c.MaximalStates())
	r := new(big.Int)
	for i := range c.spinStatus {
		q.DivMod(q, n, r)
		c.spinStatus[i] = int(r.Int64())
	}
	return nil
}
