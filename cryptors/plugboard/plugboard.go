// Package plugboard swaps pairs of contacts before and after the rotor chain.
package plugboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/friendsofgo/errors"
)

// Pair is a plug cable joining contacts A and B.
type Pair struct {
	A, B int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d-%d", p.A, p.B)
}

// Plugboard is a set of disjoint pairs.  Contacts that are not plugged pass
// through unchanged.  The zero value and nil are empty plugboards.
type Plugboard struct {
	pairs []Pair
}

// New creates a plugboard from pairs.  No contact may appear twice and no
// pair may join a contact to itself.
func New(pairs ...Pair) (*Plugboard, error) {
	seen := make(map[int]struct{}, 2*len(pairs))
	for _, p := range pairs {
		if p.A < 0 || p.B < 0 {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "pair %v has a negative contact", p)
		}
		if p.A == p.B {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "pair %v joins a contact to itself", p)
		}
		for _, c := range []int{p.A, p.B} {
			if _, ok := seen[c]; ok {
				return nil, errors.Wrapf(cryptors.ErrConstruction, "contact %d is plugged more than once", c)
			}
			seen[c] = struct{}{}
		}
	}

	return &Plugboard{pairs: append([]Pair(nil), pairs...)}, nil
}

// ParsePairs parses pairs written as "a-b" separated by commas or white
// space, e.g. "1-23, 4-9".
func ParsePairs(s string) (*Plugboard, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		ab := strings.Split(f, "-")
		if len(ab) != 2 {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "pair %q is not of the form a-b", f)
		}
		a, err := strconv.Atoi(ab[0])
		if err != nil {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "pair %q: %v", f, err)
		}
		b, err := strconv.Atoi(ab[1])
		if err != nil {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "pair %q: %v", f, err)
		}
		pairs = append(pairs, Pair{a, b})
	}

	return New(pairs...)
}

// Swap returns the contact plugged to i, or i if it is not plugged.
func (pb *Plugboard) Swap(i int) int {
	if pb == nil {
		return i
	}
	for _, p := range pb.pairs {
		switch i {
		case p.A:
			return p.B
		case p.B:
			return p.A
		}
	}
	return i
}

// Pairs returns a copy of the plugged pairs.
func (pb *Plugboard) Pairs() []Pair {
	if pb == nil {
		return nil
	}
	return append([]Pair(nil), pb.pairs...)
}

// MaxIndex returns the largest plugged contact, or -1 if nothing is plugged.
func (pb *Plugboard) MaxIndex() int {
	m := -1
	for _, p := range pb.Pairs() {
		if p.A > m {
			m = p.A
		}
		if p.B > m {
			m = p.B
		}
	}
	return m
}

func (pb *Plugboard) String() string {
	s := make([]string, 0, len(pb.Pairs()))
	for _, p := range pb.Pairs() {
		s = append(s, p.String())
	}
	return strings.Join(s, ",")
}
