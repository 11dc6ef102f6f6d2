/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/friendsofgo/errors"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Alphabet maps the bytes of a text alphabet to rotor contacts and back.
type Alphabet struct {
	symbols  []byte
	index    [256]int
	foldCase bool
}

// NewAlphabet creates an alphabet whose i'th byte is contact i.  If foldCase
// is true, upper case ASCII letters not in the alphabet are looked up as
// their lower case form.
func NewAlphabet(s string, foldCase bool) (*Alphabet, error) {
	if err := cryptors.CheckContacts(len(s)); err != nil {
		return nil, errors.Wrapf(err, "alphabet %q", s)
	}

	a := Alphabet{symbols: []byte(s), foldCase: foldCase}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, b := range a.symbols {
		if a.index[b] >= 0 {
			return nil, errors.Wrapf(cryptors.ErrConstruction, "alphabet %q repeats %q", s, b)
		}
		a.index[b] = i
	}
	return &a, nil
}

// Len returns the number of symbols, which is the machine's contact count.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Index returns the contact for b.
func (a *Alphabet) Index(b byte) (int, bool) {
	if i := a.index[b]; i >= 0 {
		return i, true
	}
	if a.foldCase && b >= 'A' && b <= 'Z' {
		if i := a.index[b+'a'-'A']; i >= 0 {
			return i, true
		}
	}
	return -1, false
}

// Symbol returns the byte for contact i.
func (a *Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}
