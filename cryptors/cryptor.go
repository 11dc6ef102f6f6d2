// cyptor
package cryptors

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand"

	"github.com/friendsofgo/errors"
)

const (
	// DefaultContacts is the number of contacts on a rotor wired for the
	// lower case latin alphabet.
	DefaultContacts = 26
	// DefaultRotorCount is the number of rotors in a default rotor chain.
	DefaultRotorCount = 3
	// MinimumContacts is the smallest contact count a reflector can pair.
	MinimumContacts = 2
)

var (
	// ErrConstruction is returned when a component is built from an invalid
	// description (odd contact count, broken wiring, mismatched sizes...).
	ErrConstruction = errors.New("construction error")
	// ErrRange is returned when an index falls outside [0, N).
	ErrRange = errors.New("index out of range")
	// ErrNotFound is returned when an inverse lookup has no forward entry.
	ErrNotFound = errors.New("index not found")

	// Define big ints zero and one.
	BigZero = big.NewInt(0)
	BigOne  = big.NewInt(1)
)

// Source is the random number generator used to wire rotors and reflectors.
// Intn returns a value in [0, n).  *math/rand.Rand and *tntengine.Rand both
// satisfy it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a Source seeded from crypto/rand.
func NewSource() Source {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}
	return NewSeededSource(int64(binary.LittleEndian.Uint64(seed[:])))
}

// NewSeededSource returns a reproducible Source.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Shuffle returns the values 0 .. n-1 in an order chosen by src.
func Shuffle(n int, src Source) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// CheckContacts verifies that n is a usable contact count.
func CheckContacts(n int) error {
	if n < MinimumContacts {
		return errors.Wrapf(ErrConstruction, "contact count %d is less than %d", n, MinimumContacts)
	}
	if n%2 != 0 {
		return errors.Wrapf(ErrConstruction, "contact count %d is not even", n)
	}
	return nil
}

// CheckIndex verifies that i lies in [0, n).
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return errors.Wrapf(ErrRange, "index %d not in [0, %d)", i, n)
	}
	return nil
}

// Mod returns a mod n in the range [0, n).
func Mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// Power returns base**exp as a big.Int.
func Power(base, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}
