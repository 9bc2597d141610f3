package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, n) for any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand. It is safe for concurrent use.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// SeededSource is a deterministic PCG-backed Source.
// It is NOT safe for concurrent use; give each goroutine its own.
type SeededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns a Source whose sequence is fully determined by (seed, stream).
// Distinct streams under the same seed yield independent sequences, which lets
// trial i of a run use stream i.
//
// Postcondition: two sources built from equal arguments produce equal sequences.
func NewSeededSource(seed, stream uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed, stream))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0.
func (s *SeededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.rng.IntN(n)
}

// Uint64 returns a pseudo-random 64-bit value, used to derive child seeds.
func (s *SeededSource) Uint64() uint64 {
	return s.rng.Uint64()
}
