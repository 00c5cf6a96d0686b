package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source supplies uniform random integers to the generator.
type Source interface {
	// Intn returns a uniform random int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// pcgSource is a PCG generator guarded for use across goroutines.
type pcgSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func (s *pcgSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewSource returns a general-purpose pseudo-random source seeded from the
// system entropy pool.
func NewSource() Source {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return NewSeededSource(mrand.Uint64())
	}
	return newPCGSource(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return newPCGSource(seed, seed^0x9e3779b97f4a7c15)
}

func newPCGSource(seed1, seed2 uint64) *pcgSource {
	return &pcgSource{rng: mrand.New(mrand.NewPCG(seed1, seed2))}
}

type secureSource struct{}

// NewSecureSource returns a source backed by crypto/rand.
func NewSecureSource() Source {
	return secureSource{}
}

func (secureSource) Intn(n int) int {
	if n <= 0 {
		panic("crypto: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic("crypto: reading random source: " + err.Error())
	}
	return int(v.Int64())
}
