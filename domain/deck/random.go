package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

// RandomSource draws the run lengths used by the shuffle passes.
type RandomSource interface {
	// Between returns a uniform integer in [lo, hi].
	Between(lo, hi int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type streamSource struct {
	stream cipher.Stream
}

// NewCryptoSource returns a non-reproducible source backed by the suite's
// cryptographic random stream.
func NewCryptoSource() RandomSource {
	return &streamSource{stream: suite.RandomStream()}
}

func (s *streamSource) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint64(hi-lo) + 1
	// reject the tail so every value in the span is equally likely
	limit := math.MaxUint64 - math.MaxUint64%span
	var zero, buf [8]byte
	for {
		s.stream.XORKeyStream(buf[:], zero[:])
		n := binary.LittleEndian.Uint64(buf[:])
		if n < limit {
			return lo + int(n%span)
		}
	}
}

type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a reproducible source: the same seed always yields
// the same sequence of draws.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}
