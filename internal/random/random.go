// Package random provides the per-game random source shared by the search tie-break,
// the starting side choice and the random strategies.
package random

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

const (
	bufferSize = 1024
	rounds     = 12
)

// Source is the only capability the engine needs from a generator.
// Sources are not safe for concurrent use; every game owns its own.
type Source interface {
	Intn(n int) int
}

// New - returns a ChaCha generator. A zero seed draws the key from system entropy,
// any other seed gives a reproducible stream.
func New(seed uint64) *frand.RNG {
	return NewStream(seed, 0)
}

// NewStream - the n-th independent generator of a seeded run. The seed and the stream index
// fill separate words of the key, so no two (seed, stream) pairs share a key.
func NewStream(seed uint64, stream int) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}

	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	binary.LittleEndian.PutUint64(key[8:], uint64(stream))

	return frand.NewCustom(key, bufferSize, rounds)
}

// Pick - returns a uniformly chosen element. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Side - returns SideA or SideB with equal probability.
func Side(src Source) entity.Side {
	return Pick(src, entity.Sides[:])
}
