package drill

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"
)

// Rand is the entropy source used by Draw. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a time-seeded source.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededRand maps a textual seed to a stable source so a drill can be replayed.
// An empty seed yields a time-seeded source.
func NewSeededRand(seed string) Rand {
	if seed == "" {
		return NewRand()
	}
	h := sha256.Sum256([]byte(seed))
	v := int64(binary.LittleEndian.Uint64(h[:8]))
	if v < 0 {
		v = -v
	}
	return rand.New(rand.NewSource(v))
}
