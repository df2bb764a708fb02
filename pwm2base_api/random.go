package pwm2base_api

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"

	"github.com/carbocation/pfx"
)

// A random generator handle shared by all resolvers of a run
type RandomPicker struct {
	mu   sync.Mutex
	seed int64
	rng  *rand.Rand
}

// Create a picker with a fixed seed, the same seed yields the same picks
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Create a picker seeded from the system entropy source
func NewEntropyPicker() (*RandomPicker, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, pfx.Err(err)
	}
	return NewRandomPicker(int64(binary.LittleEndian.Uint64(buf[:]))), nil
}

// The seed the picker was created with
func (picker *RandomPicker) Seed() int64 {
	return picker.seed
}

// Pick one character of a 2, 3 or 4 character set, each with the same probability
func (picker *RandomPicker) Pick(set string) byte {
	switch len(set) {
	case 2, 3, 4:
	default:
		panic(fmt.Sprintf("pwm2base: cannot pick from a set of %d candidates", len(set)))
	}

	picker.mu.Lock()
	index := picker.rng.Intn(len(set))
	picker.mu.Unlock()
	return set[index]
}
