// Package random provides seed generation for board sampling.
//
// Boards are deterministic with respect to their seed: the same seed, data
// and selection always produce the same board.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random non-zero seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// New returns a generator for seed. A zero seed is replaced by a fresh one,
// which is returned so the run can be reproduced.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		seed, err = NewSeed()
		if err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
