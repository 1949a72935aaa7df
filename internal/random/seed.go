// Package random provides seed generation for the computer player.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// SeedOrNew returns seed unless it is zero, in which case a fresh one is generated.
func SeedOrNew(seed uint64) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}

	return NewSeed()
}
