// Package hash derives per-meeting random seeds.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// SeedFor folds a base seed and a meeting index into one 64-bit seed using
// XXH3. Consecutive meetings get unrelated seeds under a fixed base seed,
// while the (base, meeting) pair remains fully reproducible.
func SeedFor(base uint64, meeting int) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(meeting)) //nolint:gosec

	return xxh3.HashSeed(b[:], base)
}
