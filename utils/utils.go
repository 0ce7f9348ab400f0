// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random sources and random coordinates for SiDB layouts.

package utils

import (
	"math/rand"
	"time"

	"github.com/2dChan/sidblayout/lattice"
)

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeededRand returns a generator seeded from the wall clock.
func NewTimeSeededRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

// GenerateRandomCoordinates generates cnt coordinates uniformly in the inclusive
// box spanned by lo and hi. Duplicates may occur.
// The seed parameter ensures reproducibility.
func GenerateRandomCoordinates(cnt int, lo, hi lattice.Coordinate, seed int64) []lattice.Coordinate {
	random := NewRand(seed)
	coords := make([]lattice.Coordinate, cnt)

	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	for i := 0; i < cnt; i++ {
		coords[i] = lattice.Coordinate{
			X: lo.X + random.Intn(w),
			Y: lo.Y + random.Intn(h),
		}
	}

	return coords
}
