// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sidblayout

import (
	"math/rand"

	"github.com/2dChan/sidblayout/lattice"
)

// Region is an inclusive axis-aligned box of coordinates with Min <= Max on both axes.
type Region struct {
	Min, Max lattice.Coordinate
}

// NewRegion returns the box spanned by two corners given in any order.
func NewRegion(a, b lattice.Coordinate) Region {
	return Region{
		Min: lattice.Coordinate{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: lattice.Coordinate{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func (r Region) Width() int {
	return r.Max.X - r.Min.X + 1
}

func (r Region) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

func (r Region) Contains(c lattice.Coordinate) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// resolveRegion normalizes pair and checks that it hosts at least one site of lat.
func resolveRegion(lat lattice.Lattice, pair [2]lattice.Coordinate) (Region, error) {
	for _, c := range pair {
		if !c.InBounds() {
			return Region{}, invalidParams("corner %v outside coordinate bounds", c)
		}
	}
	r := NewRegion(pair[0], pair[1])
	if lat.NumSites(r.Min, r.Max) == 0 {
		return Region{}, invalidParams("region %v-%v has no %v lattice sites", r.Min, r.Max, lat.Orientation())
	}
	return r, nil
}

// sampleCoordinate draws a coordinate uniformly from r, x before y. An axis of
// width one consumes no randomness.
func sampleCoordinate(r Region, random *rand.Rand) lattice.Coordinate {
	c := r.Min
	if w := r.Width(); w > 1 {
		c.X += random.Intn(w)
	}
	if h := r.Height(); h > 1 {
		c.Y += random.Intn(h)
	}
	return c
}
