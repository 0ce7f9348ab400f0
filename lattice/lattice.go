// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lattice describes the surfaces SiDBs can be placed on: which integer
// coordinates are physical sites and how far apart two sites are.
package lattice

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

const (
	// MinComponent and MaxComponent bound each component of a Coordinate.
	MinComponent = math.MinInt32
	MaxComponent = math.MaxInt32

	// angstromToNm converts lattice constants to nanometers.
	angstromToNm = 0.1
)

// Coordinate identifies a lattice cell. Its meaning depends on the Lattice in use.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether both components lie in [MinComponent, MaxComponent].
func (c Coordinate) InBounds() bool {
	return c.X >= MinComponent && c.X <= MaxComponent &&
		c.Y >= MinComponent && c.Y <= MaxComponent
}

// Orientation names a lattice surface.
type Orientation int

const (
	OrientationGeneric Orientation = iota
	Orientation100
	Orientation111
)

func (o Orientation) String() string {
	switch o {
	case OrientationGeneric:
		return "generic"
	case Orientation100:
		return "100"
	case Orientation111:
		return "111"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Lattice classifies coordinates and measures distances on one surface orientation.
// Implementations are immutable and safe for concurrent use.
type Lattice interface {
	Orientation() Orientation
	// IsSite reports whether c is a physical site.
	IsSite(c Coordinate) bool
	// Position returns the location of c in the lattice's metric space.
	Position(c Coordinate) r2.Point
	// Distance returns the Euclidean distance between the positions of a and b.
	Distance(a, b Coordinate) float64
	// NumSites counts the sites in the inclusive box [lo, hi].
	// lo must not exceed hi on either axis.
	NumSites(lo, hi Coordinate) int
}

// New returns the descriptor for o.
func New(o Orientation) (Lattice, error) {
	switch o {
	case OrientationGeneric:
		return Generic{}, nil
	case Orientation100:
		return Si100{}, nil
	case Orientation111:
		return Si111{}, nil
	}
	return nil, fmt.Errorf("lattice: unknown orientation %v", o)
}

func boxSize(lo, hi Coordinate) (int, int) {
	return hi.X - lo.X + 1, hi.Y - lo.Y + 1
}

// boxArea returns w*h, saturating at math.MaxInt.
func boxArea(lo, hi Coordinate) int {
	w, h := boxSize(lo, hi)
	if w > math.MaxInt/h {
		return math.MaxInt
	}
	return w * h
}

func distance(l Lattice, a, b Coordinate) float64 {
	return l.Position(a).Sub(l.Position(b)).Norm()
}

// Generic is a plain square lattice measured in lattice units.
type Generic struct{}

func (Generic) Orientation() Orientation { return OrientationGeneric }

func (Generic) IsSite(Coordinate) bool { return true }

func (Generic) Position(c Coordinate) r2.Point {
	return r2.Point{X: float64(c.X), Y: float64(c.Y)}
}

func (g Generic) Distance(a, b Coordinate) float64 {
	return distance(g, a, b)
}

func (Generic) NumSites(lo, hi Coordinate) int {
	return boxArea(lo, hi)
}

// Si100 is the H-Si(100)-2x1 surface. The y component encodes the dimer row and
// the atom within the dimer: y = 2*row + z with z in {0, 1}. Every coordinate is
// a site. Positions are in nanometers.
type Si100 struct{}

// H-Si(100)-2x1 lattice constants in angstrom.
const (
	Si100LatA  = 3.84
	Si100LatB  = 7.68
	Si100LatCY = 2.25
)

func (Si100) Orientation() Orientation { return Orientation100 }

func (Si100) IsSite(Coordinate) bool { return true }

func (Si100) Position(c Coordinate) r2.Point {
	row, z := floorDiv2(c.Y)
	return r2.Point{
		X: float64(c.X) * Si100LatA * angstromToNm,
		Y: (float64(row)*Si100LatB + float64(z)*Si100LatCY) * angstromToNm,
	}
}

func (s Si100) Distance(a, b Coordinate) float64 {
	return distance(s, a, b)
}

func (Si100) NumSites(lo, hi Coordinate) int {
	return boxArea(lo, hi)
}

// Si111 is the H-Si(111)-1x1 surface in doubled coordinates: (x, y) is a site
// iff x+y is even. Positions are in nanometers.
type Si111 struct{}

// H-Si(111)-1x1 lattice constants in angstrom.
const (
	Si111LatA = 6.65
	Si111LatB = 3.84
)

func (Si111) Orientation() Orientation { return Orientation111 }

func (Si111) IsSite(c Coordinate) bool {
	return (c.X+c.Y)&1 == 0
}

func (Si111) Position(c Coordinate) r2.Point {
	return r2.Point{
		X: float64(c.X) * Si111LatA / 2 * angstromToNm,
		Y: float64(c.Y) * Si111LatB / 2 * angstromToNm,
	}
}

func (s Si111) Distance(a, b Coordinate) float64 {
	return distance(s, a, b)
}

func (Si111) NumSites(lo, hi Coordinate) int {
	total := boxArea(lo, hi)
	if total%2 == 0 || total == math.MaxInt {
		return total / 2
	}
	// Odd box: all four corners share the parity of lo.
	if (lo.X+lo.Y)&1 == 0 {
		return total/2 + 1
	}
	return total / 2
}

// floorDiv2 splits v into q and r with v = 2*q + r and r in {0, 1}.
func floorDiv2(v int) (int, int) {
	r := v & 1
	return (v - r) / 2, r
}
