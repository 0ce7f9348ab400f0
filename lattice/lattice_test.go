// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lattice

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

const eps = 1e-9

// Lattice

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		in      Orientation
		want    Lattice
		wantErr bool
	}{
		{"generic", OrientationGeneric, Generic{}, false},
		{"100", Orientation100, Si100{}, false},
		{"111", Orientation111, Si111{}, false},
		{"unknown", Orientation(7), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("New(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if err == nil && got.Orientation() != tt.in {
				t.Errorf("New(%v).Orientation() = %v, want %v", tt.in, got.Orientation(), tt.in)
			}
		})
	}
}

func TestOrientation_String(t *testing.T) {
	tests := []struct {
		in   Orientation
		want string
	}{
		{OrientationGeneric, "generic"},
		{Orientation100, "100"},
		{Orientation111, "111"},
		{Orientation(9), "Orientation(9)"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Orientation(%d).String() = %q, want %q", int(tt.in), got, tt.want)
		}
	}
}

func TestCoordinate_InBounds(t *testing.T) {
	tests := []struct {
		name string
		in   Coordinate
		want bool
	}{
		{"origin", Coordinate{0, 0}, true},
		{"corners", Coordinate{MinComponent, MaxComponent}, true},
		{"x above", Coordinate{MaxComponent + 1, 0}, false},
		{"y below", Coordinate{0, MinComponent - 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.InBounds(); got != tt.want {
				t.Errorf("%v.InBounds() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsSite(t *testing.T) {
	tests := []struct {
		name string
		lat  Lattice
		in   Coordinate
		want bool
	}{
		{"generic any", Generic{}, Coordinate{3, -8}, true},
		{"100 even row", Si100{}, Coordinate{5, 4}, true},
		{"100 odd row", Si100{}, Coordinate{5, 5}, true},
		{"111 even sum", Si111{}, Coordinate{10, 10}, true},
		{"111 odd sum", Si111{}, Coordinate{10, 11}, false},
		{"111 negative even sum", Si111{}, Coordinate{-3, 1}, true},
		{"111 negative odd sum", Si111{}, Coordinate{-3, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lat.IsSite(tt.in); got != tt.want {
				t.Errorf("%T.IsSite(%v) = %v, want %v", tt.lat, tt.in, got, tt.want)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name string
		lat  Lattice
		in   Coordinate
		want r2.Point
	}{
		{"generic", Generic{}, Coordinate{3, -2}, r2.Point{X: 3, Y: -2}},
		{"100 origin", Si100{}, Coordinate{0, 0}, r2.Point{X: 0, Y: 0}},
		{"100 upper dimer atom", Si100{}, Coordinate{1, 3}, r2.Point{X: 0.384, Y: 0.993}},
		{"100 negative row", Si100{}, Coordinate{0, -1}, r2.Point{X: 0, Y: -0.543}},
		{"111 offset site", Si111{}, Coordinate{1, 1}, r2.Point{X: 0.3325, Y: 0.192}},
		{"111 row site", Si111{}, Coordinate{2, 0}, r2.Point{X: 0.665, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lat.Position(tt.in)
			if got.Sub(tt.want).Norm() > eps {
				t.Errorf("%T.Position(%v) = %v, want %v", tt.lat, tt.in, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		lat  Lattice
		a, b Coordinate
		want float64
	}{
		{"generic 3-4-5", Generic{}, Coordinate{0, 0}, Coordinate{3, 4}, 5},
		{"100 dimer pair", Si100{}, Coordinate{0, 0}, Coordinate{0, 1}, 0.225},
		{"100 along row", Si100{}, Coordinate{0, 0}, Coordinate{1, 0}, 0.384},
		{"100 next dimer row", Si100{}, Coordinate{0, 1}, Coordinate{0, 2}, 0.543},
		{"111 diagonal neighbour", Si111{}, Coordinate{0, 0}, Coordinate{1, 1}, math.Hypot(0.3325, 0.192)},
		{"111 vertical neighbour", Si111{}, Coordinate{0, 0}, Coordinate{0, 2}, 0.384},
		{"same site", Si111{}, Coordinate{4, 2}, Coordinate{4, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lat.Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("%T.Distance(%v, %v) = %v, want %v", tt.lat, tt.a, tt.b, got, tt.want)
			}
			if back := tt.lat.Distance(tt.b, tt.a); math.Abs(back-got) > eps {
				t.Errorf("%T.Distance(%v, %v) = %v, want symmetric %v", tt.lat, tt.b, tt.a, back, got)
			}
		})
	}
}

func TestNumSites_MatchesEnumeration(t *testing.T) {
	boxes := []struct{ lo, hi Coordinate }{
		{Coordinate{10, 10}, Coordinate{10, 10}},
		{Coordinate{10, 11}, Coordinate{10, 11}},
		{Coordinate{0, 0}, Coordinate{4, 4}},
		{Coordinate{1, 0}, Coordinate{5, 4}},
		{Coordinate{-3, -2}, Coordinate{2, 5}},
		{Coordinate{-7, 0}, Coordinate{-7, 8}},
	}
	for _, lat := range []Lattice{Generic{}, Si100{}, Si111{}} {
		for _, b := range boxes {
			want := 0
			for x := b.lo.X; x <= b.hi.X; x++ {
				for y := b.lo.Y; y <= b.hi.Y; y++ {
					if lat.IsSite(Coordinate{x, y}) {
						want++
					}
				}
			}
			if got := lat.NumSites(b.lo, b.hi); got != want {
				t.Errorf("%T.NumSites(%v, %v) = %v, want %v", lat, b.lo, b.hi, got, want)
			}
		}
	}
}

func TestNumSites_Saturates(t *testing.T) {
	lo := Coordinate{MinComponent, MinComponent}
	hi := Coordinate{MaxComponent, MaxComponent}
	if got := (Generic{}).NumSites(lo, hi); got != math.MaxInt {
		t.Errorf("Generic.NumSites(%v, %v) = %v, want %v", lo, hi, got, math.MaxInt)
	}
	if got := (Si111{}).NumSites(lo, hi); got <= 0 {
		t.Errorf("Si111.NumSites(%v, %v) = %v, want positive", lo, hi, got)
	}
}
