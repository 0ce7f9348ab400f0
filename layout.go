// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package sidblayout generates random SiDB placements on a lattice.

package sidblayout

import (
	"fmt"

	"github.com/2dChan/sidblayout/lattice"
	"github.com/golang/geo/r2"
)

// Layout is an insertion-ordered set of cells on a single lattice.
// The zero value is an empty layout on lattice.Generic.
// A Layout is not safe for concurrent use.
type Layout struct {
	lat   lattice.Lattice
	cells []lattice.Coordinate
	index map[lattice.Coordinate]struct{}
}

// NewLayout returns an empty layout on lat. A nil lat means lattice.Generic.
func NewLayout(lat lattice.Lattice) *Layout {
	if lat == nil {
		lat = lattice.Generic{}
	}
	return &Layout{
		lat:   lat,
		index: make(map[lattice.Coordinate]struct{}),
	}
}

// Lattice returns the lattice the layout's cells live on.
func (l *Layout) Lattice() lattice.Lattice {
	if l.lat == nil {
		return lattice.Generic{}
	}
	return l.lat
}

// AddCell appends c. It returns ErrInvalidSite if c is not a site of the
// layout's lattice and ErrDuplicateCell if c is already occupied.
func (l *Layout) AddCell(c lattice.Coordinate) error {
	if lat := l.Lattice(); !lat.IsSite(c) {
		return fmt.Errorf("%w: %v on %v lattice", ErrInvalidSite, c, lat.Orientation())
	}
	if _, ok := l.index[c]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateCell, c)
	}
	if l.index == nil {
		l.index = make(map[lattice.Coordinate]struct{})
	}
	l.index[c] = struct{}{}
	l.cells = append(l.cells, c)
	return nil
}

// HasCell reports whether c is occupied.
func (l *Layout) HasCell(c lattice.Coordinate) bool {
	_, ok := l.index[c]
	return ok
}

// NumCells returns the number of cells in the layout.
func (l *Layout) NumCells() int {
	return len(l.cells)
}

// Cells returns a copy of the cells in insertion order.
func (l *Layout) Cells() []lattice.Coordinate {
	cells := make([]lattice.Coordinate, len(l.cells))
	copy(cells, l.cells)
	return cells
}

// Cell returns the i-th inserted cell.
// It returns an error if the index is out of range.
func (l *Layout) Cell(i int) (lattice.Coordinate, error) {
	if i < 0 || i >= len(l.cells) {
		return lattice.Coordinate{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(l.cells))
	}
	return l.cells[i], nil
}

// Clone returns an independent copy of l on the same lattice.
func (l *Layout) Clone() *Layout {
	c := NewLayout(l.Lattice())
	for _, cell := range l.cells {
		c.index[cell] = struct{}{}
	}
	c.cells = l.Cells()
	return c
}

// SameCells reports whether l and o hold the same set of cells, ignoring
// insertion order and lattice.
func (l *Layout) SameCells(o *Layout) bool {
	if len(l.cells) != len(o.cells) {
		return false
	}
	for _, c := range l.cells {
		if !o.HasCell(c) {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle containing the positions of all cells,
// in the units of the layout's lattice. An empty layout has empty bounds.
func (l *Layout) Bounds() r2.Rect {
	if len(l.cells) == 0 {
		return r2.EmptyRect()
	}
	pts := make([]r2.Point, len(l.cells))
	for i, c := range l.cells {
		pts[i] = l.Lattice().Position(c)
	}
	return r2.RectFromPoints(pts...)
}
