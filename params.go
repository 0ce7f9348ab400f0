// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sidblayout

import (
	"errors"
	"io"
	"math"
	"math/rand"

	"github.com/2dChan/sidblayout/lattice"
	"github.com/charmbracelet/log"
)

const (
	DefaultMaxAttemptsPerSite            = 10_000_000
	DefaultNumberOfUniqueLayouts         = 1
	DefaultMaxAttemptsForMultipleLayouts = 1_000_000
)

// Params is a generation request.
type Params struct {
	// NumberOfSiDBs is the total number of cells the layout must hold afterwards.
	NumberOfSiDBs int
	// CoordinatePair spans the inclusive region; corner order does not matter.
	CoordinatePair [2]lattice.Coordinate
	// MinimumSpacing is the smallest allowed distance between two cells, measured
	// with the layout lattice's metric. Zero allows adjacent cells.
	MinimumSpacing float64
	// MaxAttemptsPerSite is the number of consecutive rejected candidates
	// tolerated before generation gives up. Zero means DefaultMaxAttemptsPerSite.
	MaxAttemptsPerSite int
	// Seed makes generation reproducible when set.
	Seed *int64

	// NumberOfUniqueLayouts is used by GenerateMultipleRandomLayouts only.
	// Zero means DefaultNumberOfUniqueLayouts.
	NumberOfUniqueLayouts int
	// MaxAttemptsForMultipleLayouts bounds how many generated layouts may be
	// discarded as duplicates by GenerateMultipleRandomLayouts.
	// Zero means DefaultMaxAttemptsForMultipleLayouts.
	MaxAttemptsForMultipleLayouts int
}

// DefaultParams returns a request for one SiDB at the origin.
func DefaultParams() Params {
	return Params{
		NumberOfSiDBs:                 1,
		MaxAttemptsPerSite:            DefaultMaxAttemptsPerSite,
		NumberOfUniqueLayouts:         DefaultNumberOfUniqueLayouts,
		MaxAttemptsForMultipleLayouts: DefaultMaxAttemptsForMultipleLayouts,
	}
}

// Validate checks the fields single-layout generation reads, without regard
// to a lattice. Zero budgets are valid and mean their defaults.
func (p Params) Validate() error {
	switch {
	case p.NumberOfSiDBs <= 0:
		return invalidParams("number of SiDBs must be positive, got %d", p.NumberOfSiDBs)
	case math.IsNaN(p.MinimumSpacing) || p.MinimumSpacing < 0:
		return invalidParams("minimum spacing must be non-negative, got %v", p.MinimumSpacing)
	case p.MaxAttemptsPerSite < 0:
		return invalidParams("max attempts per site must not be negative, got %d", p.MaxAttemptsPerSite)
	}
	for _, c := range p.CoordinatePair {
		if !c.InBounds() {
			return invalidParams("corner %v outside coordinate bounds", c)
		}
	}
	return nil
}

// validateMultiple checks the fields only GenerateMultipleRandomLayouts reads.
func (p Params) validateMultiple() error {
	switch {
	case p.NumberOfUniqueLayouts < 0:
		return invalidParams("number of unique layouts must not be negative, got %d", p.NumberOfUniqueLayouts)
	case p.MaxAttemptsForMultipleLayouts < 0:
		return invalidParams("max attempts for multiple layouts must not be negative, got %d",
			p.MaxAttemptsForMultipleLayouts)
	}
	return nil
}

// withDefaults replaces zero budgets by their defaults.
func (p Params) withDefaults() Params {
	if p.MaxAttemptsPerSite == 0 {
		p.MaxAttemptsPerSite = DefaultMaxAttemptsPerSite
	}
	if p.NumberOfUniqueLayouts == 0 {
		p.NumberOfUniqueLayouts = DefaultNumberOfUniqueLayouts
	}
	if p.MaxAttemptsForMultipleLayouts == 0 {
		p.MaxAttemptsForMultipleLayouts = DefaultMaxAttemptsForMultipleLayouts
	}
	return p
}

// GeneratorOptions holds the collaborators a generation call uses.
type GeneratorOptions struct {
	Rand   *rand.Rand
	Logger *log.Logger
}

// GeneratorOption configures GeneratorOptions. It returns an error for invalid input.
type GeneratorOption func(*GeneratorOptions) error

// WithRand injects the random source. It takes precedence over Params.Seed.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if r == nil {
			return errors.New("WithRand: rand must not be nil")
		}
		o.Rand = r
		return nil
	}
}

// WithLogger directs debug records to l. Output is discarded by default.
func WithLogger(l *log.Logger) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if l == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = l
		return nil
	}
}

func newGeneratorOptions(setters []GeneratorOption) (*GeneratorOptions, error) {
	opts := &GeneratorOptions{}
	for _, set := range setters {
		if err := set(opts); err != nil {
			return nil, err
		}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts, nil
}
