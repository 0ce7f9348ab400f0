// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sidblayout

import (
	"math/rand"

	"github.com/2dChan/sidblayout/lattice"
	"github.com/2dChan/sidblayout/utils"
	"github.com/charmbracelet/log"
)

type verdict int

const (
	accepted verdict = iota
	rejectedInvalidSite
	rejectedDuplicate
	rejectedTooClose
)

func (v verdict) String() string {
	switch v {
	case accepted:
		return "accepted"
	case rejectedInvalidSite:
		return "invalid site"
	case rejectedDuplicate:
		return "duplicate"
	case rejectedTooClose:
		return "too close"
	}
	return "unknown"
}

// validatePlacement decides whether c may be added to lyt. It does not modify lyt.
func validatePlacement(c lattice.Coordinate, lyt *Layout, spacing float64) verdict {
	lat := lyt.Lattice()
	if !lat.IsSite(c) {
		return rejectedInvalidSite
	}
	if lyt.HasCell(c) {
		return rejectedDuplicate
	}
	if spacing > 0 {
		for _, placed := range lyt.cells {
			if lat.Distance(c, placed) < spacing {
				return rejectedTooClose
			}
		}
	}
	return accepted
}

type state int

const (
	stateCollecting state = iota
	stateSatisfied
	stateExhausted
)

// generator runs the sample, validate, commit cycle on one layout.
type generator struct {
	lyt    *Layout
	region Region
	params Params
	random *rand.Rand
	logger *log.Logger

	state    state
	attempts int
}

func (g *generator) step() {
	c := sampleCoordinate(g.region, g.random)
	v := validatePlacement(c, g.lyt, g.params.MinimumSpacing)
	if v != accepted {
		g.attempts++
		if g.attempts >= g.params.MaxAttemptsPerSite {
			g.state = stateExhausted
		}
		return
	}
	// validatePlacement already ruled out non-sites and duplicates.
	_ = g.lyt.AddCell(c)
	g.attempts = 0
	if g.lyt.NumCells() >= g.params.NumberOfSiDBs {
		g.state = stateSatisfied
	}
}

func (g *generator) run() error {
	g.state = stateCollecting
	g.attempts = 0
	if g.lyt.NumCells() >= g.params.NumberOfSiDBs {
		g.state = stateSatisfied
	}
	for g.state == stateCollecting {
		g.step()
	}
	if g.state == stateExhausted {
		err := &ExhaustedError{
			Target:   g.params.NumberOfSiDBs,
			Placed:   g.lyt.NumCells(),
			Attempts: g.attempts,
		}
		g.logger.Debug("generation exhausted", "placed", err.Placed, "target", err.Target)
		return err
	}
	return nil
}

// setup holds what every generation call on one lattice shares.
type setup struct {
	params Params
	region Region
	random *rand.Rand
	logger *log.Logger
}

func prepare(lat lattice.Lattice, params Params, setters []GeneratorOption) (*setup, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	opts, err := newGeneratorOptions(setters)
	if err != nil {
		return nil, err
	}
	region, err := resolveRegion(lat, params.CoordinatePair)
	if err != nil {
		return nil, err
	}

	random := opts.Rand
	if random == nil {
		if params.Seed != nil {
			random = utils.NewRand(*params.Seed)
		} else {
			random = utils.NewTimeSeededRand()
		}
	}

	return &setup{params: params.withDefaults(), region: region, random: random, logger: opts.Logger}, nil
}

func (s *setup) generator(lyt *Layout) *generator {
	return &generator{
		lyt:    lyt,
		region: s.region,
		params: s.params,
		random: s.random,
		logger: s.logger,
	}
}

// Generate fills lyt until it holds params.NumberOfSiDBs cells, placing random
// sites of lyt's lattice inside the region given by params.CoordinatePair.
// A nil lyt is replaced by an empty layout on lattice.Generic.
//
// Cells already in lyt are kept and count towards the target. If the attempt
// budget runs out, Generate returns lyt with the cells placed so far together
// with an *ExhaustedError.
func Generate(lyt *Layout, params Params, setters ...GeneratorOption) (*Layout, error) {
	if lyt == nil {
		lyt = NewLayout(lattice.Generic{})
	}
	s, err := prepare(lyt.Lattice(), params, setters)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("generating random layout",
		"lattice", lyt.Lattice().Orientation(),
		"target", params.NumberOfSiDBs,
		"min", s.region.Min,
		"max", s.region.Max)
	if err := s.generator(lyt).run(); err != nil {
		return lyt, err
	}
	s.logger.Debug("layout generated", "cells", lyt.NumCells())

	return lyt, nil
}

// GenerateRandomLayout is Generate for the generic lattice. A non-nil lyt is
// generated on its own lattice.
func GenerateRandomLayout(lyt *Layout, params Params, setters ...GeneratorOption) (*Layout, error) {
	return Generate(lyt, params, setters...)
}

// GenerateRandomLayout100 is Generate for the H-Si(100)-2x1 lattice.
// A nil lyt is replaced by an empty Si100 layout.
func GenerateRandomLayout100(lyt *Layout, params Params, setters ...GeneratorOption) (*Layout, error) {
	lyt, err := requireOrientation(lyt, lattice.Si100{})
	if err != nil {
		return nil, err
	}
	return Generate(lyt, params, setters...)
}

// GenerateRandomLayout111 is Generate for the H-Si(111)-1x1 lattice.
// A nil lyt is replaced by an empty Si111 layout.
func GenerateRandomLayout111(lyt *Layout, params Params, setters ...GeneratorOption) (*Layout, error) {
	lyt, err := requireOrientation(lyt, lattice.Si111{})
	if err != nil {
		return nil, err
	}
	return Generate(lyt, params, setters...)
}

func requireOrientation(lyt *Layout, lat lattice.Lattice) (*Layout, error) {
	if lyt == nil {
		return NewLayout(lat), nil
	}
	if got := lyt.Lattice().Orientation(); got != lat.Orientation() {
		return nil, invalidParams("layout lattice is %v, want %v", got, lat.Orientation())
	}
	return lyt, nil
}
