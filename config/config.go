// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config reads generation requests from TOML files.
//
// Example:
//
//	lattice = "111"
//	number_of_sidbs = 10
//	coordinate_pair = [[0, 0], [20, 20]]
//	minimum_spacing = 0.5
//	random_seed = 42
//
// Keys that are left out keep the values of sidblayout.DefaultParams.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2dChan/sidblayout"
	"github.com/2dChan/sidblayout/lattice"
	"github.com/BurntSushi/toml"
)

// file mirrors the TOML document.
type file struct {
	Lattice                       string  `toml:"lattice"`
	NumberOfSiDBs                 *int    `toml:"number_of_sidbs"`
	CoordinatePair                [][]int `toml:"coordinate_pair"`
	MinimumSpacing                float64 `toml:"minimum_spacing"`
	MaxAttemptsPerSite            *int    `toml:"max_attempts_per_site"`
	RandomSeed                    *int64  `toml:"random_seed"`
	NumberOfUniqueLayouts         *int    `toml:"number_of_unique_layouts"`
	MaxAttemptsForMultipleLayouts *int    `toml:"max_attempts_for_multiple_layouts"`
}

// Config is a validated generation request.
type Config struct {
	Orientation lattice.Orientation
	Params      sidblayout.Params
}

// Lattice returns the descriptor for c.Orientation.
func (c Config) Lattice() (lattice.Lattice, error) {
	lat, err := lattice.New(c.Orientation)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return lat, nil
}

// ParseOrientation maps a lattice name to its orientation. The empty string
// selects the generic lattice.
func ParseOrientation(name string) (lattice.Orientation, error) {
	switch name {
	case "", "generic":
		return lattice.OrientationGeneric, nil
	case "100":
		return lattice.Orientation100, nil
	case "111":
		return lattice.Orientation111, nil
	}
	return 0, fmt.Errorf("config: unknown lattice %q (want generic, 100 or 111)", name)
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads and validates a TOML document from r.
func Decode(r io.Reader) (Config, error) {
	var raw file
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}

	o, err := ParseOrientation(raw.Lattice)
	if err != nil {
		return Config{}, err
	}

	params := sidblayout.DefaultParams()
	if raw.NumberOfSiDBs != nil {
		params.NumberOfSiDBs = *raw.NumberOfSiDBs
	}
	if raw.CoordinatePair != nil {
		if len(raw.CoordinatePair) != 2 {
			return Config{}, fmt.Errorf("config: coordinate_pair needs 2 corners, got %d", len(raw.CoordinatePair))
		}
		for i, xy := range raw.CoordinatePair {
			if len(xy) != 2 {
				return Config{}, fmt.Errorf("config: coordinate_pair[%d] needs 2 components, got %d", i, len(xy))
			}
			params.CoordinatePair[i] = lattice.Coordinate{X: xy[0], Y: xy[1]}
		}
	}
	params.MinimumSpacing = raw.MinimumSpacing
	if raw.MaxAttemptsPerSite != nil {
		params.MaxAttemptsPerSite = *raw.MaxAttemptsPerSite
	}
	params.Seed = raw.RandomSeed
	if raw.NumberOfUniqueLayouts != nil {
		params.NumberOfUniqueLayouts = *raw.NumberOfUniqueLayouts
	}
	if raw.MaxAttemptsForMultipleLayouts != nil {
		params.MaxAttemptsForMultipleLayouts = *raw.MaxAttemptsForMultipleLayouts
	}

	if err := params.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	// Config files always feed GenerateMultipleRandomLayouts.
	if params.NumberOfUniqueLayouts < 0 || params.MaxAttemptsForMultipleLayouts < 0 {
		return Config{}, fmt.Errorf("config: %w: multiple-layout budgets must not be negative",
			sidblayout.ErrInvalidParameters)
	}
	return Config{Orientation: o, Params: params}, nil
}
