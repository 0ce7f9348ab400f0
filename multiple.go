// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sidblayout

import (
	"fmt"

	"github.com/2dChan/sidblayout/lattice"
)

// GenerateMultipleRandomLayouts generates params.NumberOfUniqueLayouts layouts on lat
// whose cell sets differ pairwise. All layouts draw from one random source, so a
// seeded call is reproducible. A nil lat means lattice.Generic.
//
// A generated layout equal to an earlier one is discarded; once
// params.MaxAttemptsForMultipleLayouts layouts have been discarded the call fails
// with ErrGenerationExhausted. On failure the unique layouts found so far are returned.
func GenerateMultipleRandomLayouts(lat lattice.Lattice, params Params, setters ...GeneratorOption) ([]*Layout, error) {
	if lat == nil {
		lat = lattice.Generic{}
	}
	if err := params.validateMultiple(); err != nil {
		return nil, err
	}
	s, err := prepare(lat, params, setters)
	if err != nil {
		return nil, err
	}
	params = s.params

	layouts := make([]*Layout, 0, params.NumberOfUniqueLayouts)
	discarded := 0
	for len(layouts) < params.NumberOfUniqueLayouts {
		lyt := NewLayout(lat)
		if err := s.generator(lyt).run(); err != nil {
			return layouts, err
		}
		if containsLayout(layouts, lyt) {
			discarded++
			if discarded >= params.MaxAttemptsForMultipleLayouts {
				s.logger.Debug("unique layout budget exhausted",
					"found", len(layouts), "target", params.NumberOfUniqueLayouts)
				return layouts, fmt.Errorf("%w: found %d of %d unique layouts after discarding %d duplicates",
					ErrGenerationExhausted, len(layouts), params.NumberOfUniqueLayouts, discarded)
			}
			continue
		}
		layouts = append(layouts, lyt)
	}

	return layouts, nil
}

func containsLayout(layouts []*Layout, lyt *Layout) bool {
	for _, l := range layouts {
		if l.SameCells(lyt) {
			return true
		}
	}
	return false
}
