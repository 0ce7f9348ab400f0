// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sidblayout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters reports a request that can never be satisfied as posed.
	ErrInvalidParameters = errors.New("sidblayout: invalid generation parameters")
	// ErrGenerationExhausted reports that the attempt budget ran out before the target was met.
	ErrGenerationExhausted = errors.New("sidblayout: attempt budget exhausted")
	// ErrDuplicateCell reports an insertion on an occupied coordinate.
	ErrDuplicateCell = errors.New("sidblayout: cell already occupied")
	// ErrInvalidSite reports an insertion on a coordinate that is not a lattice site.
	ErrInvalidSite = errors.New("sidblayout: coordinate is not a lattice site")
)

// ExhaustedError describes where generation gave up.
// It matches ErrGenerationExhausted under errors.Is.
type ExhaustedError struct {
	Target   int
	Placed   int
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v: placed %d of %d after %d consecutive rejected attempts",
		ErrGenerationExhausted, e.Placed, e.Target, e.Attempts)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrGenerationExhausted
}

func invalidParams(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}
