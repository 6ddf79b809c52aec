package gns

import (
	"errors"
	"fmt"
)

var (
	// ErrNilProperties is returned when a constructor receives nil radix properties.
	ErrNilProperties = errors.New("gns: nil radix properties")

	// ErrDigitSetSize reports a digit set whose size differs from |det M|.
	ErrDigitSetSize = errors.New("gns: digit set size differs from |det M|")

	// ErrDigitSetNotComplete reports two digits in the same residue class.
	ErrDigitSetNotComplete = errors.New("gns: digit set is not a complete residue system")

	// ErrNotExpanding reports a base whose inverse is not a contraction under the adapted norm.
	ErrNotExpanding = errors.New("gns: base is not expanding")

	// ErrVolumeTooLarge reports a bounding box above the configured maximum volume.
	ErrVolumeTooLarge = errors.New("gns: bounding box volume exceeds limit")

	// ErrNoExpansion reports an orbit that did not reach 0 within the step limit.
	ErrNoExpansion = errors.New("gns: no finite expansion within limit")

	// ErrPointTooLarge reports a coordinate beyond NumberSystem.PointLimit.
	ErrPointTooLarge = errors.New("gns: point coordinate exceeds overflow-safe limit")

	// ErrSingularHash reports a Smith form with a zero invariant factor.
	ErrSingularHash = errors.New("gns: smith form has a zero invariant factor")
)

// Operation tags for uniform error wrapping.
const (
	opNewSmithHash = "NewSmithHash"
	opNewHashTable = "NewHashTable"
	opNewNumberSys = "New"
	opPhi          = "Phi"
	opExpansion    = "Expansion"
	opOrbit        = "Orbit"
	opBounds       = "Bounds"
	opCycles       = "Cycles"
	opClassify     = "Classify"
)

func gnsErrorf(tag string, err error) error {
	return fmt.Errorf("gns.%s: %w", tag, err)
}
