package coder

import "errors"

var (
	// ErrBadBox reports bounds of different length, an empty dimension list, or lower > upper.
	ErrBadBox = errors.New("coder: invalid box bounds")

	// ErrVolumeOverflow reports a box with more than 2⁶⁴-1 points.
	ErrVolumeOverflow = errors.New("coder: box volume overflows uint64")
)
