package digits

import "errors"

var (
	// ErrNilProperties is returned for nil radix properties.
	ErrNilProperties = errors.New("digits: nil radix properties")

	// ErrSearchLimit reports that the candidate enumeration exceeded its volume limit.
	ErrSearchLimit = errors.New("digits: candidate search exceeded limit")

	// ErrUnknownKind is returned by Build for a kind it does not construct.
	ErrUnknownKind = errors.New("digits: unknown digit-set kind")

	// ErrIncomplete reports a construction that did not produce one digit per coset.
	ErrIncomplete = errors.New("digits: construction did not cover every coset")
)
