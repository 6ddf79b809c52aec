package radix

import (
	"errors"
	"fmt"
)

// ErrNilBase is returned by New for a nil base matrix.
var ErrNilBase = errors.New("radix: nil base matrix")

func radixErrorf(stage string, err error) error {
	return fmt.Errorf("radix.New: %s: %w", stage, err)
}
