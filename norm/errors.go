package norm

import "errors"

// ErrNilJordan is returned by New when no Jordan form is supplied.
var ErrNilJordan = errors.New("norm: nil jordan form")
