package atom

import "errors"

var (
	// ErrUnknownElement indicates a catalog lookup for an identifier that is not in the table.
	ErrUnknownElement = errors.New("atom: unknown element")
)
