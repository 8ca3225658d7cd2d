package schema

import "errors"

var (
	// ErrStructure reports malformed document nesting: a wrong child
	// element under a layer, or a duplicate entry key at the same path.
	ErrStructure = errors.New("structure error")
	// ErrResource reports a file that could not be opened or read.
	ErrResource = errors.New("resource error")
)
