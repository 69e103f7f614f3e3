package scan

import "errors"

// ErrMalformed is the single failure kind for every scanner in this package.
// A failed scan means the buffer is not the shape the caller pointed it at,
// which is indistinguishable from a corrupt or unsupported document.
var ErrMalformed = errors.New("malformed text")
