package pngio

import "errors"

// ErrDecodeFailure covers an input PNG that cannot be read at all, per
// the error taxonomy in spec §7.
var ErrDecodeFailure = errors.New("pngio: decode failure")
