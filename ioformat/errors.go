package ioformat

import "errors"

// ErrInputParse wraps a malformed input line or field; the originating
// strconv error and the 1-indexed source line are included via %w/context
// at the call site.
var ErrInputParse = errors.New("ioformat: input parse error")
