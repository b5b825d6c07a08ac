package tab

import "errors"

// ErrOutOfRange reports a section or measure index that addresses nothing.
// Lookups by id are benign no-ops instead; an out-of-range index means the
// caller is holding a bad coordinate.
var ErrOutOfRange = errors.New("section or measure index out of range")
