package typewriter

import "errors"

// ErrInvalidInput is returned by Start and NewMachine when the phrase list
// has no non-empty phrase, the update callback is missing, or the timing
// configuration is not positive. It signals a broken call site.
var ErrInvalidInput = errors.New("typewriter: invalid input")
