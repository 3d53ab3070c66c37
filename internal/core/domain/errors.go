package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoCharacterSets indicates a solve was requested with zero
	// character-set arguments. The core treats zero slots as a valid
	// degenerate enumeration; this error belongs to callers that
	// require at least one letter position.
	ErrNoCharacterSets = errors.New("no character sets supplied")

	// ErrDefaultListUnavailable indicates the bundled word list was
	// requested but no source for it is configured.
	ErrDefaultListUnavailable = errors.New("default word list unavailable")
)
