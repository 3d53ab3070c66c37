package driving

import (
	"iter"

	"github.com/damien/blue-prince/internal/core/domain"
)

// SolverService enumerates candidate words from positional character
// sets and filters them against a reference word list.
type SolverService interface {
	// Combinations returns every combination in odometer order,
	// ignoring the word list entirely. The sequence is lazy and
	// restartable: each range starts over from the beginning.
	Combinations() iter.Seq[string]

	// Words returns the combinations allowed by the active word list,
	// in the same order as Combinations. Filtering happens per
	// candidate as the sequence is consumed; the full product is
	// never materialised.
	Words() iter.Seq[string]

	// Cardinality returns the total number of unfiltered combinations,
	// the product of all slot candidate counts.
	Cardinality() int

	// WordList returns the active reference list.
	WordList() domain.WordList

	// SetWordList replaces the active reference list. A default-variant
	// list is resolved against the bundled words before it takes
	// effect; on resolution failure the previous list is kept.
	SetWordList(list domain.WordList) error
}
