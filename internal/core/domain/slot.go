package domain

// Slot is the ordered set of candidate characters for one position in a
// puzzle word. The order of candidates is significant: it defines the
// enumeration order of the full combination space. Duplicates are kept
// as supplied.
//
// A Slot is immutable after construction. It carries no iteration state;
// the solver owns all position tracking during enumeration.
type Slot struct {
	candidates []rune
}

// NewSlot creates a Slot from the given candidate characters.
// The input slice is copied, so later mutation of it does not
// affect the slot. An empty candidate list is legal and makes
// the overall combination space empty.
func NewSlot(candidates []rune) Slot {
	copied := make([]rune, len(candidates))
	copy(copied, candidates)
	return Slot{candidates: copied}
}

// SlotFromString creates a Slot whose candidates are the runes of s,
// in order.
func SlotFromString(s string) Slot {
	return Slot{candidates: []rune(s)}
}

// Count returns the number of candidate characters.
func (s Slot) Count() int {
	return len(s.candidates)
}

// At returns the candidate at index i. The index must be in
// [0, Count()).
func (s Slot) At(i int) rune {
	return s.candidates[i]
}

// Representative returns the candidate at index 0, for contexts that
// need a single stand-in character for the position. Returns the zero
// rune if the slot is empty.
func (s Slot) Representative() rune {
	if len(s.candidates) == 0 {
		return 0
	}
	return s.candidates[0]
}

// String returns the candidates joined into a string, in order.
func (s Slot) String() string {
	return string(s.candidates)
}
