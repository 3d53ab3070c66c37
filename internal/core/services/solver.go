// Package services implements the driving ports: the combination
// enumerator and the word list filter.
package services

import (
	"fmt"
	"iter"

	"github.com/damien/blue-prince/internal/core/domain"
	"github.com/damien/blue-prince/internal/core/ports/driven"
	"github.com/damien/blue-prince/internal/core/ports/driving"
	"github.com/damien/blue-prince/internal/logger"
)

// Ensure SolverService implements the interface.
var _ driving.SolverService = (*SolverService)(nil)

// SolverService generates candidate words from a fixed sequence of
// slots and filters them against a reference word list. The slot
// configuration is immutable after construction; the word list can be
// replaced via SetWordList. Each instance is owned by a single
// consumer; enumeration state lives entirely inside the returned
// sequences.
type SolverService struct {
	slots    []domain.Slot
	list     domain.WordList
	defaults driven.WordSource
}

// NewSolverService creates a solver over the given slots. The word
// list selects the filtering behaviour; a default-variant list is
// resolved from defaults once, here, not per candidate. defaults may
// be nil when the caller never requests the default list.
func NewSolverService(slots []domain.Slot, list domain.WordList, defaults driven.WordSource) (*SolverService, error) {
	s := &SolverService{
		slots:    append([]domain.Slot(nil), slots...),
		defaults: defaults,
	}
	if err := s.SetWordList(list); err != nil {
		return nil, err
	}
	return s, nil
}

// WordList returns the active reference list.
func (s *SolverService) WordList() domain.WordList {
	return s.list
}

// SetWordList replaces the active reference list. An unresolved
// default-variant list is resolved against the bundled words first;
// if that load fails the previous list stays active and the error is
// returned.
func (s *SolverService) SetWordList(list domain.WordList) error {
	if list.Source() == domain.WordListDefault && !list.Resolved() {
		if s.defaults == nil {
			return domain.ErrDefaultListUnavailable
		}
		words, err := s.defaults.Words()
		if err != nil {
			return fmt.Errorf("load default word list: %w", err)
		}
		list = list.ResolveDefault(words)
		logger.Debug("Resolved default word list: %d words", list.Len())
	}
	s.list = list
	return nil
}

// Cardinality returns the total number of unfiltered combinations:
// the product of all slot candidate counts. Zero slots give 1, the
// empty product.
func (s *SolverService) Cardinality() int {
	total := 1
	for _, slot := range s.slots {
		total *= slot.Count()
	}
	return total
}

// Combinations returns every combination in odometer order: the index
// vector is a mixed-radix counter where the last slot is the least
// significant digit and advances fastest, carrying into earlier slots
// on overflow. The sequence is lazy and restartable.
//
// Zero slots yield exactly one empty-string combination, matching the
// empty-product convention of Cardinality. A slot with zero candidates
// exhausts the sequence immediately.
func (s *SolverService) Combinations() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, slot := range s.slots {
			if slot.Count() == 0 {
				return
			}
		}

		indices := make([]int, len(s.slots))
		word := make([]rune, len(s.slots))
		for {
			for i, slot := range s.slots {
				word[i] = slot.At(indices[i])
			}
			if !yield(string(word)) {
				return
			}

			// Advance the odometer.
			pos := len(indices) - 1
			for ; pos >= 0; pos-- {
				indices[pos]++
				if indices[pos] < s.slots[pos].Count() {
					break
				}
				indices[pos] = 0
			}
			if pos < 0 {
				// Carry propagated past the first slot: exhausted.
				return
			}
		}
	}
}

// Words returns the combinations the active word list allows, in
// odometer order. Candidates are tested one at a time as the
// underlying sequence produces them.
func (s *SolverService) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range s.Combinations() {
			if !s.list.Allows(word) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}
