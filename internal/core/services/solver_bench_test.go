package services

import (
	"fmt"
	"testing"

	"github.com/damien/blue-prince/internal/core/domain"
)

func benchSlots(slotCount, optionCount int) []domain.Slot {
	slots := make([]domain.Slot, 0, slotCount)
	for i := 0; i < slotCount; i++ {
		options := make([]rune, 0, optionCount)
		for j := 0; j < optionCount; j++ {
			options = append(options, rune('a'+j%26))
		}
		slots = append(slots, domain.NewSlot(options))
	}
	return slots
}

func BenchmarkCombinations(b *testing.B) {
	for _, slotCount := range []int{2, 3, 4, 5} {
		for _, optionCount := range []int{3, 5, 8} {
			name := fmt.Sprintf("slots=%d,options=%d", slotCount, optionCount)
			b.Run(name, func(b *testing.B) {
				solver, err := NewSolverService(benchSlots(slotCount, optionCount), domain.DisabledWordList(), nil)
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					n := 0
					for range solver.Combinations() {
						n++
					}
				}
			})
		}
	}
}

func BenchmarkWords_CustomList(b *testing.B) {
	slots := benchSlots(3, 3)
	for _, wordCount := range []int{10, 100, 1000, 10000} {
		words := make([]string, 0, wordCount)
		for i := 0; i < wordCount; i++ {
			words = append(words, fmt.Sprintf("word%d", i))
		}
		b.Run(fmt.Sprintf("words=%d", wordCount), func(b *testing.B) {
			solver, err := NewSolverService(slots, domain.CustomWordList(words), nil)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				n := 0
				for range solver.Words() {
					n++
				}
			}
		})
	}
}

func BenchmarkWords_DefaultList(b *testing.B) {
	source := &mockWordSource{words: []string{"cat", "cot", "bat", "rot", "roe"}}
	solver, err := NewSolverService(benchSlots(3, 3), domain.DefaultWordList(), source)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range solver.Words() {
			n++
		}
	}
}
