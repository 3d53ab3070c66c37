package wordlist

import (
	_ "embed"
	"sync"

	"github.com/damien/blue-prince/internal/core/ports/driven"
)

// The default word list is bundled at compile time, one word per line.
//
//go:embed words.txt
var embeddedData string

// Ensure EmbeddedSource implements the interface.
var _ driven.WordSource = (*EmbeddedSource)(nil)

// EmbeddedSource serves the word list bundled into the binary.
// Parsing happens once, shared across instances.
type EmbeddedSource struct{}

var (
	embeddedOnce  sync.Once
	embeddedWords []string
)

// NewEmbeddedSource creates a source backed by the bundled word list.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Words returns every word in the bundled list. It never fails; the
// error return satisfies driven.WordSource.
func (s *EmbeddedSource) Words() ([]string, error) {
	embeddedOnce.Do(func() {
		embeddedWords = parseWords(embeddedData)
	})
	return embeddedWords, nil
}
