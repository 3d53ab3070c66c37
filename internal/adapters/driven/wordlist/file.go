package wordlist

import (
	"fmt"
	"os"

	"github.com/damien/blue-prince/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.WordSource = (*FileSource)(nil)

// FileSource reads a newline-delimited word list from disk. The read
// is a single synchronous operation: it completes fully or fails with
// an error naming the path.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path this source reads from.
func (s *FileSource) Path() string {
	return s.path
}

// Words reads and parses the file.
func (s *FileSource) Words() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read word list %q: %w", s.path, err)
	}
	return parseWords(string(data)), nil
}
