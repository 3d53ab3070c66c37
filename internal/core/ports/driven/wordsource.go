package driven

// WordSource supplies a reference word list for filtering generated
// combinations. Implementations read from the bundled data, from a
// file on disk, or from memory in tests.
type WordSource interface {
	// Words returns the complete list, one entry per word. The read
	// happens once per call and either completes fully or fails;
	// there are no partial results.
	Words() ([]string, error)
}
