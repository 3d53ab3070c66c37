// Package wordlist provides word list sources for the solver: the
// list bundled into the binary and newline-delimited files on disk.
package wordlist

import "strings"

// parseWords splits newline-delimited word list data into words.
// One word per line, no comment syntax, no trimming beyond the line
// terminator (CRLF is tolerated). Blank lines are skipped.
func parseWords(data string) []string {
	lines := strings.Split(data, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
