package domain

// WordListSource identifies where a reference word list comes from.
type WordListSource string

// Available word list sources.
const (
	// WordListDefault uses the word list bundled with the binary.
	WordListDefault WordListSource = "default"

	// WordListDisabled performs no filtering at all.
	WordListDisabled WordListSource = "disabled"

	// WordListCustom uses a caller-supplied set of words.
	WordListCustom WordListSource = "custom"
)

// String returns the string representation.
func (s WordListSource) String() string {
	return string(s)
}

// WordList is the reference dictionary used to filter generated
// combinations. It is an explicit three-variant value: the bundled
// default list, filtering disabled, or a caller-supplied set. This
// keeps "no list given" and "list given but intentionally empty"
// distinct states rather than overloading a nil set.
//
// Membership checks are exact and case-sensitive. No normalisation
// is performed; callers wanting case-insensitive matching must fold
// both the slot candidates and the reference words themselves.
type WordList struct {
	source WordListSource
	words  map[string]struct{}
}

// DefaultWordList returns the variant backed by the bundled word list.
// The actual words are attached later via ResolveDefault, once, by
// whoever has access to the bundled data.
func DefaultWordList() WordList {
	return WordList{source: WordListDefault}
}

// DisabledWordList returns the no-op variant: every candidate passes.
func DisabledWordList() WordList {
	return WordList{source: WordListDisabled}
}

// CustomWordList returns a variant backed by the given words.
// Duplicates collapse. An empty list is legal and acts as a no-op
// filter, the same as DisabledWordList.
func CustomWordList(words []string) WordList {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return WordList{source: WordListCustom, words: set}
}

// Source returns which variant this list is.
func (l WordList) Source() WordListSource {
	return l.source
}

// Len returns the number of distinct words in the list.
func (l WordList) Len() int {
	return len(l.words)
}

// Resolved reports whether a default list has had its words attached.
// Non-default variants are always resolved.
func (l WordList) Resolved() bool {
	return l.source != WordListDefault || l.words != nil
}

// ResolveDefault returns a copy of the list with the given words
// attached. It only applies to the default variant; other variants
// are returned unchanged.
func (l WordList) ResolveDefault(words []string) WordList {
	if l.source != WordListDefault {
		return l
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return WordList{source: WordListDefault, words: set}
}

// Allows reports whether the given candidate passes this list.
// Disabled lists allow everything. An empty word set also allows
// everything; the empty set is the explicit "no filtering" sentinel.
func (l WordList) Allows(word string) bool {
	if l.source == WordListDisabled {
		return true
	}
	if len(l.words) == 0 {
		return true
	}
	_, ok := l.words[word]
	return ok
}
