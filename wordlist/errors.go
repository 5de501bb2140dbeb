package wordlist

import "errors"

var (
	// ErrLanguageNotFound indicates a Registry lookup with an unknown language identifier.
	ErrLanguageNotFound = errors.New("wordlist: no word list for language identifier")
	// ErrConceptNotFound indicates a WordList lookup with an unknown concept identifier.
	ErrConceptNotFound = errors.New("wordlist: no word forms for concept")
)
