package wordlist

import (
	"fmt"
	"sort"
)

// WordList is the basic vocabulary of a single language: a mapping from
// concept identifiers to one or more phonetic word forms in ASJPcode.
//
// A WordList is immutable once constructed. Every stored concept has at
// least one form; concepts without forms are dropped at construction, so
// they never appear as keys.
type WordList struct {
	id       string
	name     string
	concepts map[string][]string
	order    []string // concept identifiers, sorted
}

// New builds a WordList for the language identified by id (e.g. an ISO 639-3
// code). name is informational only and takes no part in any computation.
//
// The concepts map is deep-copied; entries with zero forms are omitted, which
// upholds the invariant that every present concept carries ≥ 1 form. The
// caller may freely reuse or modify its map afterwards.
func New(id, name string, concepts map[string][]string) *WordList {
	wl := &WordList{
		id:       id,
		name:     name,
		concepts: make(map[string][]string, len(concepts)),
		order:    make([]string, 0, len(concepts)),
	}
	for concept, forms := range concepts {
		if len(forms) == 0 {
			continue
		}
		cp := make([]string, len(forms))
		copy(cp, forms)
		wl.concepts[concept] = cp
		wl.order = append(wl.order, concept)
	}
	sort.Strings(wl.order)

	return wl
}

// ID returns the language identifier this word list is keyed by.
func (wl *WordList) ID() string { return wl.id }

// Name returns the display name of the language. Informational only.
func (wl *WordList) Name() string { return wl.name }

// Len returns the number of concepts with at least one word form.
func (wl *WordList) Len() int { return len(wl.concepts) }

// Concepts returns the concept identifiers in sorted order.
// The returned slice must not be modified.
func (wl *WordList) Concepts() []string { return wl.order }

// Forms returns the word forms recorded for the given concept, or
// ErrConceptNotFound if the concept is absent. The returned slice is never
// empty and must not be modified.
func (wl *WordList) Forms(concept string) ([]string, error) {
	forms, ok := wl.concepts[concept]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConceptNotFound, concept)
	}

	return forms, nil
}
