package wordlist

import (
	"fmt"
	"sort"
)

// Registry is a collection of WordLists keyed by language identifier.
//
// A Registry is populated once, via NewRegistry or repeated Add calls, and
// read-only afterwards. Add is not safe to call concurrently with reads;
// after construction, concurrent Get calls need no synchronization.
type Registry struct {
	lists map[string]*WordList
}

// NewRegistry builds a Registry from the given word lists, applying the
// duplicate-identifier rule of Add to each in order.
func NewRegistry(lists ...*WordList) *Registry {
	r := &Registry{lists: make(map[string]*WordList, len(lists))}
	for _, wl := range lists {
		r.Add(wl)
	}

	return r
}

// Add records wl under its identifier. When the identifier is already
// present, the word list with the greater number of concepts is kept;
// on a tie the earlier entry wins. This resolves duplicate database rows
// without discarding the richer record.
func (r *Registry) Add(wl *WordList) {
	old, ok := r.lists[wl.ID()]
	if ok && wl.Len() <= old.Len() {
		return
	}
	r.lists[wl.ID()] = wl
}

// Get returns the WordList for the given language identifier, or
// ErrLanguageNotFound if no word list is registered under it.
func (r *Registry) Get(id string) (*WordList, error) {
	wl, ok := r.lists[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotFound, id)
	}

	return wl, nil
}

// Identifiers returns all registered language identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.lists))
	for id := range r.lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Len returns the number of registered languages.
func (r *Registry) Len() int { return len(r.lists) }
