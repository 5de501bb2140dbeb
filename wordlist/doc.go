// Package wordlist holds the in-memory data model for ASJP-style word lists:
// one immutable WordList per language, collected in a Registry keyed by
// language identifier.
//
// A WordList maps concept identifiers (e.g. "stone", "water") to a non-empty
// list of phonetic word forms. Both types are built once from loader output
// and never mutated afterwards, so concurrent reads need no locking.
//
// The Registry resolves duplicate language identifiers with a fixed rule:
// the word list with the greater number of concepts wins, and on a tie the
// earliest-seen list is kept. This merges duplicate database entries without
// silently discarding the richer record.
//
// Lookups on unknown keys fail with ErrLanguageNotFound / ErrConceptNotFound.
package wordlist
