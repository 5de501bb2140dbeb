// Package lexdist measures lexical distance between languages from
// ASJP-style phonetic word lists.
//
// 🚀 What is lexdist?
//
//	A small, pure-Go toolkit that answers "how far apart are these two
//	languages, judging by their basic vocabulary?" It brings together:
//		• nld/      — vowel-weighted Levenshtein distance over ASJPcode
//		  transcriptions, normalized and averaged per concept and per
//		  language pair, plus a parallel pairwise distance matrix
//		• wordlist/ — immutable per-language word lists and a registry
//		  keyed by language identifier with duplicate resolution
//		• asjp/     — loader for the tab-separated ASJP database file
//		• cmd/lexdist — CLI to compare languages and print distance tables
//
// ✨ Why choose lexdist?
//
//   - Minimal API, clear naming — three functions cover the whole pipeline
//   - Deterministic — sorted concept iteration, reproducible means
//   - Immutable data model — word lists are safe for concurrent reads
//
// Quick taste:
//
//	reg, _ := asjp.Open("asjp.tab")
//	swe, _ := reg.Get("swe")
//	eng, _ := reg.Get("eng")
//	d, _ := nld.LanguageDistance(swe, eng, nil)
//
// Dive into the per-package docs for contracts, edge cases and complexity.
//
//	go get github.com/katalvlaran/lexdist
package lexdist
