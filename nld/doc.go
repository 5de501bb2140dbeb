// Package nld computes normalized Levenshtein distances (NLD) between
// ASJP-style phonetic transcriptions and aggregates them into per-concept
// and per-language lexical distance scores.
//
// 🚀 What is NLD?
//
//	The Levenshtein (edit) distance between two transcriptions, divided by
//	the length of the longer one. Averaged over the word forms of every
//	concept two languages share, it is a standard measure of how lexically
//	close the languages are. Identical vocabularies score 0; unrelated
//	vocabularies approach 1.
//
// ✨ The pipeline, bottom-up:
//
//   - Distance         — vowel-weighted edit distance between two forms
//   - ConceptDistance  — mean NLD over all form pairs of one shared concept
//   - LanguageDistance — mean of concept distances over all shared concepts
//   - Matrix           — pairwise LanguageDistance for many languages,
//     computed concurrently
//
// ⚙️ Vowel weighting:
//
//	ASJPcode marks vowels with the symbols 3 a e E i o u. Substituting one
//	vowel for another is often a weaker signal of lexical difference than
//	a consonant change, so Options.VowelWeight scales vowel-for-vowel
//	substitution cost (default 1.0 = classic Levenshtein).
//
// All functions are pure and deterministic; inputs are never mutated.
// Distance runs in O(len(a)·len(b)) time and O(len(b)) memory via a
// rolling two-row DP table.
//
// See examples in example_test.go.
package nld
