// Package asjp loads the tab-separated ASJP database file into a
// wordlist.Registry.
//
// The expected table layout follows the ASJP distribution: a header row
// whose first ten columns are language metadata (these must include "iso",
// the language identifier, and "names", the display name) and whose
// remaining columns are concept identifiers. Each subsequent row is one
// language; a concept cell holds zero or more word forms separated by ", ".
// Empty cells mean no data and are omitted from the resulting word list.
//
// Duplicate identifiers are resolved by the registry's rule: the row with
// more attested concepts wins, ties keep the earlier row.
//
// Input is passed through a UTF-8 decoder, so stray bytes from legacy
// encodings are normalized to U+FFFD instead of corrupting word forms.
// Rows shorter than the header are padded with empty cells, matching the
// leniency of common tabular readers for this file.
package asjp
