package asjp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lexdist/wordlist"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// metadataColumns is the number of leading language-metadata columns in
	// the ASJP table; everything after them is a concept column.
	metadataColumns = 10

	// formSeparator divides synonymous word forms within one concept cell.
	formSeparator = ", "

	identifierColumn = "iso"
	nameColumn       = "names"
)

// ErrBadHeader indicates the header row does not look like an ASJP table:
// fewer than ten metadata columns plus at least one concept column, or the
// iso/names columns are missing from the metadata section.
var ErrBadHeader = errors.New("asjp: malformed header row")

// Read parses an ASJP tab-separated table and returns the resulting
// registry. Duplicate language identifiers are resolved by
// wordlist.Registry's richer-record rule.
func Read(r io.Reader) (*wordlist.Registry, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8.NewDecoder()))
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // short rows are padded below

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("asjp: reading header: %w", err)
	}
	if len(header) <= metadataColumns {
		return nil, fmt.Errorf("%w: got %d columns, need at least %d",
			ErrBadHeader, len(header), metadataColumns+1)
	}

	isoIdx, nameIdx := -1, -1
	for i := 0; i < metadataColumns; i++ {
		switch header[i] {
		case identifierColumn:
			isoIdx = i
		case nameColumn:
			nameIdx = i
		}
	}
	if isoIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("%w: missing %q or %q column",
			ErrBadHeader, identifierColumn, nameColumn)
	}
	conceptNames := header[metadataColumns:]

	reg := wordlist.NewRegistry()
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("asjp: %w", err)
		}

		concepts := make(map[string][]string, len(conceptNames))
		for k, concept := range conceptNames {
			cell := field(row, metadataColumns+k)
			if cell == "" {
				continue
			}
			concepts[concept] = strings.Split(cell, formSeparator)
		}
		reg.Add(wordlist.New(field(row, isoIdx), field(row, nameIdx), concepts))
	}

	return reg, nil
}

// Open reads the ASJP table from the file at path.
func Open(path string) (*wordlist.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asjp: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// field returns row[i], or "" when the row is too short for i.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
