package nld

import (
	"fmt"

	"github.com/katalvlaran/lexdist/wordlist"
)

// LanguageDistance returns the mean ConceptDistance over every concept that
// both word lists have forms for.
//
// Concepts are visited in sorted order, so the floating-point accumulation —
// and therefore the result — is reproducible run to run.
//
// When the two lists share no concepts the mean is undefined and
// ErrNoSharedConcepts is returned; the score must not be read as 0.
func LanguageDistance(a, b *wordlist.WordList, opts *Options) (float64, error) {
	var (
		sum    float64
		shared int
	)
	for _, concept := range a.Concepts() {
		formsB, err := b.Forms(concept)
		if err != nil {
			continue // not shared
		}
		formsA, _ := a.Forms(concept)
		sum += ConceptDistance(formsA, formsB, opts)
		shared++
	}
	if shared == 0 {
		return 0, fmt.Errorf("%w: %q vs %q", ErrNoSharedConcepts, a.ID(), b.ID())
	}

	return sum / float64(shared), nil
}
