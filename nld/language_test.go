package nld_test

import (
	"testing"

	"github.com/katalvlaran/lexdist/nld"
	"github.com/katalvlaran/lexdist/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLanguageDistance_SingleSharedConcept reproduces the canonical
// tan/ston scenario end to end: edit distance 2, normalized by 4, averaged
// over the one shared concept.
func TestLanguageDistance_SingleSharedConcept(t *testing.T) {
	a := wordlist.New("aaa", "LANG_A", map[string][]string{"stone": {"tan"}})
	b := wordlist.New("bbb", "LANG_B", map[string][]string{"stone": {"ston"}})

	d, err := nld.LanguageDistance(a, b, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)
}

// TestLanguageDistance_MeanOverConcepts verifies averaging across several
// shared concepts and that unshared concepts are ignored.
func TestLanguageDistance_MeanOverConcepts(t *testing.T) {
	swe := wordlist.New("swe", "SWEDISH", map[string][]string{
		"stone": {"sten"},
		"dog":   {"hund"},
		"sun":   {"sol"}, // not shared
	})
	dan := wordlist.New("dan", "DANISH", map[string][]string{
		"stone": {"ston"}, // d=1, nld 0.25
		"dog":   {"hund"}, // identical, nld 0
		"moon":  {"mOne"}, // not shared
	})

	d, err := nld.LanguageDistance(swe, dan, nil)
	require.NoError(t, err)
	assert.InDelta(t, (0.25+0.0)/2, d, 1e-12)
}

// TestLanguageDistance_NoSharedConcepts checks the explicit error for
// disjoint concept sets.
func TestLanguageDistance_NoSharedConcepts(t *testing.T) {
	a := wordlist.New("aaa", "LANG_A", map[string][]string{"stone": {"tan"}})
	b := wordlist.New("bbb", "LANG_B", map[string][]string{"water": {"aqua"}})

	_, err := nld.LanguageDistance(a, b, nil)
	assert.ErrorIs(t, err, nld.ErrNoSharedConcepts)
	assert.ErrorContains(t, err, `"aaa"`, "error should name the pair")
	assert.ErrorContains(t, err, `"bbb"`)
}

// TestLanguageDistance_Symmetric confirms the score does not depend on
// argument order.
func TestLanguageDistance_Symmetric(t *testing.T) {
	a := wordlist.New("aaa", "LANG_A", map[string][]string{
		"stone": {"tan", "kiwi"},
		"dog":   {"hund"},
	})
	b := wordlist.New("bbb", "LANG_B", map[string][]string{
		"stone": {"ston"},
		"dog":   {"dog", "hAnd"},
	})

	ab, err := nld.LanguageDistance(a, b, nil)
	require.NoError(t, err)
	ba, err := nld.LanguageDistance(b, a, nil)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)
}

// TestLanguageDistance_VowelWeight ensures options reach the metric through
// both aggregation levels.
func TestLanguageDistance_VowelWeight(t *testing.T) {
	a := wordlist.New("aaa", "LANG_A", map[string][]string{"stone": {"sten"}})
	b := wordlist.New("bbb", "LANG_B", map[string][]string{"stone": {"ston"}})

	opts := nld.DefaultOptions()
	opts.VowelWeight = 0.5

	d, err := nld.LanguageDistance(a, b, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, d, 1e-12, "0.5 substitution normalized by 4")
}
