package cli_test

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/katalvlaran/lexdist/internal/cli"
	"github.com/katalvlaran/lexdist/nld"
	"github.com/katalvlaran/lexdist/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns captured stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestCompare_Pair checks the swe/eng distance over the three shared
// concepts of the fixture: I (1.0), stone (0.25), water (5/6).
func TestCompare_Pair(t *testing.T) {
	out, err := run(t, "compare", "swe", "eng", "--database", "testdata/mini.tab")
	require.NoError(t, err)
	assert.Equal(t, "swe\teng\t0.6944\n", out)
}

// TestCompare_VowelWeight verifies the flag reaches the metric.
func TestCompare_VowelWeight(t *testing.T) {
	out, err := run(t, "compare", "swe", "eng",
		"--database", "testdata/mini.tab", "--vowel-weight", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "swe\teng\t0.5139\n", out)
}

// TestCompare_UnknownLanguage surfaces the registry's NotFound error.
func TestCompare_UnknownLanguage(t *testing.T) {
	_, err := run(t, "compare", "swe", "xxx", "--database", "testdata/mini.tab")
	assert.ErrorIs(t, err, wordlist.ErrLanguageNotFound)
}

// TestCompare_ArgCount rejects anything but exactly two languages.
func TestCompare_ArgCount(t *testing.T) {
	_, err := run(t, "compare", "swe", "--database", "testdata/mini.tab")
	assert.Error(t, err)
}

// TestMatrix_AllLanguages renders every pair of the fixture.
func TestMatrix_AllLanguages(t *testing.T) {
	out, err := run(t, "matrix", "--database", "testdata/mini.tab", "--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "dan")
	assert.Contains(t, out, "eng")
	assert.Contains(t, out, "swe")
	assert.Contains(t, out, "0.0000", "diagonal cells")
	assert.Contains(t, out, "0.6944", "swe/eng cell")
}

// TestMatrix_SelectedLanguages restricts the matrix to the given codes.
func TestMatrix_SelectedLanguages(t *testing.T) {
	out, err := run(t, "matrix", "swe", "eng",
		"--database", "testdata/mini.tab", "--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "0.6944")
	assert.NotContains(t, out, "dan")
}

// TestMatrix_DisjointPairFails propagates ErrNoSharedConcepts.
func TestMatrix_DisjointPairFails(t *testing.T) {
	_, err := run(t, "matrix", "swe", "zzz", "--database", "testdata/mini.tab")
	assert.ErrorIs(t, err, wordlist.ErrLanguageNotFound, "unknown code fails lookup first")

	// A genuinely disjoint pair is easier to exercise at the library level;
	// here we only assert the error type is surfaced unchanged.
	a := wordlist.New("a", "A", map[string][]string{"stone": {"tan"}})
	b := wordlist.New("b", "B", map[string][]string{"water": {"aqua"}})
	_, derr := nld.LanguageDistance(a, b, nil)
	assert.ErrorIs(t, derr, nld.ErrNoSharedConcepts)
}

// TestList_Table lists the fixture languages with concept counts.
func TestList_Table(t *testing.T) {
	out, err := run(t, "list", "--database", "testdata/mini.tab", "--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "ISO,NAME,CONCEPTS")
	assert.Contains(t, out, "swe,SWEDISH,3")
	assert.Contains(t, out, "dan,DANISH,3")
	assert.Contains(t, out, "eng,ENGLISH,3")
}

// TestList_MissingDatabase surfaces the loader's file error.
func TestList_MissingDatabase(t *testing.T) {
	_, err := run(t, "list", "--database", "testdata/absent.tab")
	assert.Error(t, err)
}

// TestVersion prints the version banner with the Go runtime it runs on.
func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lexdist v")
	assert.Contains(t, out, runtime.Version())
}
