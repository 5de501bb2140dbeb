package nld

// Vowels lists the ASJPcode symbols classified as vowels. Substitution of
// one of these for another is charged Options.VowelWeight instead of the
// full unit cost.
const Vowels = "3aeEiou"

// defaultVowelWeight is the classic Levenshtein substitution cost.
const defaultVowelWeight = 1.0

// vowelTable supports O(1) membership tests on single-byte ASJP symbols.
var vowelTable [256]bool

func init() {
	for i := 0; i < len(Vowels); i++ {
		vowelTable[Vowels[i]] = true
	}
}

// Options configures the distance metric.
//
// Fields:
//   - VowelWeight — substitution cost when both symbols are ASJP vowels and
//     differ. 1.0 reproduces the unweighted Levenshtein distance; values
//     below 1.0 discount vowel alternations. The value is applied as-is:
//     0 makes vowel substitutions free, and even negative weights are
//     accepted (the DP stays well-defined, merely reinterpreting the cost).
//
// A nil *Options passed to any function in this package means DefaultOptions().
type Options struct {
	VowelWeight float64
}

// DefaultOptions returns the canonical metric configuration:
// unweighted Levenshtein (VowelWeight = 1.0).
func DefaultOptions() Options {
	return Options{VowelWeight: defaultVowelWeight}
}
