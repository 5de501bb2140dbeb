package nld

// Distance returns the vowel-weighted Levenshtein distance between the
// phonetic transcriptions a and b.
//
// Costs per DP step:
//   - deletion / insertion: 1.0
//   - substitution: 0.0 for identical symbols, opts.VowelWeight when both
//     symbols are ASJP vowels (see Vowels), 1.0 otherwise
//
// Transcriptions are compared symbol by symbol; ASJPcode is a single-byte
// alphabet, so symbols are bytes. Empty inputs degrade to cumulative
// insertion/deletion cost: Distance("", s, nil) == len(s).
//
// The result is ≥ 0, equals 0 iff a == b, and is symmetric in a and b.
// nil opts means DefaultOptions(). Pure function, no error conditions.
//
// Complexity: O(len(a)·len(b)) time, O(len(b)) memory (rolling two rows).
func Distance(a, b string, opts *Options) float64 {
	w := defaultVowelWeight
	if opts != nil {
		w = opts.VowelWeight
	}

	n, m := len(a), len(b)

	// Two-row rolling table: prev is row i-1, curr is row i.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = float64(j) // row 0: j insertions
	}

	for i := 1; i <= n; i++ {
		curr[0] = float64(i) // column 0: i deletions
		ca := a[i-1]
		for j := 1; j <= m; j++ {
			del := prev[j] + 1.0
			ins := curr[j-1] + 1.0
			sub := prev[j-1] + substitutionCost(ca, b[j-1], w)
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// substitutionCost returns the cost of replacing symbol ca with cb under
// vowel weight w.
func substitutionCost(ca, cb byte, w float64) float64 {
	switch {
	case ca == cb:
		return 0.0
	case vowelTable[ca] && vowelTable[cb]:
		return w
	default:
		return 1.0
	}
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
