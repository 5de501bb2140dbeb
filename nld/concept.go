package nld

// ConceptDistance returns the mean normalized Levenshtein distance between
// every pair of word forms drawn from forms1 × forms2.
//
// Each pair contributes Distance(x, y, opts) / max(len(x), len(y)); a pair
// of empty strings contributes 0 (nothing to normalize by). When either
// list is empty there are no pairs, and the result is 0 by definition —
// this is the documented edge case for a shared concept with missing forms,
// not an error.
//
// The typical ASJP case is one form per language per concept, where this
// degenerates to a single normalized distance.
func ConceptDistance(forms1, forms2 []string, opts *Options) float64 {
	if len(forms1) == 0 || len(forms2) == 0 {
		return 0.0
	}

	var sum float64
	for _, x := range forms1 {
		for _, y := range forms2 {
			sum += normalizedDistance(x, y, opts)
		}
	}

	return sum / float64(len(forms1)*len(forms2))
}

// normalizedDistance divides the edit distance by the longer form's length,
// with 0 for two empty forms.
func normalizedDistance(x, y string, opts *Options) float64 {
	longer := max(len(x), len(y))
	if longer == 0 {
		return 0.0
	}

	return Distance(x, y, opts) / float64(longer)
}
