package nld

import (
	"context"
	"runtime"

	"github.com/katalvlaran/lexdist/wordlist"
	"golang.org/x/sync/errgroup"
)

// Matrix returns the symmetric pairwise LanguageDistance matrix for lists,
// with a zero diagonal: out[i][j] == out[j][i] == LanguageDistance(lists[i],
// lists[j], opts).
//
// Upper-triangle pairs are computed concurrently, bounded by GOMAXPROCS
// workers; word lists are immutable, so no locking is needed. The first
// pair that shares no concepts (or a canceled ctx) aborts the computation
// and is returned as the error.
func Matrix(ctx context.Context, lists []*wordlist.WordList, opts *Options) ([][]float64, error) {
	n := len(lists)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := LanguageDistance(lists[i], lists[j], opts)
				if err != nil {
					return err
				}
				out[i][j], out[j][i] = d, d

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
