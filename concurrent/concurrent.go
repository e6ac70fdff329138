// Package concurrent fans a parse out over multiple files. Each parser.Parser
// is pure CPU and holds no shared state (see parser.Parser's doc comment), so
// distinct files can be parsed on distinct goroutines with no locking beyond
// collecting results back in input order.
package concurrent

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/parser"
	"github.com/cowwoc/styler-sub000/source"
)

// File pairs a path with its source text, the unit ParseFiles fans out over.
type File struct {
	Path string
	Text string
}

// Result is one File's outcome: either a ParseResult, or a non-nil Err if the
// text failed to even become a Source (e.g. oversized input).
type Result struct {
	Path   string
	Parsed parser.ParseResult
	Err    error
}

// ParseFiles parses every file concurrently, bounded by concurrency
// simultaneous goroutines (0 disables concurrency and runs one at a time; a
// negative value removes the bound entirely), and returns results in the same
// order as files. It stops launching new work and returns the first error
// once ctx is cancelled.
//
// Modeled on the teacher's ConcurrentMapFuncWithError (database/concurrent.go):
// an errgroup.Group with an explicit SetLimit, fed through an ordered-output
// channel so results come back in input order despite finishing out of order.
func ParseFiles(ctx context.Context, files []File, concurrency int, version javaversion.Version) ([]Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	switch {
	case concurrency == 0:
		eg.SetLimit(1)
	case concurrency > 0:
		eg.SetLimit(concurrency)
	}

	type ordered struct {
		order  int
		result Result
	}
	ch := make(chan ordered, len(files))

	for i := range files {
		order := i
		f := files[i]
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			src, err := source.New(f.Text)
			if err != nil {
				ch <- ordered{order, Result{Path: f.Path, Err: err}}
				return nil
			}
			parsed := parser.Parse(src, version)
			ch <- ordered{order, Result{Path: f.Path, Parsed: parsed}}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	close(ch)

	tmp := make([]ordered, 0, len(files))
	for o := range ch {
		tmp = append(tmp, o)
	}
	slices.SortFunc(tmp, func(a, b ordered) int {
		return cmp.Compare(a.order, b.order)
	})

	results := make([]Result, len(tmp))
	for i, o := range tmp {
		results[i] = o.result
	}
	return results, nil
}
