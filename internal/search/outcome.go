// Package search is the web search capability: a set of public providers
// fanned out concurrently and merged into one duplicate-free result list.
package search

import (
	"context"
	"errors"

	"github.com/easeaico/oriona/internal/types"
)

// ErrNoResults is reported when every provider answered but nothing was found.
var ErrNoResults = errors.New("no search results")

// Outcome is the typed result of a search call. Callers must check OK before
// using Results.
type Outcome struct {
	Results []types.SearchResult
	Err     error
}

// OK reports whether the search succeeded with at least one result.
func (o Outcome) OK() bool {
	return o.Err == nil && len(o.Results) > 0
}

// Failed builds a failed outcome.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}

// Searcher is the capability consumed by the router and the knowledge learner.
type Searcher interface {
	Search(ctx context.Context, query string) Outcome
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, query string) Outcome

func (f SearcherFunc) Search(ctx context.Context, query string) Outcome {
	return f(ctx, query)
}
