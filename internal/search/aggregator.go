package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/easeaico/oriona/internal/types"
)

// DefaultMaxResults caps the merged result list.
const DefaultMaxResults = 6

// Aggregator queries every provider concurrently and merges the answers in
// provider order.
type Aggregator struct {
	providers  []Provider
	maxResults int
}

// NewAggregator returns an aggregator over providers.
func NewAggregator(providers []Provider, maxResults int) *Aggregator {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Aggregator{providers: providers, maxResults: maxResults}
}

// Search never returns a partial failure: a provider error is logged and
// skipped. The outcome fails only when every provider failed or nothing was
// found.
func (a *Aggregator) Search(ctx context.Context, query string) Outcome {
	if strings.TrimSpace(query) == "" {
		return Failed(fmt.Errorf("empty query"))
	}
	if len(a.providers) == 0 {
		return Failed(fmt.Errorf("no search providers configured"))
	}

	results := make([][]types.SearchResult, len(a.providers))
	errs := make([]error, len(a.providers))

	var g errgroup.Group
	for i, p := range a.providers {
		g.Go(func() error {
			res, err := p.Search(ctx, query)
			if err != nil {
				slog.Warn("search provider failed", "provider", p.Name(), "error", err)
				errs[i] = fmt.Errorf("%s: %w", p.Name(), err)
				return nil
			}
			slog.Debug("search provider answered", "provider", p.Name(), "results", len(res))
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Failed(err)
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(a.providers) {
		return Failed(errors.Join(errs...))
	}

	merged := Dedup(results...)
	if len(merged) > a.maxResults {
		merged = merged[:a.maxResults]
	}
	if len(merged) == 0 {
		return Failed(ErrNoResults)
	}
	return Outcome{Results: merged}
}

// Dedup concatenates lists dropping results whose title was already seen,
// ignoring case.
func Dedup(lists ...[]types.SearchResult) []types.SearchResult {
	seen := make(map[string]struct{})
	var out []types.SearchResult
	for _, list := range lists {
		for _, r := range list {
			key := strings.ToLower(r.Title)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
