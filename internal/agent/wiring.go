package agent

import (
	"fmt"

	"github.com/easeaico/oriona/internal/config"
	"github.com/easeaico/oriona/internal/dialogue"
	"github.com/easeaico/oriona/internal/knowledge"
	"github.com/easeaico/oriona/internal/profile"
	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/search"
)

// Repos bundles the storage the companion needs.
type Repos struct {
	Profiles    profile.Repo
	Engagements dialogue.EngagementRepo
	Knowledge   knowledge.Repo
}

// NewSearcher builds the rate-limited multi-provider web search from cfg.
func NewSearcher(cfg *config.Config) (*search.Aggregator, error) {
	fetcher := search.NewHTTPFetcher(cfg.SearchTimeout, cfg.SearchRate, cfg.SearchBurst, cfg.SearchUserAgent)
	providers, err := search.NewProviders(cfg.SearchProviders, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to build search providers: %w", err)
	}
	return search.NewAggregator(providers, cfg.SearchMaxResults), nil
}

// NewFromConfig builds a companion over repos with live web search.
func NewFromConfig(cfg *config.Config, repos Repos) (*Companion, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	searcher, err := NewSearcher(cfg)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Profiles:         repos.Profiles,
		Engagements:      repos.Engagements,
		Knowledge:        repos.Knowledge,
		Searcher:         searcher,
		Random:           random.New(cfg.RandomSeed),
		SearchTimeout:    cfg.SearchTimeout,
		LearningCooldown: cfg.LearningCooldown,
	})
}
