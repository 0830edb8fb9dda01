// Package agent answers chat messages. Each message is learned from, routed
// and personalized while holding a per-user lock, so one user's messages are
// handled in arrival order and different users proceed in parallel.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/easeaico/oriona/internal/dialogue"
	"github.com/easeaico/oriona/internal/emotion"
	"github.com/easeaico/oriona/internal/knowledge"
	"github.com/easeaico/oriona/internal/profile"
	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/router"
	"github.com/easeaico/oriona/internal/search"
	"github.com/easeaico/oriona/internal/types"
)

const summaryVocabularyLimit = 10

// Options wires a Companion. Knowledge and Searcher may be nil.
type Options struct {
	Profiles         profile.Repo
	Engagements      dialogue.EngagementRepo
	Knowledge        knowledge.Repo
	Searcher         search.Searcher
	Random           random.Source
	SearchTimeout    time.Duration
	LearningCooldown time.Duration
}

// ChatRequest is one user message plus the prior turns of the conversation.
type ChatRequest struct {
	UserID  string
	Message string
	History []types.Turn
	Mode    types.Mode
}

// ChatResponse is the final, personalized reply.
type ChatResponse struct {
	RequestID   string
	Message     string
	Route       router.Route
	Kind        emotion.Kind
	Mode        types.Mode
	Results     []types.SearchResult
	HasLearning bool
}

// Summary is everything learned about one user.
type Summary struct {
	UserID      string                  `json:"user_id"`
	Description string                  `json:"description"`
	Profile     *profile.Stats          `json:"profile"`
	Engagement  *dialogue.Stats         `json:"engagement"`
	TopWords    []types.VocabularyEntry `json:"top_words"`
}

// Companion orchestrates learning, routing and personalization.
type Companion struct {
	profiles *profile.Service
	dialogue *dialogue.Engine
	learner  *knowledge.Learner
	searcher search.Searcher
	router   *router.Router
	locks    *userLocks
}

// New builds a Companion and every engine behind it.
func New(opts Options) (*Companion, error) {
	if opts.Profiles == nil || opts.Engagements == nil {
		return nil, fmt.Errorf("profile and engagement repositories are required")
	}
	rnd := opts.Random
	if rnd == nil {
		rnd = random.New(0)
	}
	timeout := opts.SearchTimeout
	if timeout <= 0 {
		timeout = router.DefaultSearchTimeout
	}

	var searcher search.Searcher
	if opts.Searcher != nil {
		searcher = bounded(opts.Searcher, timeout)
	}

	learner := knowledge.NewLearner(knowledge.NewBase(), searcher, opts.Knowledge, rnd, opts.LearningCooldown)
	engine := dialogue.NewEngine(opts.Engagements, rnd)
	responder := emotion.NewResponder(learner, rnd)

	return &Companion{
		profiles: profile.NewService(opts.Profiles, rnd),
		dialogue: engine,
		learner:  learner,
		searcher: searcher,
		router:   router.New(searcher, engine, responder, rnd, timeout),
		locks:    newUserLocks(),
	}, nil
}

// bounded caps every search call at timeout, whoever makes it.
func bounded(s search.Searcher, timeout time.Duration) search.Searcher {
	return search.SearcherFunc(func(ctx context.Context, query string) search.Outcome {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return s.Search(ctx, query)
	})
}

// Restore loads persisted knowledge into the in-memory base.
func (c *Companion) Restore(ctx context.Context) error {
	return c.learner.Restore(ctx)
}

// Reply answers one message. External failures degrade to fallback text;
// the only errors are a missing user id and a cancelled context.
func (c *Companion) Reply(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return ChatResponse{}, fmt.Errorf("user id is required")
	}
	unlock, err := c.locks.lock(ctx, req.UserID)
	if err != nil {
		return ChatResponse{}, err
	}
	defer unlock()

	if _, err := c.profiles.LearnFromMessage(ctx, req.UserID, req.Message); err != nil {
		slog.Warn("failed to learn from message", "user_id", req.UserID, "error", err)
	}

	reply := c.router.Route(ctx, router.Request{
		UserID:  req.UserID,
		Message: req.Message,
		History: req.History,
		Mode:    req.Mode,
	})
	if err := ctx.Err(); err != nil {
		return ChatResponse{}, err
	}

	text := reply.Text
	if reply.Personalize {
		text = c.profiles.Personalize(ctx, req.UserID, text)
	}

	resp := ChatResponse{
		RequestID:   uuid.NewString(),
		Message:     text,
		Route:       reply.Route,
		Kind:        reply.Kind,
		Mode:        reply.Mode,
		Results:     reply.Results,
		HasLearning: reply.Mode == types.ModeConversation,
	}
	slog.Info("reply generated",
		"request_id", resp.RequestID,
		"user_id", req.UserID,
		"mode", resp.Mode,
		"route", resp.Route,
	)
	return resp, nil
}

// IceBreaker returns a conversation starter.
func (c *Companion) IceBreaker() string {
	return c.dialogue.IceBreaker()
}

// FollowUp returns a follow-up prompt personalized for userID.
func (c *Companion) FollowUp(ctx context.Context, userID string) string {
	return c.profiles.Personalize(ctx, userID, c.dialogue.FollowUpResponse())
}

// Recall phrases the memory of userID most related to query.
func (c *Companion) Recall(ctx context.Context, userID, query string) (string, bool) {
	return c.profiles.RecallFor(ctx, userID, query)
}

// UserSummary collects the profile, engagement and top vocabulary of userID.
func (c *Companion) UserSummary(ctx context.Context, userID string) (*Summary, error) {
	stats, err := c.profiles.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	description, err := c.profiles.Describe(ctx, userID)
	if err != nil {
		return nil, err
	}
	engagement, err := c.dialogue.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	words, err := c.profiles.Vocabulary(ctx, userID, summaryVocabularyLimit)
	if err != nil {
		return nil, err
	}
	return &Summary{
		UserID:      userID,
		Description: description,
		Profile:     stats,
		Engagement:  engagement,
		TopWords:    words,
	}, nil
}

// Forget drops the profile and engagement state of userID.
func (c *Companion) Forget(ctx context.Context, userID string) error {
	unlock, err := c.locks.lock(ctx, userID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := c.profiles.Forget(ctx, userID); err != nil {
		return err
	}
	return c.dialogue.Reset(ctx, userID)
}

// KnowledgeStats reports the size of the psychology knowledge base.
func (c *Companion) KnowledgeStats() knowledge.Stats {
	return c.learner.Stats()
}

// Search runs a plain web search. Failures yield no results.
func (c *Companion) Search(ctx context.Context, query string) []types.SearchResult {
	if c.searcher == nil {
		return nil
	}
	outcome := c.searcher.Search(ctx, query)
	if !outcome.OK() {
		if outcome.Err != nil {
			slog.Warn("web search failed", "error", outcome.Err)
		}
		return nil
	}
	return outcome.Results
}
