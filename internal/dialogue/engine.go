// Package dialogue answers small talk from an ordered table of scripted
// patterns and escalates engagement questions as a user keeps talking.
package dialogue

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
)

// Context tags recorded in a user's engagement topics.
const (
	ContextGreeting        = "greeting"
	ContextWellbeing       = "wellbeing"
	ContextActivity        = "activity"
	ContextIdentity        = "identity"
	ContextCapabilities    = "capabilities"
	ContextPersonalSharing = "personal_sharing"
	ContextEmotionalState  = "emotional_state"
	ContextPreferences     = "preferences"
	ContextGratitude       = "gratitude"
)

// Tier is how engaging a pattern is.
type Tier string

const (
	TierBasic  Tier = "basic"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

const (
	followUpThreshold   = 0.7
	escalationThreshold = 0.5
	escalationMinCount  = 3
	gettingToKnowBelow  = 5
	deepInterestAbove   = 3
	maxInterestLevel    = 5
)

// Pattern is one scripted exchange.
type Pattern struct {
	Triggers  []*regexp.Regexp
	Responses []string
	FollowUps []string
	Context   string
	Tier      Tier
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// EngagementRepo persists engagement state. GetEngagement returns nil, nil
// for a user the engine has not seen.
type EngagementRepo interface {
	GetEngagement(ctx context.Context, userID string) (*types.Engagement, error)
	SaveEngagement(ctx context.Context, engagement *types.Engagement) error
	DeleteEngagement(ctx context.Context, userID string) error
}

// Stats summarizes a user's engagement.
type Stats struct {
	ConversationCount int       `json:"conversation_count"`
	TopicsExplored    int       `json:"topics_explored"`
	InterestLevel     int       `json:"interest_level"`
	LastInteraction   time.Time `json:"last_interaction,omitzero"`
	Topics            []string  `json:"topics"`
}

// Engine matches utterances against the pattern table.
type Engine struct {
	patterns []Pattern
	repo     EngagementRepo
	rnd      random.Source
	now      func() time.Time
}

// NewEngine returns an engine over the built-in pattern table.
func NewEngine(repo EngagementRepo, rnd random.Source) *Engine {
	return &Engine{patterns: patterns, repo: repo, rnd: rnd, now: time.Now}
}

// Match returns the first pattern with a trigger matching utterance.
func (e *Engine) Match(utterance string) (*Pattern, bool) {
	text := strings.TrimSpace(utterance)
	for i := range e.patterns {
		for _, re := range e.patterns[i].Triggers {
			if re.MatchString(text) {
				return &e.patterns[i], true
			}
		}
	}
	return nil, false
}

// Generate answers utterance from the pattern table. The boolean is false
// when no pattern matched, in which case the caller should try another
// strategy; engagement is only updated on a match.
func (e *Engine) Generate(ctx context.Context, userID, utterance string) (string, bool, error) {
	if e == nil || e.repo == nil {
		return "", false, fmt.Errorf("dialogue engine not configured")
	}
	p, ok := e.Match(utterance)
	if !ok {
		return "", false, nil
	}

	eng, err := e.engagement(ctx, userID)
	if err != nil {
		return "", false, err
	}

	var sb strings.Builder
	sb.WriteString(random.Pick(e.rnd, p.Responses))
	if len(p.FollowUps) > 0 && e.rnd.Float64() > followUpThreshold {
		sb.WriteString("\n\n")
		sb.WriteString(random.Pick(e.rnd, p.FollowUps))
	}
	if eng.ConversationCount > escalationMinCount && e.rnd.Float64() > escalationThreshold {
		sb.WriteString("\n\n")
		sb.WriteString(random.Pick(e.rnd, e.questionPool(eng)))
	}

	eng.ConversationCount++
	eng.LastInteraction = e.now()
	if !slices.Contains(eng.Topics, p.Context) {
		eng.Topics = append(eng.Topics, p.Context)
	}
	eng.InterestLevel = min(maxInterestLevel, len(eng.Topics))

	if err := e.repo.SaveEngagement(ctx, eng); err != nil {
		return "", false, fmt.Errorf("failed to save engagement: %w", err)
	}
	return sb.String(), true, nil
}

func (e *Engine) engagement(ctx context.Context, userID string) (*types.Engagement, error) {
	eng, err := e.repo.GetEngagement(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get engagement: %w", err)
	}
	if eng == nil {
		eng = &types.Engagement{UserID: userID, InterestLevel: 1}
	}
	return eng, nil
}

// questionPool selects the escalation tier for eng.
func (e *Engine) questionPool(eng *types.Engagement) []string {
	switch {
	case eng.ConversationCount < gettingToKnowBelow:
		return gettingToKnow
	case eng.InterestLevel > deepInterestAbove:
		return deepConversation
	case e.rnd.Float64() > 0.5:
		return funAndLight
	default:
		return creativeThinking
	}
}

// FollowUpResponse reacts to a user's answer and asks a related question.
func (e *Engine) FollowUpResponse() string {
	return random.Pick(e.rnd, followUpOpeners) + "\n\n" + random.Pick(e.rnd, relatedQuestions)
}

// IceBreaker returns a conversation opener.
func (e *Engine) IceBreaker() string {
	return random.Pick(e.rnd, iceBreakers)
}

// Stats returns the engagement summary for userID.
func (e *Engine) Stats(ctx context.Context, userID string) (*Stats, error) {
	if e == nil || e.repo == nil {
		return nil, fmt.Errorf("dialogue engine not configured")
	}
	eng, err := e.engagement(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Stats{
		ConversationCount: eng.ConversationCount,
		TopicsExplored:    len(eng.Topics),
		InterestLevel:     eng.InterestLevel,
		LastInteraction:   eng.LastInteraction,
		Topics:            append([]string{}, eng.Topics...),
	}, nil
}

// Reset forgets the engagement state of userID.
func (e *Engine) Reset(ctx context.Context, userID string) error {
	if e == nil || e.repo == nil {
		return fmt.Errorf("dialogue engine not configured")
	}
	if err := e.repo.DeleteEngagement(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete engagement: %w", err)
	}
	return nil
}
