// Package profile keeps the adaptive per-user record: style, formality,
// interests, vocabulary, topic memories and personality traits.
package profile

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/easeaico/oriona/internal/lexical"
	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

// Personality traits accumulated from messages.
const (
	TraitConversational = "conversacional"
	TraitEnergetic      = "energético"
	TraitPolite         = "cortés"
	TraitRelaxed        = "relajado"
	TraitPersonal       = "personal"
	TraitTechnical      = "técnico"
	TraitCreative       = "creativo"
	TraitStudious       = "estudioso"
	TraitCurious        = "curioso"
)

const (
	memoryMinRunes     = 20
	memorySummaryRunes = 80
	memoryKeywordCap   = 10
	contextRunes       = 200
)

// Repo persists profiles. GetProfile returns nil, nil when the user is unknown.
type Repo interface {
	GetProfile(ctx context.Context, userID string) (*types.UserProfile, error)
	SaveProfile(ctx context.Context, profile *types.UserProfile) error
	DeleteProfile(ctx context.Context, userID string) error
}

// MemoryIndex is implemented by stores that can rank memories by vector similarity.
type MemoryIndex interface {
	SimilarMemories(ctx context.Context, userID string, vector []float32, limit int, threshold float64) ([]types.Memory, error)
}

// Service learns from messages and personalizes replies.
type Service struct {
	repo Repo
	rnd  random.Source
	now  func() time.Time
}

// NewService returns a profile service backed by repo.
func NewService(repo Repo, rnd random.Source) *Service {
	return &Service{repo: repo, rnd: rnd, now: time.Now}
}

// InitProfile creates the profile when absent and returns it.
func (s *Service) InitProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("profile service not configured")
	}
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p != nil {
		return p, nil
	}
	now := s.now()
	p = &types.UserProfile{
		UserID:    userID,
		Style:     types.StyleNeutral,
		Formality: types.FormalityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

// Forget drops everything learned about userID.
func (s *Service) Forget(ctx context.Context, userID string) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("profile service not configured")
	}
	if err := s.repo.DeleteProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// LearnFromMessage updates the profile of userID with evidence from text.
func (s *Service) LearnFromMessage(ctx context.Context, userID, text string) (*types.UserProfile, error) {
	p, err := s.InitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	lower := strings.ToLower(text)

	p.MessageCount++

	conversational := utils.ContainsAny(lower, lexical.ConversationalWords) ||
		(utils.ContainsAny(lower, lexical.QuestionWords) && !utils.ContainsAny(lower, lexical.SearchIntentWords))
	if conversational {
		addTrait(p, TraitConversational)
	}

	switch style := lexical.DetectStyle(text); style {
	case types.StyleEnthusiastic:
		p.Style = style
		addTrait(p, TraitEnergetic)
	case types.StyleFormal:
		p.Style = style
		addTrait(p, TraitPolite)
	case types.StyleInformal:
		p.Style = style
		addTrait(p, TraitRelaxed)
	}

	if utils.ContainsWord(lower, "tu") || utils.ContainsWord(lower, "tienes") || utils.ContainsWord(lower, "eres") {
		addTrait(p, TraitPersonal)
	}

	if f := lexical.DetectFormality(text); f != types.FormalityMedium {
		p.Formality = f
	}

	if utils.ContainsAny(lower, lexical.TechnicalWords) {
		touchInterest(p, "tecnología")
		addTrait(p, TraitTechnical)
	}
	if utils.ContainsAny(lower, lexical.CreativeWords) {
		touchInterest(p, "creatividad")
		addTrait(p, TraitCreative)
	}
	if utils.ContainsAny(lower, lexical.AcademicWords) {
		touchInterest(p, "educación")
		addTrait(p, TraitStudious)
	}
	if strings.ContainsAny(text, "?¿") {
		addTrait(p, TraitCurious)
	}

	topic := lexical.DetectTopic(text)
	if topic != lexical.TopicGeneral {
		touchInterest(p, topic)
	}

	keywords := lexical.ExtractKeywords(text)
	learnVocabulary(p, keywords, text, now)

	if utils.RuneLen(text) > memoryMinRunes {
		rememberTopic(p, topic, text, keywords, now)
	}

	p.UpdatedAt = now
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}

func addTrait(p *types.UserProfile, trait string) {
	p.PersonalityTraits = utils.AppendUnique(p.PersonalityTraits, trait)
}

// touchInterest moves tag to the most recent position and drops the oldest
// tags past the cap.
func touchInterest(p *types.UserProfile, tag string) {
	out := p.Interests[:0:0]
	for _, i := range p.Interests {
		if i != tag {
			out = append(out, i)
		}
	}
	out = append(out, tag)
	if len(out) > types.MaxInterests {
		out = out[len(out)-types.MaxInterests:]
	}
	p.Interests = out
}

// learnVocabulary keeps entries ordered by last touch; overflow evicts from the front.
func learnVocabulary(p *types.UserProfile, keywords []string, text string, now time.Time) {
	ctxText := utils.TruncateRunes(text, contextRunes)
	for _, word := range keywords {
		entry := types.VocabularyEntry{Word: word, Category: lexical.CategorizeWord(word)}
		kept := p.Vocabulary[:0:0]
		for _, e := range p.Vocabulary {
			if e.Word == word {
				entry = e
				continue
			}
			kept = append(kept, e)
		}
		entry.Frequency++
		entry.Context = ctxText
		entry.LastUsed = now
		p.Vocabulary = append(kept, entry)
	}
	if over := len(p.Vocabulary) - types.MaxVocabulary; over > 0 {
		p.Vocabulary = append([]types.VocabularyEntry(nil), p.Vocabulary[over:]...)
	}
}

// rememberTopic merges the message into the memory for its topic and keeps
// memories most-recent-first.
func rememberTopic(p *types.UserProfile, topic, text string, keywords []string, now time.Time) {
	sentiment := lexical.DetectSentiment(text)
	importance := clamp(int(sentiment.Intensity*5+0.5), 1, 5)
	summary := quoteSummary(text)

	var mem types.Memory
	rest := make([]types.Memory, 0, len(p.Memories)+1)
	found := false
	for _, m := range p.Memories {
		if !found && m.Topic == topic {
			mem = m
			found = true
			continue
		}
		rest = append(rest, m)
	}
	if found {
		mem.Summary = summary
		for _, kw := range keywords {
			if len(mem.Keywords) >= memoryKeywordCap {
				break
			}
			mem.Keywords = utils.AppendUnique(mem.Keywords, kw)
		}
		mem.MentionCount++
		mem.Sentiment = sentiment.Label
		if importance > mem.Importance {
			mem.Importance = importance
		}
	} else {
		mem = types.Memory{
			Topic:        topic,
			Summary:      summary,
			Keywords:     append([]string(nil), keywords...),
			Sentiment:    sentiment.Label,
			Importance:   importance,
			MentionCount: 1,
		}
	}
	mem.LastMentioned = now
	mem.Vector = lexical.KeywordVector(mem.Keywords)

	memories := append([]types.Memory{mem}, rest...)
	sort.SliceStable(memories, func(i, j int) bool {
		return memories[i].LastMentioned.After(memories[j].LastMentioned)
	})
	if len(memories) > types.MaxMemories {
		memories = memories[:types.MaxMemories]
	}
	p.Memories = memories
}

func quoteSummary(text string) string {
	cut := utils.TruncateRunes(text, memorySummaryRunes)
	if cut != text {
		cut += "..."
	}
	return `"` + cut + `"`
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
