package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/easeaico/oriona/internal/lexical"
	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

const (
	relevantMemoryLimit = 3
	similarityThreshold = 0.5
)

// Stats summarizes what has been learned about a user.
type Stats struct {
	Vocabulary   int             `json:"vocabulary"`
	Memories     int             `json:"memories"`
	Interests    int             `json:"interests"`
	Traits       []string        `json:"traits"`
	Style        types.Style     `json:"style"`
	Formality    types.Formality `json:"formality"`
	MessageCount int             `json:"message_count"`
}

// RelevantMemories returns up to three memories related to query, most
// recent first. Keyword overlap is tried first; when nothing overlaps and
// the repo supports it, memories are ranked by vector similarity.
func (s *Service) RelevantMemories(ctx context.Context, userID, query string) ([]types.Memory, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	keywords := lexical.ExtractKeywords(query)
	if len(keywords) == 0 {
		return nil, nil
	}

	var matched []types.Memory
	for _, m := range p.Memories {
		if memoryMatches(m, keywords) {
			matched = append(matched, m.Clone())
		}
	}
	if len(matched) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].LastMentioned.After(matched[j].LastMentioned)
		})
		if len(matched) > relevantMemoryLimit {
			matched = matched[:relevantMemoryLimit]
		}
		return matched, nil
	}

	index, ok := s.repo.(MemoryIndex)
	if !ok {
		return nil, nil
	}
	similar, err := index.SimilarMemories(ctx, userID, lexical.KeywordVector(keywords), relevantMemoryLimit, similarityThreshold)
	if err != nil {
		slog.Warn("failed to rank memories by similarity", "user_id", userID, "error", err)
		return nil, nil
	}
	return similar, nil
}

func memoryMatches(m types.Memory, keywords []string) bool {
	summary := strings.ToLower(m.Summary)
	for _, kw := range keywords {
		for _, mk := range m.Keywords {
			if mk == kw {
				return true
			}
		}
		if strings.Contains(m.Topic, kw) || strings.Contains(summary, kw) {
			return true
		}
	}
	return false
}

// Vocabulary returns the user's most frequent words.
func (s *Service) Vocabulary(ctx context.Context, userID string, limit int) ([]types.VocabularyEntry, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	out := append([]types.VocabularyEntry(nil), p.Vocabulary...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Stats returns the learning counters of a user, or nil when unknown.
func (s *Service) Stats(ctx context.Context, userID string) (*Stats, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	return &Stats{
		Vocabulary:   len(p.Vocabulary),
		Memories:     len(p.Memories),
		Interests:    len(p.Interests),
		Traits:       append([]string(nil), p.PersonalityTraits...),
		Style:        p.Style,
		Formality:    p.Formality,
		MessageCount: p.MessageCount,
	}, nil
}

// Describe renders a short human description of the profile.
func (s *Service) Describe(ctx context.Context, userID string) (string, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		p = &types.UserProfile{Style: types.StyleNeutral}
	}
	return describe(p), nil
}

func describe(p *types.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("Basándome en nuestras conversaciones, veo que eres una persona ")
	if len(p.PersonalityTraits) > 0 {
		traits := p.PersonalityTraits
		if len(traits) > 3 {
			traits = traits[:3]
		}
		sb.WriteString(strings.Join(traits, ", "))
	} else {
		sb.WriteString("interesante")
	}
	if len(p.Interests) > 0 {
		sb.WriteString(" con interés en ")
		sb.WriteString(strings.Join(p.Interests, ", "))
	}
	sb.WriteString(". Tu estilo de comunicación es ")
	switch p.Style {
	case types.StyleEnthusiastic:
		sb.WriteString("entusiasta y energético")
	case types.StyleFormal:
		sb.WriteString("formal y cortés")
	case types.StyleInformal:
		sb.WriteString("relajado y casual")
	default:
		sb.WriteString("equilibrado")
	}
	sb.WriteString(".")
	return sb.String()
}

// Recall phrases a memory as a reminder, e.g. "💭 Veo que te interesa el
// tema de salud, como mencionaste hace 2 horas."
func Recall(m types.Memory, now time.Time) string {
	elapsed := elapsedPhrase(now.Sub(m.LastMentioned))
	if m.MentionCount > 1 {
		return fmt.Sprintf("🧠 Recuerdo que %s hablamos sobre %s. %s...", elapsed, m.Topic, utils.TruncateRunes(m.Summary, 100))
	}
	return fmt.Sprintf("💭 Veo que te interesa el tema de %s, como mencionaste %s.", m.Topic, elapsed)
}

func elapsedPhrase(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours())
	minutes := int(d.Minutes())
	switch {
	case days > 0:
		if days > 1 {
			return fmt.Sprintf("hace %d días", days)
		}
		return "hace 1 día"
	case hours > 0:
		if hours > 1 {
			return fmt.Sprintf("hace %d horas", hours)
		}
		return "hace 1 hora"
	case minutes > 5:
		return fmt.Sprintf("hace %d minutos", minutes)
	default:
		return "hace un momento"
	}
}

// RecallFor returns a reminder of the memory most relevant to query.
func (s *Service) RecallFor(ctx context.Context, userID, query string) (string, bool) {
	memories, err := s.RelevantMemories(ctx, userID, query)
	if err != nil || len(memories) == 0 {
		return "", false
	}
	return Recall(memories[0], s.now()), true
}
