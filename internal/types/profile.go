package types

import "time"

// Style is the dominant communication style detected for a user.
type Style string

const (
	StyleNeutral      Style = "neutral"
	StyleEnthusiastic Style = "enthusiastic"
	StyleFormal       Style = "formal"
	StyleInformal     Style = "informal"
)

// Formality is the register a user writes in.
type Formality string

const (
	FormalityLow    Formality = "low"
	FormalityMedium Formality = "medium"
	FormalityHigh   Formality = "high"
)

const (
	// MaxVocabulary bounds the per-user vocabulary table.
	MaxVocabulary = 30
	// MaxMemories bounds the per-user topic memories.
	MaxMemories = 20
	// MaxInterests bounds the per-user interest tags.
	MaxInterests = 15
)

// UserProfile is the adaptive per-user record.
type UserProfile struct {
	UserID            string            `json:"user_id"`
	Style             Style             `json:"style"`
	Formality         Formality         `json:"formality"`
	Interests         []string          `json:"interests"`
	Vocabulary        []VocabularyEntry `json:"vocabulary"`
	Memories          []Memory          `json:"memories"`
	PersonalityTraits []string          `json:"personality_traits"`
	MessageCount      int               `json:"message_count"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// HasTrait reports whether the profile carries the given trait.
func (p *UserProfile) HasTrait(trait string) bool {
	for _, t := range p.PersonalityTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate it without sharing slices.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Interests = append([]string(nil), p.Interests...)
	out.PersonalityTraits = append([]string(nil), p.PersonalityTraits...)
	out.Vocabulary = append([]VocabularyEntry(nil), p.Vocabulary...)
	out.Memories = make([]Memory, len(p.Memories))
	for i, m := range p.Memories {
		out.Memories[i] = m.Clone()
	}
	if p.Memories == nil {
		out.Memories = nil
	}
	return &out
}

// VocabularyEntry tracks how often a user used a word and where.
type VocabularyEntry struct {
	Word      string    `json:"word"`
	Frequency int       `json:"frequency"`
	Context   string    `json:"context"`
	Category  string    `json:"category"`
	LastUsed  time.Time `json:"last_used"`
}

// Memory is a topic-level snippet of what a user talked about.
type Memory struct {
	Topic         string    `json:"topic"`
	Summary       string    `json:"summary"`
	Keywords      []string  `json:"keywords"`
	Sentiment     string    `json:"sentiment"`
	Importance    int       `json:"importance"`
	LastMentioned time.Time `json:"last_mentioned"`
	MentionCount  int       `json:"mention_count"`
	Vector        []float32 `json:"-"` // keyword embedding, not serialized
}

// Clone returns a deep copy of the memory.
func (m Memory) Clone() Memory {
	m.Keywords = append([]string(nil), m.Keywords...)
	m.Vector = append([]float32(nil), m.Vector...)
	return m
}

// Engagement is the per-user state of the pattern dialogue engine.
type Engagement struct {
	UserID            string    `json:"user_id"`
	ConversationCount int       `json:"conversation_count"`
	Topics            []string  `json:"topics"`
	InterestLevel     int       `json:"interest_level"`
	LastInteraction   time.Time `json:"last_interaction"`
}

// Clone returns a deep copy of the engagement state.
func (e *Engagement) Clone() *Engagement {
	if e == nil {
		return nil
	}
	out := *e
	out.Topics = append([]string(nil), e.Topics...)
	return &out
}
