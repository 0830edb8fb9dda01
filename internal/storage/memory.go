package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/easeaico/oriona/internal/knowledge"
	"github.com/easeaico/oriona/internal/lexical"
	"github.com/easeaico/oriona/internal/types"
)

// MemoryStore keeps everything in process memory. Values are deep-copied on
// the way in and out, so callers never share state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	profiles    map[string]*types.UserProfile
	engagements map[string]*types.Engagement
	learned     knowledge.Snapshot
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:    map[string]*types.UserProfile{},
		engagements: map[string]*types.Engagement{},
	}
}

func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID].Clone(), nil
}

func (s *MemoryStore) SaveProfile(ctx context.Context, p *types.UserProfile) error {
	if p == nil {
		return errNilProfile
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p.Clone()
	return nil
}

func (s *MemoryStore) DeleteProfile(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

func (s *MemoryStore) SimilarMemories(ctx context.Context, userID string, vector []float32, limit int, threshold float64) ([]types.Memory, error) {
	if len(vector) == 0 {
		return nil, nil
	}
	s.mu.RLock()
	p := s.profiles[userID]
	type scored struct {
		mem   types.Memory
		score float64
	}
	var candidates []scored
	if p != nil {
		for _, m := range p.Memories {
			if len(m.Vector) == 0 {
				continue
			}
			if score := lexical.Cosine(vector, m.Vector); score > threshold {
				candidates = append(candidates, scored{mem: m.Clone(), score: score})
			}
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]types.Memory, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.mem)
	}
	return out, nil
}

func (s *MemoryStore) GetEngagement(ctx context.Context, userID string) (*types.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engagements[userID].Clone(), nil
}

func (s *MemoryStore) SaveEngagement(ctx context.Context, e *types.Engagement) error {
	if e == nil {
		return errNilEngagement
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engagements[e.UserID] = e.Clone()
	return nil
}

func (s *MemoryStore) DeleteEngagement(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.engagements, userID)
	return nil
}

func (s *MemoryStore) LoadKnowledge(ctx context.Context) (*knowledge.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &knowledge.Snapshot{
		Techniques: cloneTechniques(s.learned.Techniques),
		Concepts:   append([]knowledge.Concept(nil), s.learned.Concepts...),
		Empathy:    append([]string(nil), s.learned.Empathy...),
	}, nil
}

// SaveKnowledge appends entries whose key, name or phrase is new.
func (s *MemoryStore) SaveKnowledge(ctx context.Context, learned knowledge.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range learned.Techniques {
		if !hasTechnique(s.learned.Techniques, t.Key) {
			s.learned.Techniques = append(s.learned.Techniques, cloneTechniques([]knowledge.Technique{t})...)
		}
	}
	for _, c := range learned.Concepts {
		if !hasConcept(s.learned.Concepts, c.Name) {
			s.learned.Concepts = append(s.learned.Concepts, c)
		}
	}
	for _, p := range learned.Empathy {
		if !hasPhrase(s.learned.Empathy, p) {
			s.learned.Empathy = append(s.learned.Empathy, p)
		}
	}
	return nil
}

func cloneTechniques(in []knowledge.Technique) []knowledge.Technique {
	if in == nil {
		return nil
	}
	out := make([]knowledge.Technique, len(in))
	for i, t := range in {
		t.NaturalLanguage = append([]string(nil), t.NaturalLanguage...)
		out[i] = t
	}
	return out
}

func hasTechnique(list []knowledge.Technique, key string) bool {
	for _, t := range list {
		if t.Key == key {
			return true
		}
	}
	return false
}

func hasConcept(list []knowledge.Concept, name string) bool {
	for _, c := range list {
		if c.Name == name {
			return true
		}
	}
	return false
}

func hasPhrase(list []string, phrase string) bool {
	for _, p := range list {
		if p == phrase {
			return true
		}
	}
	return false
}
