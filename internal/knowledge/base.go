// Package knowledge holds the psychology knowledge base: therapeutic
// techniques, concepts and empathic phrasing, seeded with defaults and
// enriched from search results.
package knowledge

import "sync"

// MaxEmpathyPhrases caps the empathy pool.
const MaxEmpathyPhrases = 50

// Technique is a therapeutic technique and how to phrase it in conversation.
type Technique struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Application     string   `json:"application"`
	NaturalLanguage []string `json:"natural_language"`
}

// Concept is a named psychology concept.
type Concept struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Snapshot is a copy of the learned entries.
type Snapshot struct {
	Techniques []Technique `json:"techniques"`
	Concepts   []Concept   `json:"concepts"`
	Empathy    []string    `json:"empathy"`
}

// Base is append-only: existing names are never overwritten.
type Base struct {
	mu         sync.RWMutex
	techniques []Technique
	techIndex  map[string]int
	concepts   []Concept
	conceptIdx map[string]int
	empathy    []string
	validation []string
	natural    []string
}

// NewBase returns a knowledge base seeded with the default techniques and phrases.
func NewBase() *Base {
	b := &Base{
		techIndex:  map[string]int{},
		conceptIdx: map[string]int{},
		empathy:    append([]string(nil), seedEmpathy...),
		validation: append([]string(nil), seedValidation...),
		natural:    append([]string(nil), seedNatural...),
	}
	for _, t := range seedTechniques {
		b.AddTechnique(t)
	}
	return b
}

// AddTechnique stores t under t.Key unless the key already exists.
func (b *Base) AddTechnique(t Technique) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.techIndex[t.Key]; ok {
		return false
	}
	t.NaturalLanguage = append([]string(nil), t.NaturalLanguage...)
	b.techIndex[t.Key] = len(b.techniques)
	b.techniques = append(b.techniques, t)
	return true
}

// HasTechnique reports whether key is known.
func (b *Base) HasTechnique(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.techIndex[key]
	return ok
}

// AddConcept stores a concept unless the name already exists.
func (b *Base) AddConcept(c Concept) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.conceptIdx[c.Name]; ok {
		return false
	}
	b.conceptIdx[c.Name] = len(b.concepts)
	b.concepts = append(b.concepts, c)
	return true
}

// HasConcept reports whether name is known.
func (b *Base) HasConcept(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.conceptIdx[name]
	return ok
}

// AddEmpathy appends new phrases, skipping duplicates and anything past the cap.
// It returns the phrases actually added.
func (b *Base) AddEmpathy(phrases ...string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var added []string
	for _, p := range phrases {
		if len(b.empathy) >= MaxEmpathyPhrases {
			break
		}
		if contains(b.empathy, p) {
			continue
		}
		b.empathy = append(b.empathy, p)
		added = append(added, p)
	}
	return added
}

// Techniques returns the techniques in insertion order.
func (b *Base) Techniques() []Technique {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Technique, len(b.techniques))
	copy(out, b.techniques)
	return out
}

// Concepts returns the concepts in insertion order.
func (b *Base) Concepts() []Concept {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Concept(nil), b.concepts...)
}

// Concept returns the description of name.
func (b *Base) Concept(name string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i, ok := b.conceptIdx[name]
	if !ok {
		return "", false
	}
	return b.concepts[i].Description, true
}

func (b *Base) phrases() (empathy, validation, natural []string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.empathy...),
		append([]string(nil), b.validation...),
		append([]string(nil), b.natural...)
}

// Counts returns the pool sizes.
func (b *Base) Counts() (techniques, concepts, empathy, validation, natural int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.techniques), len(b.concepts), len(b.empathy), len(b.validation), len(b.natural)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
