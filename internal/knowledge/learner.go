package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/search"
	"github.com/easeaico/oriona/internal/utils"
)

const (
	// DefaultCooldown is the global pause between learning rounds.
	DefaultCooldown = 5 * time.Minute

	maxResources          = 5
	maxTechniqueRunes     = 50
	maxEmpathicPerSource  = 3
	minEmpathicRunes      = 20
	maxEmpathicRunes      = 100
	maxRelevantTechniques = 2
	maxRelevantConcepts   = 2
)

var (
	techniquePattern = regexp.MustCompile(`(?:técnica|estrategia|método|ejercicio|práctica) de ([^.]+)`)
	sentenceSplit    = regexp.MustCompile(`[.!?]+`)
)

// Repo persists learned entries so they survive restarts.
type Repo interface {
	LoadKnowledge(ctx context.Context) (*Snapshot, error)
	SaveKnowledge(ctx context.Context, learned Snapshot) error
}

// Stats describes the size of the knowledge base.
type Stats struct {
	Techniques        int       `json:"techniques"`
	Concepts          int       `json:"concepts"`
	EmpathyPatterns   int       `json:"empathy_patterns"`
	ValidationPhrases int       `json:"validation_phrases"`
	NaturalPhrases    int       `json:"natural_phrases"`
	LastUpdate        time.Time `json:"last_update,omitzero"`
	Learning          bool      `json:"learning"`
}

// Learner enriches a Base from search results and renders informed responses.
type Learner struct {
	base     *Base
	searcher search.Searcher
	repo     Repo
	rnd      random.Source
	cooldown time.Duration
	now      func() time.Time

	mu         sync.Mutex
	learning   bool
	lastUpdate time.Time
}

// NewLearner returns a learner. repo may be nil to keep knowledge in memory only.
func NewLearner(base *Base, searcher search.Searcher, repo Repo, rnd random.Source, cooldown time.Duration) *Learner {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Learner{
		base:     base,
		searcher: searcher,
		repo:     repo,
		rnd:      rnd,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Base returns the underlying knowledge base.
func (l *Learner) Base() *Base {
	return l.base
}

// Learn runs one learning round for topic. The cooldown is global: once a
// round starts, any topic is skipped until the cooldown elapses, and a call
// made while a round is in flight returns immediately. It reports whether
// a round ran.
func (l *Learner) Learn(ctx context.Context, topic string) bool {
	l.mu.Lock()
	now := l.now()
	if l.learning || (!l.lastUpdate.IsZero() && now.Sub(l.lastUpdate) < l.cooldown) {
		l.mu.Unlock()
		return false
	}
	l.learning = true
	l.lastUpdate = now
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.learning = false
		l.mu.Unlock()
	}()

	slog.Debug("learning psychology resources", "topic", topic)
	learned := Snapshot{}
	for _, res := range l.gather(ctx, topic) {
		l.absorb(res, &learned)
	}

	if l.repo != nil && (len(learned.Techniques) > 0 || len(learned.Concepts) > 0 || len(learned.Empathy) > 0) {
		if err := l.repo.SaveKnowledge(ctx, learned); err != nil {
			slog.Warn("failed to persist learned knowledge", "topic", topic, "error", err)
		}
	}
	slog.Debug("knowledge updated", "topic", topic, "techniques", len(learned.Techniques), "concepts", len(learned.Concepts))
	return true
}

func (l *Learner) gather(ctx context.Context, topic string) []resource {
	var resources []resource
	if l.searcher != nil {
		for _, tmpl := range queryTemplates[:queriesPerRound] {
			outcome := l.searcher.Search(ctx, fmt.Sprintf(tmpl, topic))
			if !outcome.OK() {
				if outcome.Err != nil {
					slog.Warn("psychology search failed", "topic", topic, "error", outcome.Err)
				}
				continue
			}
			for _, r := range outcome.Results {
				if !isRelevant(r.Snippet) {
					continue
				}
				resources = append(resources, resource{
					Title:      r.Title,
					Content:    r.Snippet,
					Techniques: extractTechniques(r.Snippet),
					Concepts:   extractConcepts(r.Snippet),
					Source:     r.URL,
				})
			}
		}
	}
	lower := strings.ToLower(topic)
	for _, b := range builtinResources {
		if utils.ContainsAny(lower, b.triggers) {
			resources = append(resources, b.res)
		}
	}
	if len(resources) > maxResources {
		resources = resources[:maxResources]
	}
	return resources
}

func (l *Learner) absorb(res resource, learned *Snapshot) {
	for _, name := range res.Techniques {
		if l.base.HasTechnique(name) {
			continue
		}
		t := Technique{
			Key:             name,
			Name:            name,
			Description:     fmt.Sprintf(random.Pick(l.rnd, techniqueDescriptions), name),
			Application:     inferApplication(name),
			NaturalLanguage: phrasingsFor(name),
		}
		if l.base.AddTechnique(t) {
			learned.Techniques = append(learned.Techniques, t)
		}
	}
	for _, name := range res.Concepts {
		c := Concept{Name: name, Description: name + " es un concepto importante que puede ayudar en el bienestar emocional"}
		if l.base.AddConcept(c) {
			learned.Concepts = append(learned.Concepts, c)
		}
	}
	learned.Empathy = append(learned.Empathy, l.base.AddEmpathy(extractEmpathic(res.Content)...)...)
}

// Restore loads persisted entries into the base without overwriting.
func (l *Learner) Restore(ctx context.Context) error {
	if l.repo == nil {
		return nil
	}
	snap, err := l.repo.LoadKnowledge(ctx)
	if err != nil {
		return fmt.Errorf("failed to load knowledge: %w", err)
	}
	if snap == nil {
		return nil
	}
	for _, t := range snap.Techniques {
		l.base.AddTechnique(t)
	}
	for _, c := range snap.Concepts {
		l.base.AddConcept(c)
	}
	l.base.AddEmpathy(snap.Empathy...)
	return nil
}

// Stats reports pool sizes and the last learning round.
func (l *Learner) Stats() Stats {
	tech, concepts, empathy, validation, natural := l.base.Counts()
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		Techniques:        tech,
		Concepts:          concepts,
		EmpathyPatterns:   empathy,
		ValidationPhrases: validation,
		NaturalPhrases:    natural,
		LastUpdate:        l.lastUpdate,
		Learning:          l.learning,
	}
}

func isRelevant(content string) bool {
	return utils.ContainsAny(strings.ToLower(content), relevanceKeywords)
}

func extractTechniques(content string) []string {
	var out []string
	for _, m := range techniquePattern.FindAllStringSubmatch(strings.ToLower(content), -1) {
		name := strings.TrimSpace(m[1])
		if name != "" && utils.RuneLen(m[1]) < maxTechniqueRunes {
			out = append(out, name)
		}
	}
	return out
}

func extractConcepts(content string) []string {
	lower := strings.ToLower(content)
	var out []string
	for _, c := range conceptKeywords {
		if strings.Contains(lower, c) {
			out = append(out, c)
		}
	}
	return out
}

func extractEmpathic(content string) []string {
	var out []string
	for _, sentence := range sentenceSplit.Split(content, -1) {
		s := strings.TrimSpace(sentence)
		n := utils.RuneLen(s)
		if n <= minEmpathicRunes || n >= maxEmpathicRunes {
			continue
		}
		if !utils.ContainsAny(strings.ToLower(s), empathicKeywords) {
			continue
		}
		out = append(out, s)
		if len(out) == maxEmpathicPerSource {
			break
		}
	}
	return out
}

func inferApplication(technique string) string {
	lower := strings.ToLower(technique)
	switch {
	case strings.Contains(lower, "respir"):
		return "Para momentos de ansiedad o estrés"
	case strings.Contains(lower, "grounding") || strings.Contains(lower, "presente"):
		return "Para conectar con el momento presente"
	case strings.Contains(lower, "compasión"):
		return "Para mejorar la relación contigo mismo/a"
	case strings.Contains(lower, "validación") || strings.Contains(lower, "validar"):
		return "Para reconocer y aceptar emociones"
	default:
		return "Para bienestar emocional general"
	}
}

func phrasingsFor(technique string) []string {
	out := make([]string, len(techniquePhrasings))
	for i, tmpl := range techniquePhrasings {
		out[i] = fmt.Sprintf(tmpl, technique)
	}
	return out
}
