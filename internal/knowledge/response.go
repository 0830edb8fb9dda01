package knowledge

import (
	"context"
	"strings"

	"github.com/easeaico/oriona/internal/random"
)

// InformedResponse learns about prompt, then renders a support reply from
// the techniques and concepts relevant to prompt and state. It reports
// false when nothing in the base is relevant.
//
// state is one of the emotional states (anxious, sad, angry, confused, ...).
func (l *Learner) InformedResponse(ctx context.Context, prompt, state string) (string, bool) {
	l.Learn(ctx, prompt)

	lower := strings.ToLower(prompt)
	techniques := l.relevantTechniques(lower, state)
	concepts := l.relevantConcepts(lower)
	if len(techniques) == 0 && len(concepts) == 0 {
		return "", false
	}

	empathy, validation, natural := l.base.phrases()
	var sb strings.Builder
	sb.WriteString(random.Pick(l.rnd, empathy))
	sb.WriteString("\n\n")

	if len(techniques) > 0 {
		t := techniques[0]
		sb.WriteString(random.Pick(l.rnd, natural))
		sb.WriteString(" ")
		sb.WriteString(random.Pick(l.rnd, t.NaturalLanguage))
		sb.WriteString("\n\n")
		sb.WriteString(t.Description + ". " + t.Application + ".\n\n")
	}

	if len(concepts) > 0 {
		desc, _ := l.base.Concept(concepts[0])
		sb.WriteString("Algo importante sobre " + concepts[0] + ": " + desc + "\n\n")
	}

	sb.WriteString(random.Pick(l.rnd, validation))
	sb.WriteString("\n\n")
	sb.WriteString(random.Pick(l.rnd, followUpQuestions))
	return strings.TrimSpace(sb.String()), true
}

func (l *Learner) relevantTechniques(lowerPrompt, state string) []Technique {
	keywords := relevanceMap[state]
	var out []Technique
	for _, t := range l.base.Techniques() {
		if len(out) == maxRelevantTechniques {
			break
		}
		name := strings.ToLower(t.Name)
		relevant := strings.Contains(lowerPrompt, strings.ToLower(t.Key)) ||
			appliesTo(t, state)
		for _, kw := range keywords {
			if relevant {
				break
			}
			relevant = strings.Contains(name, kw) || strings.Contains(lowerPrompt, kw)
		}
		if relevant {
			out = append(out, t)
		}
	}
	return out
}

func appliesTo(t Technique, state string) bool {
	application := strings.ToLower(t.Application)
	for _, w := range stateApplicationWords[state] {
		if strings.Contains(application, w) {
			return true
		}
	}
	return false
}

func (l *Learner) relevantConcepts(lowerPrompt string) []string {
	var out []string
	for _, c := range l.base.Concepts() {
		if len(out) == maxRelevantConcepts {
			break
		}
		name := strings.ToLower(c.Name)
		relevant := strings.Contains(lowerPrompt, name)
		for _, word := range strings.Fields(name) {
			if relevant {
				break
			}
			relevant = strings.Contains(lowerPrompt, word)
		}
		if relevant {
			out = append(out, c.Name)
		}
	}
	return out
}
