package emotion

import (
	"context"
	"log/slog"
	"strings"

	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
)

// Informer renders a reply from learned psychology knowledge. It reports
// false when nothing it knows is relevant to prompt.
type Informer interface {
	InformedResponse(ctx context.Context, prompt, state string) (string, bool)
}

// Response is a support reply plus how it was produced.
type Response struct {
	Text     string  `json:"text"`
	Kind     Kind    `json:"kind"`
	Informed bool    `json:"informed"`
	Context  Context `json:"context"`
}

// Responder answers messages that no scripted pattern matched.
type Responder struct {
	informer Informer
	rnd      random.Source
}

// NewResponder returns a responder. informer may be nil, in which case only
// the static templates are used.
func NewResponder(informer Informer, rnd random.Source) *Responder {
	return &Responder{informer: informer, rnd: rnd}
}

// CrisisResponse returns the static crisis reply with emergency contacts.
func CrisisResponse() string {
	return crisisReply
}

// Respond picks the first rule that applies to prompt: crisis, support,
// personal question, emotional expression, philosophical, casual, general.
func (r *Responder) Respond(ctx context.Context, prompt string, history []types.Turn) Response {
	c := Analyze(prompt, history)
	resp := Response{Context: c}

	switch {
	case c.Support == SupportCrisis:
		resp.Kind = KindCrisis
		resp.Text = crisisReply
	case NeedsSupport(prompt):
		resp.Kind = KindSupport
		resp.Text, resp.Informed = r.informed(ctx, prompt, c.State)
		if !resp.Informed {
			resp.Text = r.supportReply(prompt)
		}
	case IsPersonalQuestion(prompt):
		resp.Kind = KindPersonal
		resp.Text = r.personalReply(prompt)
	case IsEmotionalExpression(prompt):
		resp.Kind = KindEmotional
		resp.Text, resp.Informed = r.informed(ctx, prompt, c.State)
		if !resp.Informed {
			resp.Text = emotionalReply(c.State)
		}
	case IsPhilosophical(prompt):
		resp.Kind = KindPhilosophical
		resp.Text = random.Pick(r.rnd, philosophicalReplies)
	case IsCasual(prompt):
		resp.Kind = KindCasual
		resp.Text = random.Pick(r.rnd, casualReplies)
	default:
		resp.Kind = KindGeneral
		resp.Text = random.Pick(r.rnd, generalReplies)
	}
	return resp
}

func (r *Responder) informed(ctx context.Context, prompt string, state State) (string, bool) {
	if r.informer == nil {
		return "", false
	}
	text, ok := r.informer.InformedResponse(ctx, prompt, string(state))
	if !ok || strings.TrimSpace(text) == "" {
		slog.Debug("no learned knowledge for message, using base reply", "state", state)
		return "", false
	}
	slog.Debug("using learned psychology knowledge", "state", state)
	return text, true
}

func (r *Responder) supportReply(prompt string) string {
	bucket := SupportBucket(prompt)
	if bucket == BucketCrisis {
		return crisisReply
	}
	return random.Pick(r.rnd, supportReplies[bucket])
}

func (r *Responder) personalReply(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "sientes") || strings.Contains(lower, "sentimientos"):
		return feelingsReply
	case strings.Contains(lower, "feliz") || strings.Contains(lower, "alegría"):
		return happinessReply
	case strings.Contains(lower, "miedo") || strings.Contains(lower, "asusta"):
		return fearReply
	default:
		return random.Pick(r.rnd, personalReplies)
	}
}

func emotionalReply(state State) string {
	if text, ok := emotionalReplies[state]; ok {
		return text
	}
	return defaultEmotionalReply
}
