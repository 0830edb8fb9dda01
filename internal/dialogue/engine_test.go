package dialogue

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
)

type fakeEngagementRepo struct {
	data  map[string]*types.Engagement
	saves int
	err   error
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{data: map[string]*types.Engagement{}}
}

func (r *fakeEngagementRepo) GetEngagement(ctx context.Context, userID string) (*types.Engagement, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.data[userID].Clone(), nil
}

func (r *fakeEngagementRepo) SaveEngagement(ctx context.Context, e *types.Engagement) error {
	r.saves++
	r.data[e.UserID] = e.Clone()
	return nil
}

func (r *fakeEngagementRepo) DeleteEngagement(ctx context.Context, userID string) error {
	delete(r.data, userID)
	return nil
}

func newTestEngine(repo EngagementRepo, rnd random.Source) *Engine {
	e := NewEngine(repo, rnd)
	e.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestMatchFirstPatternWins(t *testing.T) {
	e := newTestEngine(newFakeEngagementRepo(), random.Fixed(0, 0))
	tests := []struct {
		text string
		want string
	}{
		{"hola", ContextGreeting},
		{"  HEY!!  ", ContextGreeting},
		{"Cómo estás?", ContextWellbeing},
		{"qué haces ahora", ContextActivity},
		{"eres real?", ContextIdentity},
		{"qué puedes hacer", ContextCapabilities},
		{"necesito hablar contigo", ContextPersonalSharing},
		{"me siento solo hoy", ContextEmotionalState},
		{"¿cuál es tu color favorito?", ContextPreferences},
		{"muchas gracias", ContextGratitude},
		{"estoy bien, gracias por todo", ContextEmotionalState},
	}
	for _, tt := range tests {
		p, ok := e.Match(tt.text)
		if !ok {
			t.Fatalf("%q: expected a match", tt.text)
		}
		if p.Context != tt.want {
			t.Fatalf("%q: expected %s, got %s", tt.text, tt.want, p.Context)
		}
	}
}

func TestPatternTableOrder(t *testing.T) {
	want := []string{
		ContextGreeting, ContextWellbeing, ContextActivity, ContextIdentity, ContextCapabilities,
		ContextPersonalSharing, ContextEmotionalState, ContextPreferences, ContextGratitude,
	}
	if len(patterns) != len(want) {
		t.Fatalf("expected %d patterns, got %d", len(want), len(patterns))
	}
	for i, p := range patterns {
		if p.Context != want[i] {
			t.Fatalf("expected pattern %d to be %s, got %s", i, want[i], p.Context)
		}
		if len(p.Responses) != 8 || len(p.FollowUps) != 5 {
			t.Fatalf("%s: expected 8 responses and 5 follow-ups", p.Context)
		}
	}
}

func TestGenerateNoMatchLeavesStateAlone(t *testing.T) {
	repo := newFakeEngagementRepo()
	e := newTestEngine(repo, random.Fixed(0, 0))

	text, ok, err := e.Generate(context.Background(), "u1", "explícame la fotosíntesis")
	if err != nil || ok || text != "" {
		t.Fatalf("expected no-match, got %q %v %v", text, ok, err)
	}
	if repo.saves != 0 {
		t.Fatalf("expected no engagement write on no-match")
	}
}

func TestGenerateAppendsFollowUp(t *testing.T) {
	repo := newFakeEngagementRepo()
	e := newTestEngine(repo, &random.Sequence{Ints: []int{2, 1}, Floats: []float64{0.8}})

	text, ok, err := e.Generate(context.Background(), "u1", "hola")
	if err != nil || !ok {
		t.Fatalf("expected match, got %v %v", ok, err)
	}
	want := patterns[0].Responses[2] + "\n\n" + patterns[0].FollowUps[1]
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}

	eng := repo.data["u1"]
	if eng.ConversationCount != 1 || eng.InterestLevel != 1 || !slices.Equal(eng.Topics, []string{ContextGreeting}) {
		t.Fatalf("unexpected engagement: %#v", eng)
	}
}

func TestGenerateWithoutFollowUp(t *testing.T) {
	e := newTestEngine(newFakeEngagementRepo(), random.Fixed(0, 0.7))
	text, _, _ := e.Generate(context.Background(), "u1", "gracias")
	if text != patterns[8].Responses[0] {
		t.Fatalf("expected bare response, got %q", text)
	}
}

func TestGenerateEscalationTiers(t *testing.T) {
	tests := []struct {
		name   string
		eng    types.Engagement
		floats []float64
		pool   []string
	}{
		{"getting to know", types.Engagement{ConversationCount: 4, Topics: []string{ContextGreeting}, InterestLevel: 1}, []float64{0.1, 0.9}, gettingToKnow},
		{"deep", types.Engagement{ConversationCount: 6, Topics: []string{"a", "b", "c", "d"}, InterestLevel: 4}, []float64{0.1, 0.9}, deepConversation},
		{"light", types.Engagement{ConversationCount: 6, Topics: []string{"a", "b"}, InterestLevel: 2}, []float64{0.1, 0.9, 0.9}, funAndLight},
		{"creative", types.Engagement{ConversationCount: 6, Topics: []string{"a", "b"}, InterestLevel: 2}, []float64{0.1, 0.9, 0.2}, creativeThinking},
	}
	for _, tt := range tests {
		repo := newFakeEngagementRepo()
		eng := tt.eng
		eng.UserID = "u1"
		repo.data["u1"] = &eng
		e := newTestEngine(repo, &random.Sequence{Ints: []int{0}, Floats: tt.floats})

		text, _, err := e.Generate(context.Background(), "u1", "hola")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		want := patterns[0].Responses[0] + "\n\n" + tt.pool[0]
		if text != want {
			t.Fatalf("%s: expected %q, got %q", tt.name, want, text)
		}
	}
}

func TestGenerateNoEscalationEarly(t *testing.T) {
	repo := newFakeEngagementRepo()
	repo.data["u1"] = &types.Engagement{UserID: "u1", ConversationCount: 3, InterestLevel: 1}
	e := newTestEngine(repo, random.Fixed(0, 0.9))

	text, _, _ := e.Generate(context.Background(), "u1", "hola")
	if strings.Count(text, "\n\n") != 1 {
		t.Fatalf("expected only the pattern follow-up, got %q", text)
	}
}

func TestInterestLevelFollowsDistinctTopics(t *testing.T) {
	repo := newFakeEngagementRepo()
	e := newTestEngine(repo, random.Fixed(0, 0))
	ctx := context.Background()

	for _, msg := range []string{"hola", "hola", "qué puedes hacer", "eres real?", "muchas gracias", "qué haces ahora", "Cómo estás?", "prefieres el mar"} {
		if _, ok, err := e.Generate(ctx, "u1", msg); !ok || err != nil {
			t.Fatalf("%q: expected match, got %v %v", msg, ok, err)
		}
	}
	stats, err := e.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ConversationCount != 8 || stats.TopicsExplored != 7 || stats.InterestLevel != 5 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
}

func TestStatsForUnknownUser(t *testing.T) {
	e := newTestEngine(newFakeEngagementRepo(), random.Fixed(0, 0))
	stats, err := e.Stats(context.Background(), "nadie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ConversationCount != 0 || stats.InterestLevel != 1 || len(stats.Topics) != 0 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
}

func TestGenerateRepoFailure(t *testing.T) {
	repo := newFakeEngagementRepo()
	repo.err = fmt.Errorf("db down")
	e := newTestEngine(repo, random.Fixed(0, 0))

	if _, _, err := e.Generate(context.Background(), "u1", "hola"); err == nil {
		t.Fatalf("expected error from failing repo")
	}
}

func TestFollowUpAndIceBreaker(t *testing.T) {
	e := newTestEngine(newFakeEngagementRepo(), &random.Sequence{Ints: []int{3, 7}})
	if got := e.FollowUpResponse(); got != followUpOpeners[3]+"\n\n"+relatedQuestions[7] {
		t.Fatalf("unexpected follow-up: %q", got)
	}
	if got := e.IceBreaker(); got != iceBreakers[7] {
		t.Fatalf("unexpected ice breaker: %q", got)
	}
}

func TestResetForgetsEngagement(t *testing.T) {
	repo := newFakeEngagementRepo()
	e := newTestEngine(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, _, err := e.Generate(ctx, "u1", "hola"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Reset(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := e.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ConversationCount != 0 {
		t.Fatalf("expected reset engagement, got %#v", stats)
	}
}
