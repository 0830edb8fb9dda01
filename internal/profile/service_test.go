package profile

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
)

type fakeProfileRepo struct {
	profiles map[string]*types.UserProfile
	saves    int
	similar  []types.Memory
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*types.UserProfile{}}
}

func (r *fakeProfileRepo) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	return r.profiles[userID].Clone(), nil
}

func (r *fakeProfileRepo) SaveProfile(ctx context.Context, p *types.UserProfile) error {
	r.saves++
	r.profiles[p.UserID] = p.Clone()
	return nil
}

func (r *fakeProfileRepo) DeleteProfile(ctx context.Context, userID string) error {
	delete(r.profiles, userID)
	return nil
}

type fakeIndexedRepo struct {
	*fakeProfileRepo
}

func (r fakeIndexedRepo) SimilarMemories(ctx context.Context, userID string, vector []float32, limit int, threshold float64) ([]types.Memory, error) {
	return r.similar, nil
}

func newTestService(repo Repo, rnd random.Source) *Service {
	s := NewService(repo, rnd)
	s.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestInitProfileIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))

	first, err := s.InitProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.Style != types.StyleNeutral || first.Formality != types.FormalityMedium {
		t.Fatalf("unexpected defaults: %s/%s", first.Style, first.Formality)
	}
	if _, err := s.InitProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one save, got %d", repo.saves)
	}
}

func TestForgetDropsProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, err := s.LearnFromMessage(ctx, "u1", "me encanta la programación"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := s.Forget(ctx, "u1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats, _ := s.Stats(ctx, "u1"); stats != nil {
		t.Fatalf("expected no profile after forget, got %#v", stats)
	}
}

func TestLearnFromMessageDetectsStyleAndInterests(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))

	p, err := s.LearnFromMessage(context.Background(), "u1", "¡Me encanta la programación en Python! ¿Tú también?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Style != types.StyleEnthusiastic {
		t.Fatalf("expected enthusiastic, got %s", p.Style)
	}
	for _, trait := range []string{TraitEnergetic, TraitTechnical, TraitCurious} {
		if !p.HasTrait(trait) {
			t.Fatalf("expected trait %s in %v", trait, p.PersonalityTraits)
		}
	}
	if len(p.Interests) != 1 || p.Interests[0] != "tecnología" {
		t.Fatalf("expected tecnología interest once, got %v", p.Interests)
	}
	if len(p.Memories) != 1 || p.Memories[0].Topic != "tecnología" {
		t.Fatalf("expected one tecnología memory, got %#v", p.Memories)
	}
	if p.MessageCount != 1 {
		t.Fatalf("expected message count 1, got %d", p.MessageCount)
	}
}

func TestLearnKeepsStyleWithoutNewEvidence(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, err := s.LearnFromMessage(ctx, "u1", "Estimado señor, le escribo cordialmente"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p, err := s.LearnFromMessage(ctx, "u1", "mañana llueve")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Style != types.StyleFormal || p.Formality != types.FormalityHigh {
		t.Fatalf("expected formal/high to persist, got %s/%s", p.Style, p.Formality)
	}
}

func TestVocabularyIsCappedAndEvictsOldest(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		words := make([]string, 5)
		for j := range words {
			words[j] = fmt.Sprintf("zeta%dq%d", i, j)
		}
		if _, err := s.LearnFromMessage(ctx, "u1", strings.Join(words, " ")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	p := repo.profiles["u1"]
	if len(p.Vocabulary) != types.MaxVocabulary {
		t.Fatalf("expected %d entries, got %d", types.MaxVocabulary, len(p.Vocabulary))
	}
	if p.Vocabulary[0].Word != "zeta4q0" {
		t.Fatalf("expected oldest surviving word zeta4q0, got %s", p.Vocabulary[0].Word)
	}
	for _, e := range p.Vocabulary {
		if strings.HasPrefix(e.Word, "zeta0") {
			t.Fatalf("expected first message words evicted, found %s", e.Word)
		}
	}
}

func TestVocabularyTouchMovesEntryToEnd(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, err := s.LearnFromMessage(ctx, "u1", "gatos perros"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p, err := s.LearnFromMessage(ctx, "u1", "gatos")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	last := p.Vocabulary[len(p.Vocabulary)-1]
	if last.Word != "gatos" || last.Frequency != 2 {
		t.Fatalf("expected gatos touched twice at the end, got %#v", last)
	}
}

func TestMemoriesMergeByTopic(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, err := s.LearnFromMessage(ctx, "u1", "Mi familia y mis amigos son muy importantes"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p, err := s.LearnFromMessage(ctx, "u1", "Hoy hablé con mi familia sobre el trabajo nuevo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(p.Memories) != 1 {
		t.Fatalf("expected a single merged memory, got %d", len(p.Memories))
	}
	m := p.Memories[0]
	if m.Topic != "personal" || m.MentionCount != 2 {
		t.Fatalf("unexpected merged memory: %#v", m)
	}
	if !strings.Contains(m.Summary, "trabajo nuevo") {
		t.Fatalf("expected latest summary, got %q", m.Summary)
	}
	if len(m.Vector) == 0 {
		t.Fatalf("expected memory vector to be computed")
	}
}

func TestShortMessagesDoNotCreateMemories(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))

	p, err := s.LearnFromMessage(context.Background(), "u1", "hola amigo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(p.Memories) != 0 {
		t.Fatalf("expected no memories, got %d", len(p.Memories))
	}
}

func TestRelevantMemories(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, err := s.LearnFromMessage(ctx, "u1", "Estoy aprendiendo programación con python"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, err := s.RelevantMemories(ctx, "u1", "¿qué opinas de python?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].Topic != "tecnología" {
		t.Fatalf("expected the tecnología memory, got %#v", got)
	}
	none, err := s.RelevantMemories(ctx, "u1", "recetas de cocina")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no memories, got %#v (%v)", none, err)
	}
}

func TestRelevantMemoriesFallsBackToIndex(t *testing.T) {
	base := newFakeProfileRepo()
	base.similar = []types.Memory{{Topic: "salud"}}
	repo := fakeIndexedRepo{base}
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	if _, err := s.InitProfile(ctx, "u1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, err := s.RelevantMemories(ctx, "u1", "ejercicio diario")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].Topic != "salud" {
		t.Fatalf("expected indexed memory, got %#v", got)
	}
}

func TestVocabularySortedByFrequency(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	for _, msg := range []string{"gatos perros", "gatos loros", "gatos perros"} {
		if _, err := s.LearnFromMessage(ctx, "u1", msg); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	vocab, err := s.Vocabulary(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(vocab) != 2 || vocab[0].Word != "gatos" || vocab[1].Word != "perros" {
		t.Fatalf("unexpected vocabulary order: %#v", vocab)
	}
}

func TestDescribeAndStats(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	desc, err := s.Describe(ctx, "nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "Basándome en nuestras conversaciones, veo que eres una persona interesante. Tu estilo de comunicación es equilibrado."
	if desc != want {
		t.Fatalf("expected %q, got %q", want, desc)
	}
	if stats, err := s.Stats(ctx, "nobody"); err != nil || stats != nil {
		t.Fatalf("expected nil stats for unknown user, got %#v (%v)", stats, err)
	}

	if _, err := s.LearnFromMessage(ctx, "u1", "Estimado señor, me interesa la música"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	desc, _ = s.Describe(ctx, "u1")
	if !strings.Contains(desc, "formal y cortés") || !strings.Contains(desc, "creatividad") {
		t.Fatalf("unexpected description: %q", desc)
	}
	stats, err := s.Stats(ctx, "u1")
	if err != nil || stats == nil || stats.MessageCount != 1 || stats.Style != types.StyleFormal {
		t.Fatalf("unexpected stats: %#v (%v)", stats, err)
	}
}

func TestRecallPhrases(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	once := types.Memory{Topic: "salud", MentionCount: 1, LastMentioned: now.Add(-2 * time.Hour)}
	if got := Recall(once, now); got != "💭 Veo que te interesa el tema de salud, como mencionaste hace 2 horas." {
		t.Fatalf("unexpected recall: %q", got)
	}
	twice := types.Memory{Topic: "salud", Summary: `"corro cada día"`, MentionCount: 2, LastMentioned: now.Add(-time.Minute)}
	if got := Recall(twice, now); got != `🧠 Recuerdo que hace un momento hablamos sobre salud. "corro cada día"...` {
		t.Fatalf("unexpected recall: %q", got)
	}
}

func TestTouchInterestCapsAndEvictsOldest(t *testing.T) {
	tests := []struct {
		name      string
		touches   int
		wantFirst string
		wantLast  string
	}{
		{"under cap", types.MaxInterests - 1, "tag0", fmt.Sprintf("tag%d", types.MaxInterests-2)},
		{"at cap", types.MaxInterests, "tag0", fmt.Sprintf("tag%d", types.MaxInterests-1)},
		{"past cap", types.MaxInterests + 2, "tag2", fmt.Sprintf("tag%d", types.MaxInterests+1)},
	}
	for _, tt := range tests {
		p := &types.UserProfile{UserID: "u1"}
		for i := 0; i < tt.touches; i++ {
			touchInterest(p, fmt.Sprintf("tag%d", i))
		}
		want := tt.touches
		if want > types.MaxInterests {
			want = types.MaxInterests
		}
		if len(p.Interests) != want {
			t.Fatalf("%s: expected %d interests, got %d", tt.name, want, len(p.Interests))
		}
		if p.Interests[0] != tt.wantFirst || p.Interests[len(p.Interests)-1] != tt.wantLast {
			t.Fatalf("%s: expected %s..%s, got %v", tt.name, tt.wantFirst, tt.wantLast, p.Interests)
		}
	}

	p := &types.UserProfile{UserID: "u1"}
	for i := 0; i < types.MaxInterests; i++ {
		touchInterest(p, fmt.Sprintf("tag%d", i))
	}
	touchInterest(p, "tag0")
	touchInterest(p, "nuevo")
	if len(p.Interests) != types.MaxInterests {
		t.Fatalf("expected %d interests, got %d", types.MaxInterests, len(p.Interests))
	}
	if p.Interests[0] != "tag2" {
		t.Fatalf("expected tag1 evicted after tag0 was touched again, got %v", p.Interests)
	}
	if p.Interests[len(p.Interests)-2] != "tag0" || p.Interests[len(p.Interests)-1] != "nuevo" {
		t.Fatalf("expected tag0 then nuevo at the end, got %v", p.Interests)
	}
}

func TestRememberTopicCapsMostRecentFirst(t *testing.T) {
	tests := []struct {
		name   string
		topics int
	}{
		{"under cap", types.MaxMemories - 1},
		{"at cap", types.MaxMemories},
		{"past cap", types.MaxMemories + 5},
	}
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		p := &types.UserProfile{UserID: "u1"}
		for i := 0; i < tt.topics; i++ {
			topic := fmt.Sprintf("tema%d", i)
			rememberTopic(p, topic, "hablemos del "+topic+" con calma", []string{topic}, base.Add(time.Duration(i)*time.Minute))
		}
		want := tt.topics
		if want > types.MaxMemories {
			want = types.MaxMemories
		}
		if len(p.Memories) != want {
			t.Fatalf("%s: expected %d memories, got %d", tt.name, want, len(p.Memories))
		}
		if newest := fmt.Sprintf("tema%d", tt.topics-1); p.Memories[0].Topic != newest {
			t.Fatalf("%s: expected newest %s first, got %s", tt.name, newest, p.Memories[0].Topic)
		}
		if oldest := fmt.Sprintf("tema%d", tt.topics-want); p.Memories[want-1].Topic != oldest {
			t.Fatalf("%s: expected oldest kept %s last, got %s", tt.name, oldest, p.Memories[want-1].Topic)
		}
		for i := 1; i < len(p.Memories); i++ {
			if p.Memories[i].LastMentioned.After(p.Memories[i-1].LastMentioned) {
				t.Fatalf("%s: expected most-recent-first order at %d", tt.name, i)
			}
		}
	}
}
