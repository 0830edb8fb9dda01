package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

func seedProfile(repo *fakeProfileRepo, p *types.UserProfile) {
	repo.profiles[p.UserID] = p
}

func TestPersonalizeWithoutProfileReturnsInput(t *testing.T) {
	repo := newFakeProfileRepo()
	s := newTestService(repo, random.Fixed(0, 0.99))

	if got := s.Personalize(context.Background(), "ghost", "Hola."); got != "Hola." {
		t.Fatalf("expected unchanged input, got %q", got)
	}
	if len(repo.profiles) != 0 || repo.saves != 0 {
		t.Fatalf("expected no implicit profile creation")
	}
}

func TestPersonalizeFormalPrefixIsNotDuplicated(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{UserID: "u1", Style: types.StyleFormal})
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	once := s.Personalize(ctx, "u1", "hola, tú eres genial")
	want := "Permíteme ayudarle. Buenos días, usted eres excelente"
	if once != want {
		t.Fatalf("expected %q, got %q", want, once)
	}
	twice := s.Personalize(ctx, "u1", once)
	if twice != once {
		t.Fatalf("expected idempotent output, got %q", twice)
	}
}

func TestPersonalizeEnthusiastic(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{UserID: "u1", Style: types.StyleEnthusiastic})
	s := newTestService(repo, random.Fixed(0, 0))
	ctx := context.Background()

	got := s.Personalize(ctx, "u1", "Es bueno e interesante.")
	want := "Es ¡genial! e ¡súper interesante!! 😊"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if again := s.Personalize(ctx, "u1", got); again != got {
		t.Fatalf("expected idempotent output, got %q", again)
	}
}

func TestPersonalizeInformal(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{UserID: "u1", Style: types.StyleInformal})
	s := newTestService(repo, random.Fixed(0, 0))

	got := s.Personalize(context.Background(), "u1", "Buenos días, usted lo hizo muy bien, excelente")
	want := "¡Hola!, tú lo hizo súper bien, genial"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPersonalizeTechnicalRegister(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{
		UserID:            "u1",
		Style:             types.StyleNeutral,
		Vocabulary:        []types.VocabularyEntry{{Word: "ciencia"}, {Word: "teoría"}},
		PersonalityTraits: []string{TraitTechnical},
	})
	s := newTestService(repo, random.Fixed(0, 0))

	got := s.Personalize(context.Background(), "u1", "Abre la aplicación del programa y haz una prueba del estudio")
	want := "Abre la app del código y haz una experimento del investigación"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPersonalizeAdditionsAreNotRepeated(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{
		UserID:            "u1",
		Style:             types.StyleFormal,
		PersonalityTraits: []string{TraitCurious, TraitPersonal, TraitCreative},
		Interests:         []string{"música"},
		Memories:          []types.Memory{{Topic: "cultura", Summary: `"me gusta el jazz"`}},
	})
	s := newTestService(repo, random.Fixed(0, 0.99))
	ctx := context.Background()

	once := s.Personalize(ctx, "u1", "Claro.")
	for _, marker := range []string{
		"Permíteme ayudarle.",
		"¿se ha preguntado alguna vez",
		"Me alegra que me haga",
		"¡Imagine las posibilidades creativas!",
		`Recuerdo que antes mencionó "me gusta el jazz".`,
		"le interesa música",
	} {
		if !strings.Contains(once, marker) {
			t.Fatalf("expected %q in %q", marker, once)
		}
	}
	if twice := s.Personalize(ctx, "u1", once); twice != once {
		t.Fatalf("expected second pass to change nothing, got %q from %q", twice, once)
	}
}

func TestPersonalizeFormalAdditionsUseUsted(t *testing.T) {
	tests := []struct {
		name  string
		trait string
		rnd   *random.Sequence
		want  string
	}{
		{"curious", TraitCurious, random.Fixed(2, 0.99), "¿usted qué opina? 💭"},
		{"personal", TraitPersonal, random.Fixed(1, 0.99), "Es un placer conversar con usted sobre esto 💫"},
	}
	for _, tt := range tests {
		repo := newFakeProfileRepo()
		seedProfile(repo, &types.UserProfile{UserID: "u1", Style: types.StyleFormal, PersonalityTraits: []string{tt.trait}})
		s := newTestService(repo, tt.rnd)
		ctx := context.Background()

		once := s.Personalize(ctx, "u1", "Aquí tienes la respuesta.")
		if !strings.Contains(once, tt.want) {
			t.Fatalf("%s: expected %q in %q", tt.name, tt.want, once)
		}
		if utils.ContainsWord(once, "tú") || utils.ContainsWord(once, "genial") {
			t.Fatalf("%s: expected no informal wording in %q", tt.name, once)
		}
		if twice := s.Personalize(ctx, "u1", once); twice != once {
			t.Fatalf("%s: expected %q, got %q", tt.name, once, twice)
		}
	}
}

func TestPersonalizeTwiceChangesNothingInAnyStyle(t *testing.T) {
	styles := []types.Style{types.StyleNeutral, types.StyleEnthusiastic, types.StyleFormal, types.StyleInformal}
	for _, style := range styles {
		for i := 0; i < 4; i++ {
			repo := newFakeProfileRepo()
			seedProfile(repo, &types.UserProfile{
				UserID:            "u1",
				Style:             style,
				PersonalityTraits: []string{TraitCurious, TraitPersonal, TraitCreative, TraitTechnical},
				Interests:         []string{"tecnología"},
				Vocabulary:        []types.VocabularyEntry{{Word: "estudio"}, {Word: "ciencia"}},
				Memories:          []types.Memory{{Topic: "personal", Summary: `"hola, tú sabes que el programa es bueno"`}},
			})
			s := newTestService(repo, random.Fixed(i, 0.99))
			ctx := context.Background()

			once := s.Personalize(ctx, "u1", "Hola, eso es muy bien y excelente.")
			if twice := s.Personalize(ctx, "u1", once); twice != once {
				t.Fatalf("style %q seed %d: expected %q, got %q", style, i, once, twice)
			}
			if style == types.StyleFormal && utils.ContainsWord(once, "tú") {
				t.Fatalf("expected no tú in formal output %q", once)
			}
		}
	}
}

func TestPersonalizeDoesNotMutateProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{UserID: "u1", Style: types.StyleEnthusiastic, PersonalityTraits: []string{TraitCurious}})
	s := newTestService(repo, random.Fixed(0, 0.99))

	_ = s.Personalize(context.Background(), "u1", "Hola.")
	if repo.saves != 0 {
		t.Fatalf("expected personalization to be read-only, got %d saves", repo.saves)
	}
}

func TestPersonalizeReproducibleWithSeed(t *testing.T) {
	repo := newFakeProfileRepo()
	seedProfile(repo, &types.UserProfile{
		UserID:            "u1",
		Style:             types.StyleEnthusiastic,
		PersonalityTraits: []string{TraitCurious, TraitPersonal},
		Interests:         []string{"ciencia", "arte"},
	})
	a := newTestService(repo, random.New(7))
	b := newTestService(repo, random.New(7))
	for i := 0; i < 10; i++ {
		if x, y := a.Personalize(context.Background(), "u1", "Muy bueno."), b.Personalize(context.Background(), "u1", "Muy bueno."); x != y {
			t.Fatalf("expected reproducible output, got %q and %q", x, y)
		}
	}
}
