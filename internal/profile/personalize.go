package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/easeaico/oriona/internal/lexical"
	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

const (
	formalPrefix     = "Permíteme ayudarle. "
	formalMarker     = "Permíteme"
	superInteresting = "¡súper interesante!"
	creativeMarker   = "las posibilidades creativas"
	interestMarker   = "Por cierto, veo que"
	placeholder      = "\x00"
)

// wording holds the tú and usted versions of an addition. Formal users get
// the usted version so the style stage has nothing left to rewrite.
type wording struct {
	casual []string
	formal []string
}

func (w wording) forStyle(style types.Style) []string {
	if style == types.StyleFormal {
		return w.formal
	}
	return w.casual
}

func (w wording) all() []string {
	return append(append([]string(nil), w.casual...), w.formal...)
}

var (
	enthusiasticEmojis = []string{"✨", "🌟", "💫", "🎯", "🚀", "💖", "🎉"}

	curiousQuestions = wording{
		casual: []string{
			" Por cierto, ¿te has preguntado alguna vez sobre...? 🤔",
			" ¿Sabías que...? Me parece fascinante 🧐",
			" Esto me hace pensar... ¿tú qué opinas? 💭",
		},
		formal: []string{
			" Por cierto, ¿se ha preguntado alguna vez sobre...? 🤔",
			" ¿Sabía que...? Me parece fascinante 🧐",
			" Esto me hace pensar... ¿usted qué opina? 💭",
		},
	}

	personalTouches = wording{
		casual: []string{
			" Me encanta que me hagas este tipo de preguntas 😊",
			" Es genial poder charlar contigo sobre esto 💫",
			" Me fascina conocerte mejor a través de nuestras conversaciones ✨",
		},
		formal: []string{
			" Me alegra que me haga este tipo de preguntas 😊",
			" Es un placer conversar con usted sobre esto 💫",
			" Me interesa conocerle mejor a través de nuestras conversaciones ✨",
		},
	}

	creativeNotes = wording{
		casual: []string{" ¡Imagínate las posibilidades creativas! 🎨"},
		formal: []string{" ¡Imagine las posibilidades creativas! 🎨"},
	}

	interestRemarks = wording{
		casual: []string{" Por cierto, veo que te interesa %s, ¡me parece fascinante! 😊"},
		formal: []string{" Por cierto, veo que le interesa %s, ¡me parece fascinante! 😊"},
	}

	memoryIntros = wording{
		casual: []string{
			"Oye, recordé que antes mencionaste",
			"Esto me recuerda a cuando dijiste",
			"Como comentaste anteriormente sobre",
			"Relacionado con lo que me contaste de",
		},
		formal: []string{
			"Recuerdo que antes mencionó",
			"Esto me recuerda a cuando dijo",
			"Como comentó anteriormente sobre",
			"Relacionado con lo que me contó de",
		},
	}

	// Markers are shared by both wordings, so a second pass detects an
	// addition made by the first one.
	curiousMarkers  = []string{"alguna vez sobre...?", "Me parece fascinante 🧐", "Esto me hace pensar..."}
	personalMarkers = []string{"este tipo de preguntas", "sobre esto 💫", "a través de nuestras conversaciones"}
)

type replacement struct{ from, to string }

var (
	formalReplacements = []replacement{
		{"hola", "Buenos días"},
		{"tú", "usted"},
		{"genial", "excelente"},
	}
	informalReplacements = []replacement{
		{"usted", "tú"},
		{"excelente", "genial"},
		{"muy bien", "súper bien"},
		{"Buenos días", "¡Hola!"},
	}
	technicalReplacements = []replacement{
		{"programa", "código"},
		{"computadora", "sistema"},
		{"aplicación", "app"},
	}
	scientificReplacements = []replacement{
		{"estudio", "investigación"},
		{"prueba", "experimento"},
	}
)

// Personalize rewrites base for the user's learned style. It never mutates
// the profile and returns base unchanged when the user has no profile.
//
// Stages run in a fixed order: style substitutions, vocabulary register,
// then random additions drawn in this order: emoji, curious prompt,
// personal touch, creative note, memory callback, interest remark.
// Each stage is idempotent, so personalizing twice adds nothing new.
func (s *Service) Personalize(ctx context.Context, userID, base string) string {
	if s == nil || s.repo == nil {
		return base
	}
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		slog.Warn("failed to load profile for personalization", "user_id", userID, "error", err)
		return base
	}
	if p == nil {
		return base
	}
	return personalize(p, base, s.rnd)
}

func personalize(p *types.UserProfile, text string, rnd random.Source) string {
	text = applyStyle(p.Style, text)
	text = applyRegister(p, text)
	return applyAdditions(p, text, rnd)
}

func applyStyle(style types.Style, text string) string {
	switch style {
	case types.StyleEnthusiastic:
		if strings.HasSuffix(text, ".") {
			text = strings.TrimSuffix(text, ".") + "! 😊"
		}
	case types.StyleFormal:
		if !strings.Contains(text, formalMarker) {
			text = formalPrefix + text
		}
	}
	return applyWords(style, text)
}

// applyWords runs the word substitutions of style. Running it on its own
// output changes nothing.
func applyWords(style types.Style, text string) string {
	switch style {
	case types.StyleEnthusiastic:
		text = utils.ReplaceWord(text, "bueno", "¡genial!")
		text = strings.ReplaceAll(text, superInteresting, placeholder)
		text = utils.ReplaceWord(text, "interesante", superInteresting)
		text = strings.ReplaceAll(text, placeholder, superInteresting)
	case types.StyleFormal:
		text = replaceAll(text, formalReplacements)
	case types.StyleInformal:
		text = replaceAll(text, informalReplacements)
	}
	return text
}

// adapt renders an addition the way the style and register stages would,
// so a later pass leaves it untouched.
func adapt(p *types.UserProfile, text string) string {
	return applyRegister(p, applyWords(p.Style, text))
}

func applyRegister(p *types.UserProfile, text string) string {
	technical, scientific := 0, 0
	for _, e := range p.Vocabulary {
		if containsExact(lexical.TechnicalWords, e.Word) {
			technical++
		}
		if containsExact(lexical.ScientificWords, e.Word) {
			scientific++
		}
	}
	if technical > 2 || p.HasTrait(TraitTechnical) {
		text = replaceAll(text, technicalReplacements)
	}
	if scientific > 1 {
		text = replaceAll(text, scientificReplacements)
	}
	return text
}

func applyAdditions(p *types.UserProfile, text string, rnd random.Source) string {
	if p.Style == types.StyleEnthusiastic && rnd.Float64() > 0.7 && !utils.ContainsAny(text, enthusiasticEmojis) {
		text += " " + random.Pick(rnd, enthusiasticEmojis)
	}
	if p.HasTrait(TraitCurious) && rnd.Float64() > 0.6 && !utils.ContainsAny(text, curiousMarkers) {
		text += adapt(p, random.Pick(rnd, curiousQuestions.forStyle(p.Style)))
	}
	if p.HasTrait(TraitPersonal) && rnd.Float64() > 0.7 && !utils.ContainsAny(text, personalMarkers) {
		text += adapt(p, random.Pick(rnd, personalTouches.forStyle(p.Style)))
	}
	if p.HasTrait(TraitCreative) && rnd.Float64() > 0.7 && !strings.Contains(text, creativeMarker) {
		text += adapt(p, creativeNotes.forStyle(p.Style)[0])
	}
	if len(p.Memories) > 0 && rnd.Float64() > 0.6 && !utils.ContainsAny(text, memoryIntros.all()) {
		mem := random.Pick(rnd, p.Memories)
		intro := random.Pick(rnd, memoryIntros.forStyle(p.Style))
		text = adapt(p, intro+" "+mem.Summary+". ") + text
	}
	if len(p.Interests) > 0 && rnd.Float64() > 0.8 && !strings.Contains(text, interestMarker) {
		interest := random.Pick(rnd, p.Interests)
		text += adapt(p, fmt.Sprintf(interestRemarks.forStyle(p.Style)[0], interest))
	}
	return text
}

func replaceAll(text string, table []replacement) string {
	for _, r := range table {
		text = utils.ReplaceWord(text, r.from, r.to)
	}
	return text
}

func containsExact(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
