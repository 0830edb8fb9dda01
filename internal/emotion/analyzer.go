package emotion

import (
	"math"
	"strings"

	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

type stateWords struct {
	state State
	words []string
}

// Negative states are checked before positive ones.
var stateTable = []stateWords{
	{StateSad, []string{"triste", "deprimido", "solo", "vacío", "desesperado", "sin esperanza"}},
	{StateAnxious, []string{"ansioso", "nervioso", "preocupado", "estresado", "agobiado", "pánico"}},
	{StateAngry, []string{"enojado", "furioso", "molesto", "irritado", "frustrado", "rabioso"}},
	{StateConfused, []string{"confundido", "perdido", "no sé", "no entiendo", "desorientado"}},
	{StateHappy, []string{"feliz", "alegre", "contento", "emocionado", "genial", "fantástico"}},
	{StateCalm, []string{"tranquilo", "relajado", "en paz", "sereno", "calmado"}},
	{StateMotivated, []string{"motivado", "inspirado", "energético", "entusiasta", "optimista"}},
}

var crisisWords = []string{
	"quiero morir", "no quiero vivir", "me quiero lastimar", "quiero desaparecer",
	"quitarme la vida", "suicidarme", "suicidio", "hacerme daño",
}

var supportWords = []string{
	// tristeza
	"me siento deprimido", "estoy deprimido", "no tengo ganas", "todo me da igual",
	"no veo sentido", "quiero desaparecer", "me siento vacío", "no sirvo para nada",
	// ansiedad
	"tengo ansiedad", "me da pánico", "no puedo respirar", "me siento agobiado",
	"no puedo parar de pensar", "me preocupo mucho", "tengo miedo constante",
	// autoestima
	"no valgo nada", "soy un fracaso", "nadie me quiere", "no soy suficiente",
	"me odio", "no me gusta como soy", "soy feo", "soy tonto",
	// soledad
	"me siento solo", "nadie me entiende", "no tengo amigos", "mi pareja me dejó",
	"problemas familiares", "me siento rechazado", "no encajo",
	// crisis
	"no quiero vivir", "quiero morir", "todo está mal", "no hay salida",
	"estoy en crisis", "no puedo más", "me quiero lastimar",
	// ayuda
	"necesito ayuda", "no sé qué hacer", "estoy perdido", "necesito hablar",
	"me siento mal", "algo está mal conmigo", "necesito consejo",
}

var personalWords = []string{
	"qué piensas sobre", "cuál es tu opinión", "cómo te sientes", "qué sientes",
	"tienes sentimientos", "eres feliz", "te gusta", "prefieres", "tu color favorito",
	"tu comida favorita", "tienes miedo", "qué te hace feliz", "te enamoras",
	"tienes sueños", "qué quieres ser", "te aburres", "te sientes solo",
}

var emotionalWords = []string{
	"me siento", "estoy", "me da", "tengo ganas", "me emociona", "me frustra",
	"me alegra", "me entristece", "me preocupa", "estoy feliz", "estoy triste",
	"estoy nervioso", "estoy emocionado",
}

var philosophicalWords = []string{
	"sentido de la vida", "por qué existimos", "qué es la felicidad", "qué es el amor",
	"hay vida después", "qué es la conciencia", "libre albedrío", "destino",
	"qué es real", "matriz", "simulación", "universo", "dios", "alma", "propósito",
	"significado", "muerte", "tiempo", "infinito",
}

var casualWords = []string{
	"qué tal", "cómo estás", "qué haces", "aburrido", "charlemos", "cuéntame algo",
	"qué hay de nuevo", "hola", "hey", "buenas",
}

// DetectEmotionalState returns the first state whose keywords occur in text.
func DetectEmotionalState(text string) State {
	lower := strings.ToLower(text)
	for _, s := range stateTable {
		if utils.ContainsAny(lower, s.words) {
			return s.state
		}
	}
	return StateNeutral
}

// IsCrisis reports whether text expresses self-harm or suicidal intent.
func IsCrisis(text string) bool {
	return utils.ContainsAny(strings.ToLower(text), crisisWords)
}

// NeedsSupport reports whether text asks for psychological support.
func NeedsSupport(text string) bool {
	return utils.ContainsAny(strings.ToLower(text), supportWords)
}

// IsPersonalQuestion reports whether text asks about the assistant itself.
func IsPersonalQuestion(text string) bool {
	return utils.ContainsAny(strings.ToLower(text), personalWords)
}

// IsEmotionalExpression reports whether text describes how the user feels.
func IsEmotionalExpression(text string) bool {
	return utils.ContainsAny(strings.ToLower(text), emotionalWords)
}

// IsPhilosophical reports whether text raises an existential question.
func IsPhilosophical(text string) bool {
	return utils.ContainsAny(strings.ToLower(text), philosophicalWords)
}

// IsCasual reports whether text is small talk.
func IsCasual(text string) bool {
	return utils.ContainsAny(strings.ToLower(text), casualWords)
}

// DetectTone classifies the register of text.
func DetectTone(text string) Tone {
	lower := strings.ToLower(text)
	switch {
	case utils.ContainsAny(lower, []string{"por favor", "gracias", "disculpa"}):
		return TonePolite
	case utils.ContainsAny(lower, []string{"genial", "increíble", "fantástico", "!"}):
		return ToneEnthusiastic
	case utils.ContainsAny(lower, []string{"serio", "importante", "grave", "problema"}):
		return ToneSerious
	default:
		return ToneFriendly
	}
}

// PersonalConnection scores 1..5 how personal the exchange has become.
func PersonalConnection(text string, history []types.Turn) float64 {
	connection := 1.0
	if IsPersonalQuestion(text) {
		connection++
	}
	if IsEmotionalExpression(text) {
		connection++
	}
	connection += math.Min(2, float64(len(history))/5)
	return math.Min(5, connection)
}

// Analyze builds the context for one message.
func Analyze(text string, history []types.Turn) Context {
	state := DetectEmotionalState(text)
	depth := 1
	if len(history) > 3 {
		depth++
	}
	return Context{
		State:              state,
		Tone:               DetectTone(text),
		TopicDepth:         depth,
		PersonalConnection: PersonalConnection(text, history),
		Support:            DetermineSupportLevel(text, state),
	}
}
