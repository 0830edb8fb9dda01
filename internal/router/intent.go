package router

import (
	"regexp"
	"strings"

	"github.com/easeaico/oriona/internal/utils"
)

var explicitSearchPatterns = []string{
	"busca", "buscar", "información sobre", "informacion sobre", "datos sobre", "datos de",
	"investiga", "investigar", "necesito información", "necesito informacion",
	"quiero información", "quiero informacion", "dime sobre", "cuéntame sobre",
	"cuentame sobre", "explícame sobre", "explicame sobre", "qué sabes de", "que sabes de",
	"qué sabes sobre", "que sabes sobre",
}

var factualPatterns = compileAll(
	// personas
	`quién es [a-záéíóúñü\s]+`, `quien es [a-záéíóúñü\s]+`,
	`quién fue [a-záéíóúñü\s]+`, `quien fue [a-záéíóúñü\s]+`,
	// fechas y eventos
	`en qué año`, `en que ano`, `cuándo nació`, `cuando nacio`, `cuándo murió`, `cuando murio`,
	`cuándo ocurrió`, `cuando ocurrio`, `cuándo fue`, `cuando fue`, `qué pasó en`, `que paso en`,
	// lugares
	`dónde está`, `donde esta`, `dónde se encuentra`, `donde se encuentra`, `capital de`,
	`población de`, `poblacion de`, `ubicación de`, `ubicacion de`,
	// definiciones
	`qué es [a-záéíóúñü\s]+`, `que es [a-záéíóúñü\s]+`, `definición de`, `definicion de`,
	`significado de`, `concepto de`,
	// datos y precios
	`cuánto cuesta`, `cuanto cuesta`, `precio de`, `precio del`, `precio actual`, `cotización`,
	`cotizacion`, `estadísticas`, `estadisticas`, `datos exactos`, `cifras de`, `números de`,
	`numeros de`,
	// actualidad
	`últimas noticias`, `ultimas noticias`, `noticias recientes`, `qué está pasando`,
	`que esta pasando`, `actualidad de`, `situación actual`, `situacion actual`,
	// procedimientos
	`cómo se hace`, `como se hace`, `cómo funciona`, `como funciona`, `pasos para`,
	`instrucciones para`, `tutorial de`, `guía para`, `guia para`,
	// comparaciones
	`diferencia entre`, `diferencias entre`, `comparación entre`, `comparacion entre`,
	`versus`, `vs\.`,
	// listas
	`mejores [a-záéíóúñü\s]+ de`, `top [0-9]+ de`, `lista de`, `ranking de`, `cuáles son`,
	`cuales son`,
)

var currentInfoKeywords = []string{
	"actual", "actualidad", "reciente", "último", "ultima", "nuevo", "nueva", "hoy", "ahora",
	"presente", "2024", "2025", "este año", "este ano",
}

// A capitalized word standing on its own, like a name, place or brand.
var properNounPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+(?:\s+[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+)*(?:[^\p{L}\p{N}_]|$)`)

// Names of the assistant itself never trigger a search.
var ownNames = []string{"oriona", "jesus", "monsalvo", "ia", "ai"}

var personalConversationWords = []string{
	"me gusta", "prefiero", "creo que", "pienso que", "mi opinión", "mi opinion", "qué opinas",
	"que opinas", "cómo te sientes", "como te sientes", "tu experiencia", "tu perspectiva",
	"cuéntame de ti", "cuentame de ti", "háblame de ti", "hablame de ti", "eres", "tienes",
	"puedes sentir", "tu color favorito", "tu comida favorita", "te gusta", "prefieres",
	"me siento", "estoy triste", "estoy feliz", "tengo miedo", "me preocupa", "necesito hablar",
	"quiero conversar", "hola", "como estas", "que haces", "que tal", "gracias", "de nada",
}

const (
	currentInfoMinRunes = 15
	properNounMinRunes  = 10
	shortQueryRunes     = 8
	defaultSearchRunes  = 15
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// ShouldSearchWeb decides whether query needs fresh information from the
// web. The rules are checked in order and the first one that applies wins:
// explicit search intent, factual questions, current affairs, proper nouns,
// personal conversation (never searches), very short text, then length.
func ShouldSearchWeb(query string) bool {
	lower := strings.ToLower(strings.TrimSpace(query))
	n := utils.RuneLen(lower)

	if utils.ContainsAny(lower, explicitSearchPatterns) {
		return true
	}
	for _, re := range factualPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	if utils.ContainsAny(lower, currentInfoKeywords) && n > currentInfoMinRunes {
		return true
	}
	if n > properNounMinRunes && properNounPattern.MatchString(query) && !mentionsOwnName(lower) {
		return true
	}
	if utils.ContainsAny(lower, personalConversationWords) {
		return false
	}
	if n < shortQueryRunes {
		return false
	}
	return n > defaultSearchRunes
}

func mentionsOwnName(lower string) bool {
	for _, name := range ownNames {
		if utils.ContainsWord(lower, name) {
			return true
		}
	}
	return false
}
