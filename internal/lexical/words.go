package lexical

var positiveWords = []string{
	"excelente", "genial", "fantástico", "perfecto", "increíble", "maravilloso",
	"bueno", "bien", "gracias", "me gusta", "feliz", "contento", "alegre",
	"satisfecho", "amor", "encanta", "fascina", "impresionante", "brillante",
}

var negativeWords = []string{
	"malo", "terrible", "horrible", "odio", "detesto", "molesto", "triste",
	"enojado", "frustrado", "decepcionado", "aburrido", "cansado", "preocupado",
	"ansioso", "estresado", "confundido", "perdido", "difícil", "complicado",
}

var interrogativeWords = []string{
	"qué", "que", "cómo", "como", "cuándo", "cuando", "dónde", "donde",
	"por qué", "porque", "explica", "información", "datos", "ayuda",
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"el", "la", "los", "las", "un", "una", "y", "o", "pero", "si", "no", "me",
		"te", "se", "le", "nos", "os", "les", "mi", "tu", "su", "que", "como",
		"cuando", "donde", "por", "para", "con", "sin", "sobre", "entre", "hasta",
		"desde", "hacia", "de", "del", "al", "en", "a", "es", "son", "está",
		"están", "fue", "fueron", "ser", "estar", "tener", "hacer", "decir",
		"poder", "deber", "querer", "saber", "ver", "dar", "ir", "venir",
	} {
		stopWords[w] = struct{}{}
	}
}

type category struct {
	name  string
	words []string
}

// Declaration order breaks ties in DetectTopic.
var topicCategories = []category{
	{"tecnología", []string{"programación", "código", "javascript", "python", "computadora", "software", "internet", "web", "tecnología"}},
	{"ciencia", []string{"física", "química", "biología", "matemáticas", "ciencia", "experimento", "teoría", "investigación"}},
	{"cultura", []string{"españa", "madrid", "barcelona", "historia", "arte", "música", "literatura", "cultura", "tradición"}},
	{"educación", []string{"aprender", "estudiar", "escuela", "universidad", "conocimiento", "enseñar", "educación"}},
	{"personal", []string{"familia", "amigos", "trabajo", "vida", "sentimientos", "emociones", "problemas", "personal"}},
	{"entretenimiento", []string{"película", "libro", "juego", "deporte", "música", "diversión", "entretenimiento"}},
	{"salud", []string{"salud", "medicina", "doctor", "enfermedad", "ejercicio", "bienestar", "médico"}},
}

// Word lists shared by profile learning and personalization.
var (
	FormalWords         = []string{"usted", "señor", "señora", "estimado", "cordialmente", "atentamente"}
	InformalWords       = []string{"tú", "hola", "hey", "genial", "guay", "súper", "chévere", "che", "chaval", "colega"}
	EnthusiasticMarkers = []string{"increíble", "fantástico", "genial", "wow", "asombroso", "!", "😊", "🎉"}
	TechnicalWords      = []string{"programación", "código", "javascript", "python", "tecnología", "software", "desarrollo"}
	CreativeWords       = []string{"arte", "música", "diseño", "creatividad", "inspiración", "imaginación"}
	AcademicWords       = []string{"estudiar", "universidad", "investigación", "ciencia", "aprender", "conocimiento"}
	ScientificWords     = []string{"ciencia", "investigación", "experimento", "teoría", "análisis"}
	QuestionWords       = []string{"qué", "que", "cómo", "como", "cuándo", "cuando", "dónde", "donde", "por qué", "porque", "cuál", "cual"}
	ConversationalWords = []string{"me gusta", "prefiero", "creo", "pienso", "opino", "siento", "mi experiencia"}
	SearchIntentWords   = []string{"busca", "información", "datos", "investiga", "necesito saber", "quiero información"}
)
