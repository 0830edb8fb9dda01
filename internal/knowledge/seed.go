package knowledge

var seedTechniques = []Technique{
	{
		Key:         "grounding",
		Name:        "Técnica de Grounding",
		Description: "Ayuda a conectar con el presente cuando hay ansiedad",
		Application: "Para ansiedad y ataques de pánico",
		NaturalLanguage: []string{
			"¿Puedes contarme 5 cosas que ves a tu alrededor?",
			"Vamos a conectar con el presente por un momento",
			"Enfoquémonos en lo que puedes sentir ahora mismo",
			"¿Qué sonidos escuchas en este momento?",
		},
	},
	{
		Key:         "validation",
		Name:        "Validación Emocional",
		Description: "Reconocer y aceptar las emociones sin juzgar",
		Application: "Para cualquier estado emocional difícil",
		NaturalLanguage: []string{
			"Lo que sientes es completamente válido",
			"Tiene mucho sentido que te sientas así",
			"No hay emociones 'incorrectas', solo experiencias humanas",
			"Tu dolor es real y merece ser reconocido",
		},
	},
	{
		Key:         "reframing",
		Name:        "Reestructuración Cognitiva",
		Description: "Ayudar a ver las situaciones desde diferentes perspectivas",
		Application: "Para pensamientos negativos automáticos",
		NaturalLanguage: []string{
			"¿Hay otra forma de ver esta situación?",
			"¿Qué le dirías a un amigo en tu misma situación?",
			"¿Es posible que haya aspectos que no estás viendo?",
			"¿Cómo podrías replantear esto de manera más compasiva?",
		},
	},
}

var seedEmpathy = []string{
	"Puedo imaginar lo difícil que debe ser esto para ti",
	"Siento que estés pasando por esto",
	"Me conmueve que confíes en mí para compartir esto",
	"Reconozco el valor que tienes al expresar estos sentimientos",
	"Tu experiencia importa y merece ser escuchada",
	"Admiro tu fortaleza al enfrentar esto",
}

var seedValidation = []string{
	"Es completamente normal sentirse así",
	"Muchas personas han pasado por experiencias similares",
	"No estás solo/a en esto",
	"Tus sentimientos son una respuesta natural",
	"No hay una forma 'correcta' de sentirse",
	"Tu reacción es comprensible dada la situación",
}

var seedNatural = []string{
	"Me pregunto si...",
	"¿Has notado que...?",
	"A veces puede ayudar...",
	"En mi experiencia conversando con personas...",
	"Lo que me llama la atención es...",
	"¿Te resuena la idea de...?",
	"Algo que he observado es...",
	"¿Cómo te sientes cuando...?",
}

var followUpQuestions = []string{
	"¿Cómo te sientes al escuchar esto?",
	"¿Hay algo de esto que te resuena?",
	"¿Te gustaría que exploremos esto más profundamente?",
	"¿Qué piensas sobre esta perspectiva?",
	"¿Hay algo más que te gustaría compartir?",
}

// Only the first two queries are issued per learning round.
var queryTemplates = []string{
	"%s técnicas terapéuticas site:psicologiaymente.com",
	"%s apoyo emocional site:colegiopsicologos.es",
	"%s terapia cognitivo conductual",
	"%s mindfulness técnicas",
	"%s validación emocional",
	"%s psicología positiva",
}

const queriesPerRound = 2

var relevanceKeywords = []string{
	"terapia", "psicología", "emocional", "ansiedad", "depresión", "autoestima",
	"mindfulness", "cognitivo", "conductual", "validación", "empática",
	"bienestar", "salud mental", "técnicas", "estrategias", "apoyo",
	"resiliencia", "afrontamiento",
}

var conceptKeywords = []string{
	"validación emocional", "regulación emocional", "inteligencia emocional",
	"autocompasión", "mindfulness", "resiliencia", "autoestima", "asertividad",
	"empatía", "escucha activa", "reestructuración cognitiva",
	"exposición gradual", "relajación progresiva",
}

var empathicKeywords = []string{
	"es normal", "es comprensible", "es válido", "no estás solo",
	"muchas personas", "es importante", "mereces", "tienes derecho",
	"está bien", "es natural",
}

var techniqueDescriptions = []string{
	"Una técnica que he aprendido sobre %s que puede ser muy útil",
	"%s es algo que he visto que ayuda mucho a las personas",
	"He notado que %s puede ser especialmente efectivo",
	"Una aproximación que me parece valiosa es %s",
}

var techniquePhrasings = []string{
	"¿Te gustaría que exploremos %s juntos?",
	"Algo que podría ayudar es %s",
	"He visto que %s puede ser reconfortante",
	"¿Has probado alguna vez %s?",
	"Una cosa que me parece útil es %s",
}

// relevanceMap ties an emotional state to technique keywords.
var relevanceMap = map[string][]string{
	"anxious":  {"grounding", "respiración", "presente", "calma"},
	"sad":      {"validación", "autocompasión", "autocuidado", "actividades"},
	"angry":    {"regulación", "respiración", "pausa", "reflexión"},
	"confused": {"clarificación", "exploración", "reflexión", "perspectiva"},
}

// stateApplicationWords are the Spanish terms a technique's Application
// uses for each emotional state.
var stateApplicationWords = map[string][]string{
	"anxious":  {"ansiedad", "estrés", "pánico"},
	"sad":      {"tristeza", "estado emocional difícil"},
	"angry":    {"enojo", "ira", "estado emocional difícil"},
	"confused": {"confusión", "pensamientos"},
}

// resource is a relevant text harvested for learning.
type resource struct {
	Title      string
	Content    string
	Techniques []string
	Concepts   []string
	Source     string
}

var builtinResources = []struct {
	triggers []string
	res      resource
}{
	{
		triggers: []string{"ansiedad", "nervioso", "preocup"},
		res: resource{
			Title:      "Técnicas de Manejo de Ansiedad",
			Content:    "La respiración diafragmática es fundamental para calmar el sistema nervioso. La técnica 4-7-8 consiste en inhalar por 4, mantener por 7 y exhalar por 8. El grounding o técnica 5-4-3-2-1 ayuda a conectar con el presente.",
			Techniques: []string{"respiración diafragmática", "técnica 4-7-8", "grounding 5-4-3-2-1"},
			Concepts:   []string{"regulación del sistema nervioso", "mindfulness", "presencia"},
			Source:     "Conocimiento terapéutico integrado",
		},
	},
	{
		triggers: []string{"triste", "deprim", "vacío"},
		res: resource{
			Title:      "Apoyo para Estados Depresivos",
			Content:    "La validación emocional es crucial. Pequeñas actividades placenteras pueden ayudar. La autocompasión implica tratarse con la misma amabilidad que a un buen amigo. Las rutinas básicas de autocuidado son fundamentales.",
			Techniques: []string{"actividades placenteras", "autocompasión", "rutinas de autocuidado"},
			Concepts:   []string{"validación emocional", "autocuidado", "compasión"},
			Source:     "Terapia cognitivo-conductual adaptada",
		},
	},
	{
		triggers: []string{"autoestima", "no valgo", "fracaso"},
		res: resource{
			Title:      "Fortalecimiento de la Autoestima",
			Content:    "El diálogo interno compasivo es esencial. Cuestionar los pensamientos automáticos negativos. Reconocer fortalezas y logros, por pequeños que sean. La autocompasión es más efectiva que la autocrítica.",
			Techniques: []string{"diálogo interno compasivo", "cuestionamiento de pensamientos", "reconocimiento de fortalezas"},
			Concepts:   []string{"autocompasión", "reestructuración cognitiva", "autoestima"},
			Source:     "Terapia de autocompasión",
		},
	},
}
