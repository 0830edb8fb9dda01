// Package router decides how a message is answered: web research, scripted
// conversation or emotional support.
package router

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/easeaico/oriona/internal/emotion"
	"github.com/easeaico/oriona/internal/random"
	"github.com/easeaico/oriona/internal/search"
	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

// Route names the path that produced a reply.
type Route string

const (
	RouteCrisis       Route = "crisis"
	RouteSearch       Route = "search"
	RouteSearchFailed Route = "search_failed"
	RoutePattern      Route = "pattern"
	RouteSupport      Route = "support"
)

// DefaultSearchTimeout bounds every search call.
const DefaultSearchTimeout = 5 * time.Second

// FallbackReply is returned when every other path produced nothing.
const FallbackReply = "Lo siento, hubo un problema procesando tu mensaje. ¿Podrías intentarlo de nuevo?"

const researchIntro = "¡Perfecto! Voy a investigar eso para ti 🔍"

var searchIntros = []string{
	"¡Perfecto! Encontré información muy interesante sobre eso 🔍",
	"¡Excelente pregunta! Acabo de buscar en internet y esto es lo que descubrí 🌐",
	"¡Me encanta investigar! Aquí tienes lo que encontré navegando por la web ✨",
	"¡Genial! He estado buscando información fresca y esto es lo más relevante 💡",
	"¡Súper! Déjame compartirte lo que acabo de encontrar en internet 🚀",
}

var searchFailures = []string{
	`¡Ay! 😅 Intenté buscar información sobre "%s" pero no pude acceder a internet en este momento. ¿Podrías intentar reformular tu pregunta o preguntarme algo más general?`,
	`¡Ups! 🤔 No logré encontrar información actualizada sobre "%s" ahora mismo. ¿Hay algo más específico que te gustaría saber o alguna otra forma en que pueda ayudarte?`,
	`¡Vaya! 😊 Parece que mi búsqueda sobre "%s" no funcionó como esperaba. ¿Te gustaría que conversemos sobre el tema de otra manera?`,
}

const searchReplyText = `{{.Intro}}

{{range $i, $r := .Results}}{{if eq $i 0}}**{{$r.Title}}**
{{$r.Snippet}}

{{else if lt $i 3}}**También encontré:**
{{$r.Snippet}}

{{end}}{{end}}📖 **Fuentes consultadas:**
{{range .Sources}}• {{.Title}}
{{end}}
¿Te gustaría que profundice en algún aspecto específico o tienes alguna otra pregunta? 😊`

var searchReplyTemplate = template.Must(template.New("search").Parse(searchReplyText))

// Dialogue is the scripted pattern engine.
type Dialogue interface {
	Generate(ctx context.Context, userID, utterance string) (string, bool, error)
}

// Support answers messages no pattern matched.
type Support interface {
	Respond(ctx context.Context, prompt string, history []types.Turn) emotion.Response
}

// Request is one inbound message.
type Request struct {
	UserID  string
	Message string
	History []types.Turn
	Mode    types.Mode
}

// Reply is the raw, not yet personalized answer.
type Reply struct {
	Text    string
	Route   Route
	Kind    emotion.Kind
	Mode    types.Mode
	Results []types.SearchResult
	// Personalize is false for research mode and crisis replies.
	Personalize bool
}

// Router picks a path for each message.
type Router struct {
	searcher search.Searcher
	dialogue Dialogue
	support  Support
	rnd      random.Source
	timeout  time.Duration
}

// New returns a router. searcher may be nil, in which case every search
// attempt degrades to the failure reply.
func New(searcher search.Searcher, dialogue Dialogue, support Support, rnd random.Source, timeout time.Duration) *Router {
	if timeout <= 0 {
		timeout = DefaultSearchTimeout
	}
	return &Router{searcher: searcher, dialogue: dialogue, support: support, rnd: rnd, timeout: timeout}
}

// Route answers req. The crisis check runs before any mode handling. The
// returned text is never empty and external failures never surface as errors.
func (r *Router) Route(ctx context.Context, req Request) Reply {
	mode := req.Mode
	if mode == "" {
		mode = types.ModeAuto
	}

	var reply Reply
	switch {
	case emotion.IsCrisis(req.Message):
		slog.Info("crisis message detected", "user_id", req.UserID)
		reply = Reply{Text: emotion.CrisisResponse(), Route: RouteCrisis, Kind: emotion.KindCrisis}
	case mode == types.ModeResearch:
		reply = r.research(ctx, req.Message, researchIntro)
	case mode == types.ModeConversation:
		reply = r.converse(ctx, req)
	case ShouldSearchWeb(req.Message):
		slog.Debug("message needs web search", "user_id", req.UserID)
		reply = r.research(ctx, req.Message, "")
	default:
		reply = r.converse(ctx, req)
	}

	reply.Mode = mode
	reply.Personalize = mode != types.ModeResearch && reply.Route != RouteCrisis
	if strings.TrimSpace(reply.Text) == "" {
		reply.Text = FallbackReply
	}
	return reply
}

func (r *Router) converse(ctx context.Context, req Request) Reply {
	if r.dialogue != nil {
		text, ok, err := r.dialogue.Generate(ctx, req.UserID, req.Message)
		if err != nil {
			slog.Warn("pattern dialogue failed", "user_id", req.UserID, "error", err)
		}
		if ok && err == nil {
			return Reply{Text: text, Route: RoutePattern}
		}
	}
	if r.support == nil {
		return Reply{Text: FallbackReply, Route: RouteSupport, Kind: emotion.KindGeneral}
	}
	resp := r.support.Respond(ctx, req.Message, req.History)
	return Reply{Text: resp.Text, Route: RouteSupport, Kind: resp.Kind}
}

func (r *Router) research(ctx context.Context, prompt, intro string) Reply {
	if r.searcher == nil {
		return Reply{Text: r.failure(prompt), Route: RouteSearchFailed}
	}
	sctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	outcome := r.searcher.Search(sctx, prompt)
	if !outcome.OK() {
		slog.Warn("web search failed", "error", outcome.Err)
		return Reply{Text: r.failure(prompt), Route: RouteSearchFailed}
	}

	text, err := r.formatResults(intro, outcome.Results)
	if err != nil {
		slog.Warn("failed to format search results", "error", err)
		return Reply{Text: r.failure(prompt), Route: RouteSearchFailed}
	}
	return Reply{Text: text, Route: RouteSearch, Results: outcome.Results}
}

func (r *Router) formatResults(intro string, results []types.SearchResult) (string, error) {
	if intro == "" {
		intro = random.Pick(r.rnd, searchIntros)
	}
	sources := results
	if len(sources) > 3 {
		sources = sources[:3]
	}
	var buf bytes.Buffer
	data := struct {
		Intro   string
		Results []types.SearchResult
		Sources []types.SearchResult
	}{intro, results, sources}
	if err := searchReplyTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(utils.CollapseBlankLines(buf.String())), nil
}

func (r *Router) failure(prompt string) string {
	return fmt.Sprintf(random.Pick(r.rnd, searchFailures), prompt)
}
