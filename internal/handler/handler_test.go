package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/easeaico/oriona/internal/agent"
	"github.com/easeaico/oriona/internal/knowledge"
	"github.com/easeaico/oriona/internal/router"
	"github.com/easeaico/oriona/internal/types"
)

var _ Companion = (*agent.Companion)(nil)

type fakeCompanion struct {
	last      agent.ChatRequest
	replyErr  error
	results   []types.SearchResult
	forgotten string
	panics    bool
}

func (f *fakeCompanion) Reply(ctx context.Context, req agent.ChatRequest) (agent.ChatResponse, error) {
	if f.panics {
		panic("boom")
	}
	f.last = req
	if f.replyErr != nil {
		return agent.ChatResponse{}, f.replyErr
	}
	return agent.ChatResponse{
		RequestID:   "req-1",
		Message:     "¡Hola!",
		Route:       router.RoutePattern,
		Mode:        req.Mode,
		Results:     f.results,
		HasLearning: req.Mode == types.ModeConversation,
	}, nil
}

func (f *fakeCompanion) Search(ctx context.Context, query string) []types.SearchResult {
	return f.results
}

func (f *fakeCompanion) UserSummary(ctx context.Context, userID string) (*agent.Summary, error) {
	return &agent.Summary{UserID: userID, Description: "Usuario nuevo"}, nil
}

func (f *fakeCompanion) Recall(ctx context.Context, userID, query string) (string, bool) {
	if query == "python" {
		return "Recuerdo que hablamos de python", true
	}
	return "", false
}

func (f *fakeCompanion) Forget(ctx context.Context, userID string) error {
	f.forgotten = userID
	return nil
}

func (f *fakeCompanion) IceBreaker() string { return "¿Qué tal tu día?" }

func (f *fakeCompanion) FollowUp(ctx context.Context, userID string) string {
	return "Cuéntame más, " + userID
}

func (f *fakeCompanion) KnowledgeStats() knowledge.Stats {
	return knowledge.Stats{Techniques: 3}
}

func serve(t *testing.T, c Companion, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewRouter(c).ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestChatRejectsMissingFields(t *testing.T) {
	bodies := []string{
		``,
		`not json`,
		`{"chatId":"c1","usuarioId":"u1"}`,
		`{"messages":null,"chatId":"c1","usuarioId":"u1"}`,
		`{"messages":[{"role":"user","content":"hola"}],"usuarioId":"u1"}`,
		`{"messages":[{"role":"user","content":"hola"}],"chatId":"c1","usuarioId":""}`,
		`{"messages":"hola","chatId":"c1","usuarioId":"u1"}`,
	}
	for _, body := range bodies {
		rec := serve(t, &fakeCompanion{}, http.MethodPost, "/api/chat", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%q: expected 400, got %d", body, rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != msgMissingData {
			t.Fatalf("%q: expected %q, got %v", body, msgMissingData, got)
		}
	}
}

func TestChatRequiresTrailingUserMessage(t *testing.T) {
	for _, body := range []string{
		`{"messages":[],"chatId":"c1","usuarioId":"u1"}`,
		`{"messages":[{"role":"user","content":"hola"},{"role":"assistant","content":"¡Hola!"}],"chatId":"c1","usuarioId":"u1"}`,
	} {
		rec := serve(t, &fakeCompanion{}, http.MethodPost, "/api/chat", body)
		if rec.Code != http.StatusBadRequest || decodeBody(t, rec)["error"] != msgNeedUserTurn {
			t.Fatalf("%q: expected 400 %q, got %d %s", body, msgNeedUserTurn, rec.Code, rec.Body.String())
		}
	}
}

func TestChatRepliesWithHistory(t *testing.T) {
	c := &fakeCompanion{}
	body := `{"messages":[
		{"role":"user","content":"hola"},
		{"role":"assistant","content":"¡Hola! ¿Cómo estás?"},
		{"role":"user","content":"bien, gracias"}
	],"chatId":"c1","usuarioId":"u1","modoRespuesta":"conversacion","extra":true}`

	rec := serve(t, c, http.MethodPost, "/api/chat", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if c.last.UserID != "u1" || c.last.Message != "bien, gracias" || c.last.Mode != types.ModeConversation {
		t.Fatalf("unexpected request: %#v", c.last)
	}
	if len(c.last.History) != 2 || !c.last.History[0].IsUser || c.last.History[1].IsUser {
		t.Fatalf("unexpected history: %#v", c.last.History)
	}

	out := decodeBody(t, rec)
	if out["message"] != "¡Hola!" || out["success"] != true || out["hasLearning"] != true {
		t.Fatalf("unexpected body: %v", out)
	}
	if out["mode"] != "conversacion" || out["route"] != "pattern" || out["requestId"] != "req-1" {
		t.Fatalf("unexpected body: %v", out)
	}
	if v, ok := out["searchResults"]; !ok || v != nil {
		t.Fatalf("expected searchResults to be null, got %v", v)
	}
}

func TestChatDefaultsToAutoAndReturnsResults(t *testing.T) {
	c := &fakeCompanion{results: []types.SearchResult{{Title: "Gato", Snippet: "felino", URL: "https://a"}}}
	rec := serve(t, c, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"busca gatos"}],"chatId":"c1","usuarioId":"u1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	out := decodeBody(t, rec)
	if out["mode"] != "auto" || out["hasLearning"] != false {
		t.Fatalf("unexpected body: %v", out)
	}
	results, ok := out["searchResults"].([]any)
	if !ok || len(results) != 1 {
		t.Fatalf("expected one search result, got %v", out["searchResults"])
	}
}

func TestChatFailureReturnsApology(t *testing.T) {
	c := &fakeCompanion{replyErr: errors.New("boom")}
	rec := serve(t, c, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hola"}],"chatId":"c1","usuarioId":"u1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	out := decodeBody(t, rec)
	if out["error"] != msgChatFailed || out["message"] != msgChatApology {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	rec := serve(t, &fakeCompanion{panics: true}, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hola"}],"chatId":"c1","usuarioId":"u1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSearch(t *testing.T) {
	for _, body := range []string{`{}`, `{"query":""}`, `{"query":42}`, `{"query":"   "}`} {
		rec := serve(t, &fakeCompanion{}, http.MethodPost, "/api/search", body)
		if rec.Code != http.StatusBadRequest || decodeBody(t, rec)["error"] != msgMissingQuery {
			t.Fatalf("%q: expected 400 %q, got %d", body, msgMissingQuery, rec.Code)
		}
	}

	rec := serve(t, &fakeCompanion{}, http.MethodPost, "/api/search", `{"query":"gatos"}`)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"results":[]}` {
		t.Fatalf("expected empty results, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestUserRoutes(t *testing.T) {
	c := &fakeCompanion{}

	rec := serve(t, c, http.MethodGet, "/api/users/u1/summary", "")
	if rec.Code != http.StatusOK || decodeBody(t, rec)["user_id"] != "u1" {
		t.Fatalf("unexpected summary: %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(t, c, http.MethodGet, "/api/users/u1/recall?q=python", "")
	if out := decodeBody(t, rec); out["found"] != true || out["memory"] == "" {
		t.Fatalf("unexpected recall: %v", out)
	}
	rec = serve(t, c, http.MethodGet, "/api/users/u1/recall", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without query, got %d", rec.Code)
	}

	rec = serve(t, c, http.MethodDelete, "/api/users/u1", "")
	if rec.Code != http.StatusNoContent || c.forgotten != "u1" {
		t.Fatalf("expected u1 to be forgotten, got %d %q", rec.Code, c.forgotten)
	}
}

func TestConversationHelpers(t *testing.T) {
	c := &fakeCompanion{}

	if out := decodeBody(t, serve(t, c, http.MethodGet, "/api/icebreaker", "")); out["message"] != "¿Qué tal tu día?" {
		t.Fatalf("unexpected ice breaker: %v", out)
	}
	if out := decodeBody(t, serve(t, c, http.MethodPost, "/api/followup", `{"usuarioId":"ana"}`)); out["message"] != "Cuéntame más, ana" {
		t.Fatalf("unexpected follow-up: %v", out)
	}
	if rec := serve(t, c, http.MethodPost, "/api/followup", `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without user, got %d", rec.Code)
	}
	if out := decodeBody(t, serve(t, c, http.MethodGet, "/api/knowledge", "")); out["techniques"] != float64(3) {
		t.Fatalf("unexpected knowledge stats: %v", out)
	}
	if rec := serve(t, c, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected healthy, got %d", rec.Code)
	}
	if rec := serve(t, c, http.MethodGet, "/api/chat", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET chat, got %d", rec.Code)
	}
}
