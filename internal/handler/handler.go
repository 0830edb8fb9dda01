// Package handler exposes the companion over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/easeaico/oriona/internal/agent"
	"github.com/easeaico/oriona/internal/knowledge"
	"github.com/easeaico/oriona/internal/types"
)

// Companion is the part of agent.Companion the HTTP surface needs.
type Companion interface {
	Reply(ctx context.Context, req agent.ChatRequest) (agent.ChatResponse, error)
	Search(ctx context.Context, query string) []types.SearchResult
	UserSummary(ctx context.Context, userID string) (*agent.Summary, error)
	Recall(ctx context.Context, userID, query string) (string, bool)
	Forget(ctx context.Context, userID string) error
	IceBreaker() string
	FollowUp(ctx context.Context, userID string) string
	KnowledgeStats() knowledge.Stats
}

// Handler serves the chat API.
type Handler struct {
	companion Companion
}

// NewRouter registers every route on a gorilla/mux router.
func NewRouter(companion Companion) *mux.Router {
	h := &Handler{companion: companion}

	r := mux.NewRouter()
	r.Use(recoverMiddleware, logMiddleware)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/chat", h.chat).Methods(http.MethodPost)
	api.HandleFunc("/search", h.search).Methods(http.MethodPost)
	api.HandleFunc("/icebreaker", h.iceBreaker).Methods(http.MethodGet)
	api.HandleFunc("/followup", h.followUp).Methods(http.MethodPost)
	api.HandleFunc("/knowledge", h.knowledge).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/summary", h.summary).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/recall", h.recall).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.forget).Methods(http.MethodDelete)
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				slog.Error("panic while serving request", "path", r.URL.Path, "panic", v)
				writeError(w, http.StatusInternalServerError, "Error interno del servidor")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
