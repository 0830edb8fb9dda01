package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/easeaico/oriona/internal/agent"
	"github.com/easeaico/oriona/internal/router"
	"github.com/easeaico/oriona/internal/types"
)

const (
	msgMissingData   = "Datos requeridos faltantes"
	msgNeedUserTurn  = "Mensaje de usuario requerido"
	msgMissingQuery  = "Query requerido"
	msgMissingUser   = "Usuario requerido"
	msgChatFailed    = "Error procesando tu mensaje. Por favor, inténtalo de nuevo."
	msgChatApology   = "Lo siento, hubo un problema procesando tu mensaje. ¿Podrías intentarlo de nuevo?"
	msgSummaryFailed = "Error obteniendo el perfil"
	msgForgetFailed  = "Error eliminando los datos del usuario"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
	ChatID   string        `json:"chatId"`
	UserID   string        `json:"usuarioId"`
	Mode     string        `json:"modoRespuesta,omitempty"`
}

type chatResponse struct {
	Message       string               `json:"message"`
	Success       bool                 `json:"success"`
	SearchResults []types.SearchResult `json:"searchResults"`
	HasLearning   bool                 `json:"hasLearning"`
	Mode          types.Mode           `json:"mode"`
	Route         router.Route         `json:"route"`
	RequestID     string               `json:"requestId"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type followUpRequest struct {
	UserID string `json:"usuarioId"`
}

var (
	chatSchema     = requestSchema[chatRequest]("chatId", "usuarioId")
	searchSchema   = requestSchema[searchRequest]("query")
	followUpSchema = requestSchema[followUpRequest]("usuarioId")
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeValid(w, r, chatSchema, &req); err != nil {
		slog.Debug("rejected chat request", "error", err)
		writeError(w, http.StatusBadRequest, msgMissingData)
		return
	}
	if len(req.Messages) == 0 || req.Messages[len(req.Messages)-1].Role != "user" {
		writeError(w, http.StatusBadRequest, msgNeedUserTurn)
		return
	}

	last := req.Messages[len(req.Messages)-1]
	history := make([]types.Turn, 0, len(req.Messages)-1)
	for _, m := range req.Messages[:len(req.Messages)-1] {
		history = append(history, types.Turn{Content: m.Content, IsUser: m.Role == "user"})
	}

	resp, err := h.companion.Reply(r.Context(), agent.ChatRequest{
		UserID:  req.UserID,
		Message: last.Content,
		History: history,
		Mode:    types.ParseMode(req.Mode),
	})
	if err != nil {
		slog.Error("failed to reply", "chat_id", req.ChatID, "user_id", req.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   msgChatFailed,
			"message": msgChatApology,
		})
		return
	}

	out := chatResponse{
		Message:     resp.Message,
		Success:     true,
		HasLearning: resp.HasLearning,
		Mode:        resp.Mode,
		Route:       resp.Route,
		RequestID:   resp.RequestID,
	}
	if len(resp.Results) > 0 {
		out.SearchResults = resp.Results
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeValid(w, r, searchSchema, &req); err != nil || strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, msgMissingQuery)
		return
	}
	results := h.companion.Search(r.Context(), req.Query)
	if results == nil {
		results = []types.SearchResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *Handler) iceBreaker(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": h.companion.IceBreaker()})
}

func (h *Handler) followUp(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if err := decodeValid(w, r, followUpSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingUser)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": h.companion.FollowUp(r.Context(), req.UserID)})
}

func (h *Handler) knowledge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.companion.KnowledgeStats())
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	summary, err := h.companion.UserSummary(r.Context(), userID)
	if err != nil {
		slog.Error("failed to build user summary", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, msgSummaryFailed)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) recall(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, msgMissingQuery)
		return
	}
	memory, found := h.companion.Recall(r.Context(), userID, query)
	writeJSON(w, http.StatusOK, map[string]any{"found": found, "memory": memory})
}

func (h *Handler) forget(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if err := h.companion.Forget(r.Context(), userID); err != nil {
		slog.Error("failed to forget user", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, msgForgetFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
