package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"architect/internal/architect"
	"architect/internal/gateway/repository/thread"
)

// Conversation is the single operation the HTTP layer needs from the core.
type Conversation interface {
	HandleMessage(ctx context.Context, threadID, userText string) (architect.Result, error)
}

// Service exposes the conversation core over plain JSON endpoints.
type Service struct {
	conv    Conversation
	threads thread.Store
	log     zerolog.Logger
}

func NewService(conv Conversation, threads thread.Store, log zerolog.Logger) *Service {
	return &Service{conv: conv, threads: threads, log: log}
}

// BuildMux registers all HTTP handlers on a new ServeMux.
func BuildMux(s *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.Health)
	mux.HandleFunc("POST /api/ai/chat", s.Chat)
	mux.HandleFunc("GET /api/ai/history", s.History)
	return mux
}

func (s *Service) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Startup Architect API is healthy",
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}
