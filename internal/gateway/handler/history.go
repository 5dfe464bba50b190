package handler

import (
	"net/http"
	"strings"
)

type historyTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Seq     int    `json:"seq"`
}

type historyResponse struct {
	ThreadID string        `json:"threadId"`
	Turns    []historyTurn `json:"turns"`
}

// History returns the stored transcript of a thread so the UI can rehydrate
// a conversation.
func (s *Service) History(w http.ResponseWriter, r *http.Request) {
	threadID := strings.TrimSpace(r.URL.Query().Get("threadId"))
	if threadID == "" {
		writeError(w, http.StatusBadRequest, "threadId is required", "")
		return
	}

	turns, err := s.threads.Load(r.Context(), threadID)
	if err != nil {
		s.log.Error().Err(err).Str("thread_id", threadID).Msg("history load failed")
		writeError(w, http.StatusServiceUnavailable, "failed to load history", err.Error())
		return
	}

	out := historyResponse{ThreadID: threadID, Turns: make([]historyTurn, 0, len(turns))}
	for _, turn := range turns {
		out.Turns = append(out.Turns, historyTurn{
			Role:    string(turn.Role),
			Content: turn.Content,
			Seq:     turn.Seq,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
