package handler

import (
	"encoding/json"
	"net/http"

	"architect/internal/architect"
)

type chatRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat handles one user message: `{message, threadId}` in, `{response}` out.
// The response string is either prose or a JSON-encoded blueprint; the
// caller decides whether to attempt parsing it.
func (s *Service) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := s.conv.HandleMessage(r.Context(), req.ThreadID, req.Message)
	if err != nil {
		s.log.Error().Err(err).Str("thread_id", req.ThreadID).Msg("chat failed")
		writeError(w, statusFor(err), "failed to process message", err.Error())
		return
	}
	if result.Warning != "" {
		s.log.Warn().Str("thread_id", req.ThreadID).Str("warning", result.Warning).Msg("chat completed with warning")
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: result.Text})
}

func statusFor(err error) int {
	switch architect.KindOf(err) {
	case architect.KindInvalidRequest:
		return http.StatusBadRequest
	case architect.KindModelUnavailable:
		return http.StatusBadGateway
	case architect.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
