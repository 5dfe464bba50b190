package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"architect/internal/architect"
	"architect/internal/gateway/repository/thread"
)

type fakeConversation struct {
	result architect.Result
	err    error
}

func (f *fakeConversation) HandleMessage(_ context.Context, _, _ string) (architect.Result, error) {
	return f.result, f.err
}

func newTestService(conv Conversation) *Service {
	return NewService(conv, thread.NewMemoryStore(), zerolog.Nop())
}

func doChat(t *testing.T, s *Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	BuildMux(s).ServeHTTP(rec, req)
	return rec
}

func TestChat_ReturnsResponseString(t *testing.T) {
	s := newTestService(&fakeConversation{
		result: architect.Result{Kind: architect.ResultText, Text: "Great idea!"},
	})
	rec := doChat(t, s, `{"message":"pitch","threadId":"t1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", rec.Code)
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Response != "Great idea!" {
		t.Fatalf("response=%q", resp.Response)
	}
}

func TestChat_BlueprintIsReturnedAsJSONString(t *testing.T) {
	raw := `{"businessOverview":{"name":"PetBox"}}`
	s := newTestService(&fakeConversation{
		result: architect.Result{Kind: architect.ResultBlueprint, Text: raw},
	})
	rec := doChat(t, s, `{"message":"answers","threadId":"t1"}`)
	var resp struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Response != raw {
		t.Fatalf("blueprint string mangled: %q", resp.Response)
	}
	if !json.Valid([]byte(resp.Response)) {
		t.Fatalf("response is not parseable JSON")
	}
}

func TestChat_ErrorKindsMapToStatusCodes(t *testing.T) {
	cases := []struct {
		kind architect.Kind
		want int
	}{
		{architect.KindInvalidRequest, http.StatusBadRequest},
		{architect.KindModelUnavailable, http.StatusBadGateway},
		{architect.KindStorageUnavailable, http.StatusServiceUnavailable},
		{architect.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := &architect.Error{Component: "orchestrator", Kind: tc.kind, Err: fmt.Errorf("boom")}
		s := newTestService(&fakeConversation{err: err})
		rec := doChat(t, s, `{"message":"x","threadId":"t1"}`)
		if rec.Code != tc.want {
			t.Fatalf("kind=%s status=%d want=%d", tc.kind, rec.Code, tc.want)
		}
		var resp struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if resp.Error == "" || resp.Details == "" {
			t.Fatalf("expected error and details, got %+v", resp)
		}
	}
}

func TestChat_BadBodyIsRejected(t *testing.T) {
	s := newTestService(&fakeConversation{})
	rec := doChat(t, s, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", rec.Code)
	}
}

func TestHistory_ReturnsTranscript(t *testing.T) {
	store := thread.NewMemoryStore()
	ctx := context.Background()
	_ = store.Append(ctx, "t1", thread.Turn{Role: thread.RoleUser, Content: "hello"})
	_ = store.Append(ctx, "t1", thread.Turn{Role: thread.RoleAgent, Content: "hi"})

	s := NewService(&fakeConversation{}, store, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/ai/history?threadId=t1", nil)
	rec := httptest.NewRecorder()
	BuildMux(s).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", rec.Code)
	}
	var resp struct {
		ThreadID string `json:"threadId"`
		Turns    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Seq     int    `json:"seq"`
		} `json:"turns"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Turns) != 2 || resp.Turns[0].Content != "hello" || resp.Turns[1].Seq != 1 {
		t.Fatalf("unexpected transcript: %+v", resp)
	}
}

func TestHistory_MissingThreadIDIsRejected(t *testing.T) {
	s := newTestService(&fakeConversation{})
	req := httptest.NewRequest(http.MethodGet, "/api/ai/history", nil)
	rec := httptest.NewRecorder()
	BuildMux(s).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", rec.Code)
	}
}
