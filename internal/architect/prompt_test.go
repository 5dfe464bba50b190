package architect

import (
	"testing"

	"architect/internal/gateway/repository/thread"
	llmclient "architect/internal/llmClient"
)

func TestComposeMessages_FreshThreadInjectsSystemOnce(t *testing.T) {
	messages, injected := ComposeMessages(nil, "I have a startup idea")
	if !injected {
		t.Fatalf("expected system injection on fresh thread")
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != llmclient.RoleSystem || messages[0].Content != SystemPrompt {
		t.Fatalf("position 0 is not the system instruction")
	}
	if messages[1].Role != llmclient.RoleUser || messages[1].Content != "I have a startup idea" {
		t.Fatalf("unexpected user message: %+v", messages[1])
	}
}

func TestComposeMessages_InjectionIsIdempotent(t *testing.T) {
	history := []thread.Turn{
		{Role: thread.RoleSystem, Content: SystemPrompt},
		{Role: thread.RoleUser, Content: "pitch"},
		{Role: thread.RoleAgent, Content: "impression"},
	}
	messages, injected := ComposeMessages(history, "follow-up")
	if injected {
		t.Fatalf("system turn already present, must not inject")
	}
	systemCount := 0
	for _, m := range messages {
		if m.Role == llmclient.RoleSystem {
			systemCount++
		}
	}
	if systemCount != 1 {
		t.Fatalf("expected exactly one system message, got %d", systemCount)
	}
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
}

func TestComposeMessages_PreservesHistoryOrderAndRoles(t *testing.T) {
	history := []thread.Turn{
		{Role: thread.RoleSystem, Content: SystemPrompt},
		{Role: thread.RoleUser, Content: "first"},
		{Role: thread.RoleAgent, Content: "second"},
		{Role: thread.RoleUser, Content: "third"},
	}
	messages, _ := ComposeMessages(history, "fourth")

	wantRoles := []string{
		llmclient.RoleSystem,
		llmclient.RoleUser,
		llmclient.RoleAssistant,
		llmclient.RoleUser,
		llmclient.RoleUser,
	}
	wantContent := []string{SystemPrompt, "first", "second", "third", "fourth"}
	if len(messages) != len(wantRoles) {
		t.Fatalf("expected %d messages, got %d", len(wantRoles), len(messages))
	}
	for i := range messages {
		if messages[i].Role != wantRoles[i] || messages[i].Content != wantContent[i] {
			t.Fatalf("message %d: got role=%s content=%q", i, messages[i].Role, messages[i].Content)
		}
	}
}
