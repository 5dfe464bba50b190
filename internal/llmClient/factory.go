package llmclient

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Settings configures provider construction. Temperature stays low so
// blueprint-mode output leans deterministic.
type Settings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// New builds an LLMClient for the configured provider.
// Supported providers: groq (default), openai, gemini.
func New(ctx context.Context, cfg Settings) (LLMClient, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("llm model is required")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "groq":
		return NewGroqClient(cfg.APIKey, model, cfg.Temperature, cfg.Timeout), nil
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, model, cfg.Temperature, cfg.Timeout), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, model, cfg.Temperature, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
