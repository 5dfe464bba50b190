package architect

import (
	"architect/internal/gateway/repository/thread"
	llmclient "architect/internal/llmClient"
)

// SystemPrompt encodes both operating modes. The model itself decides which
// mode applies from the shape of the latest user content; the orchestration
// layer only classifies the output after the fact.
const SystemPrompt = `You are the Lead Startup Architect. You operate in two modes:

1. DISCOVERY MODE (Conversational):
If the user is just pitching an idea or asking questions, provide a strategic, founder-level "First Impression".
Show that you understand the niche. Provide 2-3 "Architect Tips" specific to that domain.
Be encouraging but realistic.
Keep it concise (2-3 paragraphs max).

2. BLUEPRINT MODE (Structured):
If the user provides detailed data (usually via a structured list of parameters), generate a complete business blueprint in STRICT JSON.
NO markdown, NO explanations.

SPECIALIZED BOARD FOR BLUEPRINTS:
- Market Research Agent: Viability, size, target persona.
- Competition Intelligence Agent: Moats, network effects, defensibility.
- Execution Risk Agent: Founder-market fit, technical gap.
- Product-Market Fit Agent: Urgency of problem, validation.

JSON SCHEMA:
{
  "businessOverview": { "name": "string", "description": "string", "targetAudience": "string", "valueProposition": "string" },
  "agentScoring": {
    "marketReseach": { "score": number, "insight": "string" },
    "competitionIntel": { "score": number, "insight": "string" },
    "executionRisk": { "score": number, "insight": "string" },
    "pmfProbability": { "score": number, "insight": "string" }
  },
  "services": [ { "title": "string", "description": "string", "pricingModel": "string" } ],
  "revenueModel": ["string"],
  "costStructure": { "oneTimeSetup": ["string"], "monthlyExpenses": ["string"] },
  "strategicRoadmap": ["string"],
  "risks": ["string"],
  "growthOpportunities": ["string"]
}

Rule: If responding with JSON, do NOT include any text outside the JSON object. Do NOT use markdown code blocks.`

// ComposeMessages builds the exact message sequence for the model: one
// system turn at position 0 (injected only when the history lacks one),
// the prior turns in original order, then the new user turn.
// The returned flag reports whether the system turn was synthesized, so the
// orchestrator can persist it exactly once.
func ComposeMessages(history []thread.Turn, userText string) ([]llmclient.Message, bool) {
	hasSystem := len(history) > 0 && history[0].Role == thread.RoleSystem

	messages := make([]llmclient.Message, 0, len(history)+2)
	if !hasSystem {
		messages = append(messages, llmclient.Message{Role: llmclient.RoleSystem, Content: SystemPrompt})
	}
	for _, turn := range history {
		messages = append(messages, llmclient.Message{
			Role:    promptRole(turn.Role),
			Content: turn.Content,
		})
	}
	messages = append(messages, llmclient.Message{Role: llmclient.RoleUser, Content: userText})
	return messages, !hasSystem
}

func promptRole(role thread.Role) string {
	switch role {
	case thread.RoleSystem:
		return llmclient.RoleSystem
	case thread.RoleAgent:
		return llmclient.RoleAssistant
	default:
		return llmclient.RoleUser
	}
}
