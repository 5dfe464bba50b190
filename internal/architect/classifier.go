package architect

import (
	"encoding/json"
	"strings"
)

// Classification is the tagged outcome of inspecting raw model output.
type Classification struct {
	// Structured is true when the text is a parseable JSON object candidate.
	Structured bool
	// Text is the fence-stripped output; for structured candidates it is the
	// bare JSON string.
	Text string
	// Candidate holds the parsed-valid JSON when Structured is true.
	Candidate json.RawMessage
}

// Classify decides whether raw model output is free text or a structured
// payload. Text that merely contains braces mid-sentence stays
// conversational; malformed JSON inside braces degrades to conversational
// text rather than surfacing a parse error.
func Classify(raw string) Classification {
	text := stripFences(raw)
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return Classification{Text: text}
	}
	if !json.Valid([]byte(text)) {
		return Classification{Text: text}
	}
	return Classification{Structured: true, Text: text, Candidate: json.RawMessage(text)}
}

// stripFences removes markdown code-fence markers the model may wrap JSON in.
// The prompt forbids fences, but the classifier does not trust that the
// instruction was followed.
func stripFences(s string) string {
	if strings.Contains(s, "```") {
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```", "")
	}
	return strings.TrimSpace(s)
}
