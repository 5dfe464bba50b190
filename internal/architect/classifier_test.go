package architect

import "testing"

func TestClassify_ProseStaysText(t *testing.T) {
	cls := Classify("Great idea! Here are my architect tips.")
	if cls.Structured {
		t.Fatalf("prose classified as structured")
	}
	if cls.Text != "Great idea! Here are my architect tips." {
		t.Fatalf("text mangled: %q", cls.Text)
	}
}

func TestClassify_JSONObjectIsStructured(t *testing.T) {
	raw := `{"businessOverview":{"name":"PetBox"}}`
	cls := Classify(raw)
	if !cls.Structured {
		t.Fatalf("well-formed JSON object not classified as structured")
	}
	if cls.Text != raw {
		t.Fatalf("candidate text mangled: %q", cls.Text)
	}
}

func TestClassify_FencedJSONIsRecognized(t *testing.T) {
	raw := "```json\n{\"businessOverview\":{\"name\":\"PetBox\"}}\n```"
	cls := Classify(raw)
	if !cls.Structured {
		t.Fatalf("fenced JSON not recognized")
	}
	if cls.Text != `{"businessOverview":{"name":"PetBox"}}` {
		t.Fatalf("fences not stripped: %q", cls.Text)
	}
}

func TestClassify_MidSentenceBracesStayText(t *testing.T) {
	raw := `Use a config like {debug: true} in your stack.`
	cls := Classify(raw)
	if cls.Structured {
		t.Fatalf("mid-sentence braces misclassified as structured")
	}
	if cls.Text != raw {
		t.Fatalf("text mangled: %q", cls.Text)
	}
}

func TestClassify_MalformedJSONDegradesToText(t *testing.T) {
	raw := `{oops not json`
	cls := Classify(raw)
	if cls.Structured {
		t.Fatalf("malformed JSON classified as structured")
	}
	if cls.Text != raw {
		t.Fatalf("original string lost: %q", cls.Text)
	}
}

func TestClassify_BracedButInvalidJSONDegradesToText(t *testing.T) {
	raw := `{"businessOverview": }`
	cls := Classify(raw)
	if cls.Structured {
		t.Fatalf("invalid JSON inside braces classified as structured")
	}
}

func TestStripFences_NoFencesUntouched(t *testing.T) {
	if got := stripFences("  plain text  "); got != "plain text" {
		t.Fatalf("got %q", got)
	}
}
