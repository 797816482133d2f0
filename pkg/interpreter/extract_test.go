package interpreter

import (
	"encoding/json"
	"testing"
)

func TestExtractDirectContent(t *testing.T) {
	got := ExtractAssistantText(json.RawMessage(`{"content": "Spell this word: elephant"}`))
	if got != "Spell this word: elephant" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractMessageList(t *testing.T) {
	raw := json.RawMessage(`{"messages": [
		{"role": "user", "content": "start"},
		{"role": "assistant", "content": "Okay!"},
		{"role": "bot", "text": "Spell this word: elephant"}
	]}`)
	got := ExtractAssistantText(raw)
	if got != "Okay!\nSpell this word: elephant" {
		t.Fatalf("expected joined assistant texts, got %q", got)
	}
}

func TestExtractOutputMessages(t *testing.T) {
	raw := json.RawMessage(`{"output": {"messages": [
		{"role": "assistant", "content": "Next word: quiet"}
	]}}`)
	if got := ExtractAssistantText(raw); got != "Next word: quiet" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractSingleRoleTagged(t *testing.T) {
	raw := json.RawMessage(`{"role": "assistant", "content": "Round complete."}`)
	if got := ExtractAssistantText(raw); got != "Round complete." {
		t.Fatalf("got %q", got)
	}
}

func TestExtractUnusableShapes(t *testing.T) {
	cases := []string{
		`not json at all`,
		`{}`,
		`{"content": ""}`,
		`{"content": 42}`,
		`{"messages": "oops"}`,
		`{"messages": [{"role": "user", "content": "start"}]}`,
		`{"output": {}}`,
		`[1, 2, 3]`,
	}
	for _, c := range cases {
		if got := ExtractAssistantText(json.RawMessage(c)); got != "" {
			t.Fatalf("%s: expected empty, got %q", c, got)
		}
	}
}

func TestExtractFallsFromEmptyMessagesToOutput(t *testing.T) {
	raw := json.RawMessage(`{
		"messages": [{"role": "user", "content": "start"}],
		"output": {"messages": [{"role": "bot", "content": "Okay!"}]}
	}`)
	if got := ExtractAssistantText(raw); got != "Okay!" {
		t.Fatalf("got %q", got)
	}
}
