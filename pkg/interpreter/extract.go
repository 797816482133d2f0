package interpreter

import (
	"encoding/json"
	"strings"
)

// ExtractAssistantText pulls assistant-authored text out of the interpreter's
// structured response. Depending on the service build the response is one of:
//
//	{"content": "..."}
//	{"messages": [{"role": "assistant", "content"|"text": "..."}]}
//	{"output": {"messages": [...]}}
//	{"role": "assistant", "content": "..."}
//
// Entries tagged assistant or bot are joined with newlines. Any other shape,
// or invalid JSON, yields "".
func ExtractAssistantText(raw json.RawMessage) string {
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ""
	}

	// Common path: a direct content field. This also covers the single
	// role-tagged message shape.
	if s, ok := resp["content"].(string); ok && s != "" {
		return s
	}

	if msgs, ok := resp["messages"].([]any); ok {
		if text := joinAssistantParts(msgs); text != "" {
			return text
		}
	}

	if output, ok := resp["output"].(map[string]any); ok {
		if msgs, ok := output["messages"].([]any); ok {
			if text := joinAssistantParts(msgs); text != "" {
				return text
			}
		}
	}

	return ""
}

func joinAssistantParts(msgs []any) string {
	var parts []string
	for _, m := range msgs {
		msg, ok := m.(map[string]any)
		if !ok {
			continue
		}
		role, _ := msg["role"].(string)
		if role != "assistant" && role != "bot" {
			continue
		}
		text, _ := msg["content"].(string)
		if text == "" {
			text, _ = msg["text"].(string)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
