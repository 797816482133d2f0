package interpreter

import (
	"context"
	"strings"

	"github.com/japaniel/spelltutor/pkg/quiz"
)

// Provider adapts the client to the quiz resolver chain. Any transport
// failure, timeout or unusable response shape counts as "no reply", letting
// the deterministic engine take over.
type Provider struct {
	Client *Client
}

// Reply implements quiz.Provider.
func (p *Provider) Reply(ctx context.Context, input string) (quiz.Reply, bool) {
	if p.Client == nil || p.Client.Endpoint == "" {
		return quiz.Reply{}, false
	}
	raw, err := p.Client.Generate(ctx, input)
	if err != nil {
		return quiz.Reply{}, false
	}
	text := ExtractAssistantText(raw)
	if text == "" {
		return quiz.Reply{}, false
	}
	return quiz.Reply{Text: text, Terminal: isTerminal(text)}, true
}

// isTerminal infers session end from remote prose. The local engine signals
// termination structurally; the interpreter's text is the one place where a
// marker scan is unavoidable.
func isTerminal(text string) bool {
	return strings.Contains(text, "Round complete") ||
		strings.Contains(text, "Stopping the quiz")
}
