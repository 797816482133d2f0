package quiz

import (
	"context"
	"fmt"
	"strings"
)

// Engine is the deterministic command resolver: a total function from user
// input and session state to a reply. It guarantees the quiz progresses even
// when no interpreter service is reachable.
type Engine struct {
	session *Session
}

// NewEngine creates an engine over session.
func NewEngine(s *Session) *Engine {
	return &Engine{session: s}
}

var startSynonyms = map[string]bool{
	"start":      true,
	"start quiz": true,
	"begin":      true,
	"quiz me":    true,
}

var stopSynonyms = map[string]bool{
	"stop":   true,
	"end":    true,
	"finish": true,
}

const retryPrompt = "❌ Not quite. Try again or ask for definition/origin/sentence."

// Reply implements Provider. The engine never declines.
func (e *Engine) Reply(_ context.Context, input string) (Reply, bool) {
	return e.respond(input), true
}

func (e *Engine) respond(input string) Reply {
	s := e.session
	u := strings.ToLower(strings.TrimSpace(input))

	switch {
	case startSynonyms[u]:
		w := s.Advance()
		if w == "" {
			return roundComplete(s)
		}
		return Reply{Text: fmt.Sprintf("Okay! We'll do %d words this round, hardest to easiest. Ready?\nSpell this word: %s", s.RoundSize(), w)}

	case u == "definition":
		return Reply{Text: "Definition: " + s.Definition(s.CurrentWord())}

	case u == "origin":
		return Reply{Text: "Origin: " + s.Origin(s.CurrentWord())}

	case u == "sentence":
		return Reply{Text: "Example: " + s.Sentence(s.CurrentWord())}

	case u == "next":
		w := s.Advance()
		if w == "" {
			return roundComplete(s)
		}
		return Reply{Text: "Next word: " + w}

	case stopSynonyms[u]:
		return Reply{Text: "Stopping the quiz. " + s.Progress(), Terminal: true}
	}

	// Anything else is a spelling attempt.
	expected := s.CurrentWord()
	if expected == "" {
		// Typed a word before starting; serve one first.
		expected = s.Advance()
		if expected == "" {
			return roundComplete(s)
		}
	}

	if s.CheckSpelling(expected, input) {
		next := s.Advance()
		if next == "" {
			r := roundComplete(s)
			r.Text = "✅ Correct!\n" + r.Text
			return r
		}
		return Reply{Text: "✅ Correct!\nNext word: " + next}
	}
	return Reply{Text: retryPrompt}
}

func roundComplete(s *Session) Reply {
	return Reply{Text: "Round complete. " + s.Progress(), Terminal: true}
}
