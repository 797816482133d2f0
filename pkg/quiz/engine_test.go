package quiz

import (
	"context"
	"strings"
	"testing"

	"github.com/japaniel/spelltutor/pkg/catalog"
)

func newTestEngine(t *testing.T, roundSize int) (*Engine, *Session) {
	t.Helper()
	s := NewSession(testCatalog(), roundSize)
	return NewEngine(s), s
}

func reply(t *testing.T, e *Engine, input string) Reply {
	t.Helper()
	r, ok := e.Reply(context.Background(), input)
	if !ok {
		t.Fatalf("engine must never decline (input %q)", input)
	}
	return r
}

func TestStartSynonyms(t *testing.T) {
	for _, cmd := range []string{"start", "start quiz", "begin", "quiz me", "  START  "} {
		e, _ := newTestEngine(t, 5)
		r := reply(t, e, cmd)
		if !strings.Contains(r.Text, "Spell this word: onomatopoeia") {
			t.Fatalf("%q: expected first word prompt, got %q", cmd, r.Text)
		}
		if r.Terminal {
			t.Fatalf("%q: start must not be terminal", cmd)
		}
	}
}

func TestHintCommands(t *testing.T) {
	e, _ := newTestEngine(t, 5)
	reply(t, e, "start") // current word: onomatopoeia

	if r := reply(t, e, "definition"); r.Text != "Definition: a word that imitates a sound" {
		t.Fatalf("definition: %q", r.Text)
	}
	if r := reply(t, e, "origin"); r.Text != "Origin: Greek" {
		t.Fatalf("origin: %q", r.Text)
	}
	if r := reply(t, e, "sentence"); r.Text != "Example: No example available." {
		t.Fatalf("sentence placeholder: %q", r.Text)
	}
}

func TestHintsBeforeStart(t *testing.T) {
	e, _ := newTestEngine(t, 5)
	// No current word yet; queries degrade to placeholders.
	if r := reply(t, e, "definition"); r.Text != "Definition: No definition found." {
		t.Fatalf("definition before start: %q", r.Text)
	}
}

func TestNextAdvances(t *testing.T) {
	e, s := newTestEngine(t, 5)
	reply(t, e, "start")
	r := reply(t, e, "next")
	if r.Text != "Next word: elephant" {
		t.Fatalf("next: %q", r.Text)
	}
	if s.CurrentWord() != "elephant" {
		t.Fatalf("current word: %q", s.CurrentWord())
	}
}

func TestStopReportsProgress(t *testing.T) {
	e, _ := newTestEngine(t, 5)
	reply(t, e, "start")
	r := reply(t, e, "stop")
	if !strings.HasPrefix(r.Text, "Stopping the quiz. Score this round: 0/1.") {
		t.Fatalf("stop: %q", r.Text)
	}
	if !r.Terminal {
		t.Fatalf("stop must be terminal")
	}
}

func TestSpellingAttemptFlow(t *testing.T) {
	e, s := newTestEngine(t, 5)

	r := reply(t, e, "start")
	if !strings.Contains(r.Text, "Spell this word: onomatopoeia") {
		t.Fatalf("start: %q", r.Text)
	}

	// Wrong attempt: retry prompt, no advance.
	r = reply(t, e, "onomonopia")
	if r.Text != retryPrompt {
		t.Fatalf("wrong attempt: %q", r.Text)
	}
	if s.CurrentWord() != "onomatopoeia" {
		t.Fatalf("wrong attempt advanced the word: %q", s.CurrentWord())
	}

	// Correct attempt: score and move on.
	r = reply(t, e, "Onomatopoeia")
	if !strings.HasPrefix(r.Text, "✅ Correct!") {
		t.Fatalf("correct attempt: %q", r.Text)
	}
	if !strings.Contains(r.Text, "Next word: elephant") {
		t.Fatalf("expected next word prompt: %q", r.Text)
	}
	if s.Progress() != "Score this round: 1/2." {
		t.Fatalf("progress: %q", s.Progress())
	}
}

func TestAttemptBeforeStartAdvancesFirst(t *testing.T) {
	e, s := newTestEngine(t, 5)
	// Typing a word before starting serves the first word and checks
	// the attempt against it.
	r := reply(t, e, "onomatopoeia")
	if !strings.HasPrefix(r.Text, "✅ Correct!") {
		t.Fatalf("attempt before start: %q", r.Text)
	}
	if s.Progress() != "Score this round: 1/2." {
		t.Fatalf("progress: %q", s.Progress())
	}
}

func TestRoundCompletion(t *testing.T) {
	e, _ := newTestEngine(t, 2)
	reply(t, e, "start")
	reply(t, e, "next")

	r := reply(t, e, "next")
	if !strings.Contains(r.Text, "Round complete.") {
		t.Fatalf("expected round complete, got %q", r.Text)
	}
	if !strings.Contains(r.Text, "Score this round: 0/2.") {
		t.Fatalf("expected progress in round-complete reply: %q", r.Text)
	}
	if !r.Terminal {
		t.Fatalf("round completion must be terminal")
	}
}

func TestCorrectAnswerOnLastWordEndsRound(t *testing.T) {
	e, _ := newTestEngine(t, 1)
	reply(t, e, "start")
	r := reply(t, e, "onomatopoeia")
	if !strings.HasPrefix(r.Text, "✅ Correct!") || !strings.Contains(r.Text, "Round complete.") {
		t.Fatalf("expected correct + round complete, got %q", r.Text)
	}
	if !r.Terminal {
		t.Fatalf("round completion must be terminal")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// The canonical session: start, miss, hit, next.
	c := catalog.New([]catalog.WordRecord{
		{Word: "elephant", Difficulty: 9, Definition: "a large mammal"},
		{Word: "quiet", Difficulty: 4},
	})
	s := NewSession(c, 5)
	e := NewEngine(s)

	r := reply(t, e, "start")
	if !strings.Contains(r.Text, "Spell this word: elephant") {
		t.Fatalf("step 1: %q", r.Text)
	}

	r = reply(t, e, "wrong")
	if r.Text != retryPrompt {
		t.Fatalf("step 2: %q", r.Text)
	}

	r = reply(t, e, "elephant")
	if !strings.Contains(r.Text, "✅ Correct!") || !strings.Contains(r.Text, "Next word: quiet") {
		t.Fatalf("step 3: %q", r.Text)
	}

	// Catalog exhausted on the following advance.
	r = reply(t, e, "next")
	if !strings.Contains(r.Text, "Round complete.") || !r.Terminal {
		t.Fatalf("step 4: %q terminal=%v", r.Text, r.Terminal)
	}
}
