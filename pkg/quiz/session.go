package quiz

import (
	"fmt"
	"strings"

	"github.com/japaniel/spelltutor/pkg/catalog"
)

// DefaultRoundSize is the number of words served per round.
const DefaultRoundSize = 5

// Placeholder replies for hint queries that find nothing.
const (
	noDefinition = "No definition found."
	noOrigin     = "No origin found."
	noSentence   = "No example available."
)

// Session tracks one quiz round over a catalog: the catalog cursor, how many
// words this round has served, the word being tested, and the running score.
// It is an explicit value passed to whoever needs it; there is no package
// state.
type Session struct {
	catalog   *catalog.Catalog
	roundSize int

	cursor      int
	wordsServed int
	current     string
	correct     int
}

// NewSession creates a session over c. A non-positive roundSize falls back to
// DefaultRoundSize.
func NewSession(c *catalog.Catalog, roundSize int) *Session {
	if roundSize <= 0 {
		roundSize = DefaultRoundSize
	}
	return &Session{catalog: c, roundSize: roundSize}
}

// RoundSize returns the configured words-per-round budget.
func (s *Session) RoundSize() int { return s.roundSize }

// Advance serves the next word, or "" when the round budget or the catalog is
// exhausted. Exhaustion makes no state change, so repeated calls keep
// returning "".
func (s *Session) Advance() string {
	if s.wordsServed >= s.roundSize || s.cursor >= s.catalog.Len() {
		return ""
	}
	rec := s.catalog.At(s.cursor)
	s.current = rec.Word
	s.cursor++
	s.wordsServed++
	return rec.Word
}

// CurrentWord returns the word being tested, or "" before the first advance.
func (s *Session) CurrentWord() string { return s.current }

// CheckSpelling reports whether attempt spells expected, ignoring case and
// surrounding whitespace. A correct attempt bumps the round score; an
// incorrect one changes nothing.
func (s *Session) CheckSpelling(expected, attempt string) bool {
	ok := strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(attempt))
	if ok {
		s.correct++
	}
	return ok
}

// Definition returns the catalog definition for word, or a placeholder when
// the word or the field is missing.
func (s *Session) Definition(word string) string {
	if rec, ok := s.catalog.Lookup(word); ok && rec.Definition != "" {
		return rec.Definition
	}
	return noDefinition
}

// Origin returns the catalog origin for word, or a placeholder.
func (s *Session) Origin(word string) string {
	if rec, ok := s.catalog.Lookup(word); ok && rec.Origin != "" {
		return rec.Origin
	}
	return noOrigin
}

// Sentence returns the catalog example sentence for word, or a placeholder.
func (s *Session) Sentence(word string) string {
	if rec, ok := s.catalog.Lookup(word); ok && rec.Sentence != "" {
		return rec.Sentence
	}
	return noSentence
}

// Progress formats the running score for the round.
func (s *Session) Progress() string {
	return fmt.Sprintf("Score this round: %d/%d.", s.correct, s.wordsServed)
}
