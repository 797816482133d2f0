package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// UpsertWord inserts the word or refreshes its metadata, returning the row id.
// The word column is unique case-insensitively; re-importing a word keeps the
// existing hint fields when the new ones are empty.
func UpsertWord(db DBExecutor, w Word) (int64, error) {
	trimmed := strings.TrimSpace(w.Word)
	if trimmed == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}

	var id int64
	query := `INSERT INTO words (word, difficulty, definition, origin, sentence)
			  VALUES (?, ?, ?, ?, ?)
			  ON CONFLICT(word)
			  DO UPDATE SET
			    difficulty = excluded.difficulty,
				definition = COALESCE(NULLIF(excluded.definition, ''), words.definition),
				origin = COALESCE(NULLIF(excluded.origin, ''), words.origin),
				sentence = COALESCE(NULLIF(excluded.sentence, ''), words.sentence)
			  RETURNING id`

	err := db.QueryRow(query, trimmed, w.Difficulty, w.Definition, w.Origin, w.Sentence).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert word: %w", err)
	}
	return id, nil
}

// ListByDifficulty returns every word ordered hardest-first. Ties keep
// insertion order so the quiz sequence stays deterministic.
func ListByDifficulty(db DBExecutor) ([]Word, error) {
	rows, err := db.Query(`SELECT id, word, difficulty, IFNULL(definition, ''), IFNULL(origin, ''), IFNULL(sentence, '')
		FROM words ORDER BY difficulty DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Word, &w.Difficulty, &w.Definition, &w.Origin, &w.Sentence); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWord finds a single word. The word column is declared COLLATE NOCASE,
// so the match is case-insensitive.
func GetWord(db DBExecutor, word string) (Word, error) {
	var w Word
	err := db.QueryRow(`SELECT id, word, difficulty, IFNULL(definition, ''), IFNULL(origin, ''), IFNULL(sentence, '')
		FROM words WHERE word = ?`, strings.TrimSpace(word)).
		Scan(&w.ID, &w.Word, &w.Difficulty, &w.Definition, &w.Origin, &w.Sentence)
	if err != nil {
		return Word{}, err
	}
	return w, nil
}

// CountWords returns the number of words in the bank.
func CountWords(db DBExecutor) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
