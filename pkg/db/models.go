package db

// Word is a row of the word bank.
type Word struct {
	ID         int64
	Word       string
	Difficulty int
	Definition string
	Origin     string
	Sentence   string
}
